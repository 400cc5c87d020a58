package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"shutterbook/database"
	"shutterbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new instance of MongoServiceRepo.
func NewMongoServiceRepo() ServiceRepository {
	repo := &MongoServiceRepo{
		coll: database.DB().Collection("services"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("service repo: %v", err))
	}
	return repo
}

// FindByID retrieves a service document by ID.
func (repo *MongoServiceRepo) FindByID(serviceID string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var svc models.Service
	filter := bson.M{"id": serviceID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching service with id %s: %w", serviceID, err)
	}
	return &svc, nil
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (repo *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "photographer_id", Value: 1}},
			Options: options.Index().SetName("photographer_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}
