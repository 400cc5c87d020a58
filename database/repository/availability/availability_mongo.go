package availabilityRepo

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

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	repo := &MongoAvailabilityRepo{
		coll: database.DB().Collection("availabilities"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("availability repo: %v", err))
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// GetByPhotographer retrieves a template document by owner.
func (repo *MongoAvailabilityRepo) GetByPhotographer(photographerID string) (*models.WeeklyAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var avail models.WeeklyAvailability
	filter := bson.M{"photographer_id": photographerID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&avail); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching availability for photographer %s: %w", photographerID, err)
	}
	return &avail, nil
}

// EnsureDefault upserts the default template with $setOnInsert so a
// concurrent first read cannot create two documents, then returns the
// stored document.
func (repo *MongoAvailabilityRepo) EnsureDefault(photographerID string) (*models.WeeklyAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	def := models.DefaultWeeklyAvailability(photographerID)
	filter := bson.M{"photographer_id": photographerID}
	update := bson.M{"$setOnInsert": def}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var avail models.WeeklyAvailability
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&avail); err != nil {
		return nil, fmt.Errorf("error ensuring default availability for photographer %s: %w", photographerID, err)
	}
	return &avail, nil
}

// Replace overwrites the days array wholesale. An empty timezone leaves the
// stored value untouched.
func (repo *MongoAvailabilityRepo) Replace(photographerID string, days []models.DayAvailability, timezone string) (*models.WeeklyAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	set := bson.M{
		"days":       days,
		"updated_at": now,
	}
	if timezone != "" {
		set["timezone"] = timezone
	}
	filter := bson.M{"photographer_id": photographerID}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"photographer_id": photographerID,
			"created_at":      now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var avail models.WeeklyAvailability
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&avail); err != nil {
		return nil, fmt.Errorf("error replacing availability for photographer %s: %w", photographerID, err)
	}
	if avail.Timezone == "" {
		// Document created by this call without an explicit timezone.
		if _, err := repo.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"timezone": "UTC"}}); err != nil {
			return nil, fmt.Errorf("error defaulting timezone for photographer %s: %w", photographerID, err)
		}
		avail.Timezone = "UTC"
	}
	return &avail, nil
}
