package bookingRepo

import (
	"fmt"
	"time"

	"shutterbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for the booking collection. The partial
// unique index on (photographer_id, date, time_slot) over pending and
// confirmed bookings is the storage-level guard that rejects the loser when
// two concurrent requests pass the overlap pre-check for the identical slot.
// Cancelled and completed bookings fall outside the partial filter, so a
// freed slot can be rebooked.
func (repo *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	activeFilter := bson.M{
		"status": bson.M{"$in": []string{models.BookingStatusPending, models.BookingStatusConfirmed}},
	}

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{
				{Key: "photographer_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "time_slot", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(activeFilter).
				SetName("unique_active_slot"),
		},
		// Primary query pattern: photographer + day range + status.
		{
			Keys: bson.D{
				{Key: "photographer_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().SetName("photographer_date_status_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
