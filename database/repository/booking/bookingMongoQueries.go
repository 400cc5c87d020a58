package bookingRepo

import (
	"fmt"
	"time"

	"shutterbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListForDay fetches bookings for a photographer within the day-boundary
// range whose status is one of statuses, ordered by start time.
func (repo *MongoBookingRepo) ListForDay(photographerID string, dayStart, dayEnd time.Time, statuses []string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"photographer_id": photographerID,
		"date":            bson.M{"$gte": dayStart, "$lte": dayEnd},
		"status":          bson.M{"$in": statuses},
	}
	opts := options.Find().SetSort(bson.D{{Key: "time_slot", Value: 1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for day: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding day bookings: %w", err)
	}
	return bookings, nil
}

// HasOverlapping runs the half-open interval intersection predicate as a
// single storage-layer query against pending and confirmed bookings in the
// day range. Zero-padded "HH:MM" strings compare lexicographically in time
// order, so the comparisons below are exact minute comparisons:
//
//	b.time_slot < end AND b.end_time > start
//
// Touching intervals do not match.
func (repo *MongoBookingRepo) HasOverlapping(photographerID string, dayStart, dayEnd time.Time, startSlot, endSlot string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"photographer_id": photographerID,
		"date":            bson.M{"$gte": dayStart, "$lte": dayEnd},
		"status":          bson.M{"$in": []string{models.BookingStatusPending, models.BookingStatusConfirmed}},
		"time_slot":       bson.M{"$lt": endSlot},
		"end_time":        bson.M{"$gt": startSlot},
	}

	count, err := repo.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking overlapping bookings: %w", err)
	}
	return count > 0, nil
}
