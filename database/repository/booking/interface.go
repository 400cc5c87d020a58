package bookingRepo

import (
	"context"
	"time"

	"shutterbook/models"
)

// ErrDuplicateSlot is returned by Create when the unique
// (photographer, date, time slot) index rejects the insert. It signals that
// a concurrent writer won the race for the identical slot.
type ErrDuplicateSlot struct {
	TimeSlot string
}

func (e ErrDuplicateSlot) Error() string {
	return "a booking already holds time slot " + e.TimeSlot
}

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	// Create inserts a new booking. Returns ErrDuplicateSlot when the
	// compound uniqueness guard rejects the write.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking, or nil if absent.
	GetByID(bookingID string) (*models.Booking, error)
	// ListByPhotographer returns a photographer's bookings, optionally
	// filtered by status, sorted by date then start time ascending.
	ListByPhotographer(photographerID, status string) ([]models.Booking, error)
	// ListForDay returns bookings for a photographer within the day-boundary
	// range whose status is one of statuses.
	ListForDay(photographerID string, dayStart, dayEnd time.Time, statuses []string) ([]models.Booking, error)
	// HasOverlapping reports whether any pending or confirmed booking in the
	// day range overlaps the proposed [start, end) interval. The predicate is
	// evaluated as a storage-layer query to keep the check-to-insert window
	// as narrow as the store allows.
	HasOverlapping(photographerID string, dayStart, dayEnd time.Time, startSlot, endSlot string) (bool, error)
	// UpdateStatus sets a booking's status and returns the updated document.
	UpdateStatus(bookingID, status string) (*models.Booking, error)
	// MarkReminderSent flags that the reminder task fired for this booking.
	MarkReminderSent(bookingID string) error
}
