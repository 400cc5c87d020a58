package scheduling

import (
	"context"

	availabilityRepo "shutterbook/database/repository/availability"
	bookingRepo "shutterbook/database/repository/booking"
	serviceRepo "shutterbook/database/repository/service"
	"shutterbook/models"

	"go.uber.org/zap"
)

// SchedulingService is the booking availability and conflict-resolution
// engine: weekly templates, derived open slots, conflict-safe booking
// creation and the status lifecycle.
type SchedulingService interface {
	// GetAvailability returns the photographer's weekly template, creating
	// the all-unavailable default on first read.
	GetAvailability(ctx context.Context, photographerID string) (*models.WeeklyAvailability, error)
	// SetAvailability replaces the entire days array (and optionally the
	// timezone) of the photographer's template.
	SetAvailability(ctx context.Context, photographerID string, req models.UpdateAvailabilityRequest) (*models.WeeklyAvailability, error)
	// DeriveOpenSlots computes the bookable start times for a photographer,
	// service and calendar date.
	DeriveOpenSlots(ctx context.Context, photographerID, serviceID, date string) ([]string, error)
	// CreateBooking validates and inserts a booking, re-checking for
	// conflicts at write time.
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingResponse, error)
	// ListBookings returns a photographer's own bookings, optionally
	// filtered by status, sorted by date then start time.
	ListBookings(ctx context.Context, photographerID, status string) ([]models.Booking, error)
	// UpdateStatus applies an owner-checked, transition-checked status change.
	UpdateStatus(ctx context.Context, bookingID, requesterID, newStatus string) (*models.Booking, error)
	// CancelBooking sets a booking to cancelled on behalf of its owner.
	CancelBooking(ctx context.Context, bookingID, requesterID string) (*models.Booking, error)
}

// DefaultSchedulingService wires the engine to its stores. Cache and
// Reminders are optional; a nil value disables the concern.
type DefaultSchedulingService struct {
	Availability availabilityRepo.AvailabilityRepository
	Bookings     bookingRepo.BookingRepository
	Services     serviceRepo.ServiceRepository
	Cache        *SlotCache
	Reminders    *ReminderScheduler
	Logger       *zap.Logger
}

func (s *DefaultSchedulingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
