package scheduling

import (
	"context"

	"shutterbook/models"

	"go.uber.org/zap"
)

// allowedTransitions is the booking status transition table. Absent keys
// (cancelled, completed) are terminal.
var allowedTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus applies an ownership-checked status change. Transitions out
// of terminal states are rejected.
func (s *DefaultSchedulingService) UpdateStatus(ctx context.Context, bookingID, requesterID, newStatus string) (*models.Booking, error) {
	if !models.ValidBookingStatus(newStatus) {
		return nil, validationf("unknown status %q", newStatus)
	}

	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.PhotographerID != requesterID {
		return nil, ErrNotOwner
	}
	if !transitionAllowed(booking.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.Bookings.UpdateStatus(bookingID, newStatus)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}

	if s.Cache != nil {
		s.Cache.InvalidatePhotographer(ctx, booking.PhotographerID)
	}
	if newStatus == models.BookingStatusConfirmed && s.Reminders != nil {
		if err := s.Reminders.Schedule(updated); err != nil {
			// Reminders are best effort; the booking change stands.
			s.logger().Warn("failed to schedule booking reminder",
				zap.String("bookingId", bookingID), zap.Error(err))
		}
	}

	s.logger().Info("booking status updated",
		zap.String("bookingId", bookingID),
		zap.String("from", booking.Status),
		zap.String("to", newStatus))
	return updated, nil
}

// CancelBooking sets a booking to cancelled on behalf of its owner.
// Cancelling an already-cancelled booking is a no-op; a completed booking
// cannot be cancelled.
func (s *DefaultSchedulingService) CancelBooking(ctx context.Context, bookingID, requesterID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.PhotographerID != requesterID {
		return nil, ErrNotOwner
	}
	switch booking.Status {
	case models.BookingStatusCancelled:
		return booking, nil
	case models.BookingStatusCompleted:
		return nil, ErrInvalidTransition
	}

	updated, err := s.Bookings.UpdateStatus(bookingID, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}

	if s.Cache != nil {
		s.Cache.InvalidatePhotographer(ctx, booking.PhotographerID)
	}

	s.logger().Info("booking cancelled",
		zap.String("bookingId", bookingID),
		zap.String("photographerId", booking.PhotographerID))
	return updated, nil
}
