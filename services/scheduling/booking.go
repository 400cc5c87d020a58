package scheduling

import (
	"context"
	"errors"
	"time"

	bookingRepo "shutterbook/database/repository/booking"
	"shutterbook/models"
	"shutterbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates a booking request, re-checks the proposed interval
// against the store at write time and inserts the booking. The overlap
// re-check narrows the read-to-write race window; the unique partial index
// on (photographer, date, time slot) catches the identical-slot double write
// that can still slip through, and surfaces as the same conflict error.
func (s *DefaultSchedulingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingResponse, error) {
	if req.PhotographerID == "" || req.ServiceID == "" || req.ClientName == "" ||
		req.ClientEmail == "" || req.Date == "" || req.TimeSlot == "" {
		return nil, validationf("missing required booking fields")
	}
	if !utils.ValidTimeString(req.TimeSlot) {
		return nil, validationf("invalid timeSlot %q, expected HH:MM", req.TimeSlot)
	}
	day, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, validationf("invalid date %q", req.Date)
	}

	svc, err := s.Services.FindByID(req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.IsActive {
		return nil, ErrServiceNotFound
	}

	startMin, err := utils.TimeToMinutes(req.TimeSlot)
	if err != nil {
		return nil, validationf("invalid timeSlot %q", req.TimeSlot)
	}
	endMin := startMin + svc.DurationMinutes
	if endMin >= 24*60 {
		return nil, validationf("slot %s with a %d minute service would run past midnight", req.TimeSlot, svc.DurationMinutes)
	}
	endTime := utils.MinutesToTime(endMin)

	dayStart, dayEnd := utils.DayRange(day)
	conflict, err := s.Bookings.HasOverlapping(req.PhotographerID, dayStart, dayEnd, req.TimeSlot, endTime)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotConflict
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:             uuid.New().String(),
		PhotographerID: req.PhotographerID,
		ServiceID:      req.ServiceID,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		Date:           dayStart,
		TimeSlot:       req.TimeSlot,
		EndTime:        endTime,
		Status:         models.BookingStatusPending,
		PaymentStatus:  models.PaymentStatusUnpaid,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		var dup bookingRepo.ErrDuplicateSlot
		if errors.As(err, &dup) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.InvalidatePhotographer(ctx, req.PhotographerID)
	}

	s.logger().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("photographerId", booking.PhotographerID),
		zap.String("date", req.Date),
		zap.String("timeSlot", booking.TimeSlot),
		zap.String("endTime", booking.EndTime))

	return &models.BookingResponse{Booking: *booking, Service: svc.Summary()}, nil
}

// ListBookings returns a photographer's bookings sorted by date then start
// time ascending, optionally filtered by status.
func (s *DefaultSchedulingService) ListBookings(ctx context.Context, photographerID, status string) ([]models.Booking, error) {
	if status != "" && !models.ValidBookingStatus(status) {
		return nil, validationf("unknown status filter %q", status)
	}
	bookings, err := s.Bookings.ListByPhotographer(photographerID, status)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
