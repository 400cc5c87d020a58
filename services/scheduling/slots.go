package scheduling

import (
	"context"

	"shutterbook/models"
	"shutterbook/utils"

	"go.uber.org/zap"
)

// DeriveOpenSlots computes the bookable start times for a photographer on a
// calendar date, for a given service duration. The derivation is read-only
// apart from the explicit ensure-default step for the weekly template.
//
// A candidate slot survives iff its [start, start+duration) interval does
// not intersect any pending or confirmed booking on that day. Touching
// intervals do not conflict, so a slot may begin exactly when an existing
// booking ends. Stored slot order is preserved in the output, duplicates
// included.
func (s *DefaultSchedulingService) DeriveOpenSlots(ctx context.Context, photographerID, serviceID, date string) ([]string, error) {
	svc, err := s.Services.FindByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.IsActive {
		return nil, ErrServiceNotFound
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, validationf("invalid date %q", date)
	}

	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, photographerID, serviceID, date); ok {
			return cached, nil
		}
	}

	avail, err := s.Availability.EnsureDefault(photographerID)
	if err != nil {
		return nil, err
	}

	// Weekday from the date's own civil calendar, independent of the
	// stored timezone.
	entry := avail.DayEntry(day.Weekday().String())
	if entry == nil || !entry.IsAvailable || len(entry.Slots) == 0 {
		return []string{}, nil
	}

	dayStart, dayEnd := utils.DayRange(day)
	booked, err := s.Bookings.ListForDay(photographerID, dayStart, dayEnd,
		[]string{models.BookingStatusPending, models.BookingStatusConfirmed})
	if err != nil {
		return nil, err
	}

	open := make([]string, 0, len(entry.Slots))
	for _, slot := range entry.Slots {
		start, err := utils.TimeToMinutes(slot)
		if err != nil {
			s.logger().Warn("skipping malformed availability slot",
				zap.String("photographerId", photographerID), zap.String("slot", slot))
			continue
		}
		end := start + svc.DurationMinutes
		if end >= 24*60 {
			// The end time would wrap at the midnight boundary; such slots
			// are not bookable for this service duration.
			continue
		}

		conflict := false
		for _, b := range booked {
			bStart, err := utils.TimeToMinutes(b.TimeSlot)
			if err != nil {
				continue
			}
			bEnd, err := utils.TimeToMinutes(b.EndTime)
			if err != nil {
				continue
			}
			if utils.Overlaps(start, end, bStart, bEnd) {
				conflict = true
				break
			}
		}
		if !conflict {
			open = append(open, slot)
		}
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, photographerID, serviceID, date, open)
	}
	return open, nil
}
