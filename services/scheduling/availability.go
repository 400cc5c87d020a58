package scheduling

import (
	"context"

	"shutterbook/models"
	"shutterbook/utils"
)

// GetAvailability returns the photographer's weekly template. The lazy
// default creation is an explicit ensure step rather than a hidden side
// effect of the read path.
func (s *DefaultSchedulingService) GetAvailability(ctx context.Context, photographerID string) (*models.WeeklyAvailability, error) {
	return s.Availability.EnsureDefault(photographerID)
}

// SetAvailability replaces the entire days array of the template. Slots are
// validated against the HH:MM pattern at this storage boundary; ordering and
// duplication of slots are the caller's responsibility and are preserved
// as-is.
func (s *DefaultSchedulingService) SetAvailability(ctx context.Context, photographerID string, req models.UpdateAvailabilityRequest) (*models.WeeklyAvailability, error) {
	if len(req.Days) != len(models.WeekdayNames) {
		return nil, validationf("days must contain exactly %d entries, one per weekday", len(models.WeekdayNames))
	}
	seen := make(map[string]bool, len(models.WeekdayNames))
	for _, day := range req.Days {
		valid := false
		for _, name := range models.WeekdayNames {
			if day.Day == name {
				valid = true
				break
			}
		}
		if !valid {
			return nil, validationf("unknown weekday %q", day.Day)
		}
		if seen[day.Day] {
			return nil, validationf("duplicate weekday %q", day.Day)
		}
		seen[day.Day] = true
		for _, slot := range day.Slots {
			if !utils.ValidTimeString(slot) {
				return nil, validationf("invalid slot %q on %s, expected HH:MM", slot, day.Day)
			}
		}
	}

	avail, err := s.Availability.Replace(photographerID, req.Days, req.Timezone)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.InvalidatePhotographer(ctx, photographerID)
	}
	return avail, nil
}
