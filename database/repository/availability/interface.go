package availabilityRepo

import (
	"shutterbook/models"
)

// AvailabilityRepository defines data access for weekly availability templates.
type AvailabilityRepository interface {
	// GetByPhotographer retrieves the template for a photographer, or nil if
	// none exists yet.
	GetByPhotographer(photographerID string) (*models.WeeklyAvailability, error)
	// EnsureDefault creates the all-unavailable default template if the
	// photographer has none, and returns the stored template. This is the
	// explicit lazy-creation step invoked by reads.
	EnsureDefault(photographerID string) (*models.WeeklyAvailability, error)
	// Replace overwrites the entire days array (and timezone, when non-empty)
	// for a photographer, creating the document if absent.
	Replace(photographerID string, days []models.DayAvailability, timezone string) (*models.WeeklyAvailability, error)
}
