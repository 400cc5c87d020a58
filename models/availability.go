package models

import "time"

// WeekdayNames lists the template entries in order, Monday first.
var WeekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayAvailability is one weekday entry of the weekly template.
type DayAvailability struct {
	Day         string   `bson:"day" json:"day"`                  // Weekday name, e.g. "Monday"
	IsAvailable bool     `bson:"is_available" json:"isAvailable"` // Whether any slot on this weekday is bookable
	Slots       []string `bson:"slots" json:"slots"`              // Candidate start times, "HH:MM" 24-hour, stored order preserved
}

// WeeklyAvailability is a photographer's recurring weekly template.
// Exactly one document exists per photographer; it is created lazily
// with all-unavailable defaults on first read.
type WeeklyAvailability struct {
	PhotographerID string            `bson:"photographer_id" json:"photographerId"`
	Timezone       string            `bson:"timezone" json:"timezone"` // IANA identifier, default "UTC"
	Days           []DayAvailability `bson:"days" json:"days"`         // Exactly one entry per weekday name
	CreatedAt      time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updated_at" json:"updatedAt"`
}

// DefaultWeeklyAvailability returns the all-unavailable template used for
// lazy creation on first read.
func DefaultWeeklyAvailability(photographerID string) WeeklyAvailability {
	now := time.Now().UTC()
	days := make([]DayAvailability, 0, len(WeekdayNames))
	for _, name := range WeekdayNames {
		days = append(days, DayAvailability{Day: name, IsAvailable: false, Slots: []string{}})
	}
	return WeeklyAvailability{
		PhotographerID: photographerID,
		Timezone:       "UTC",
		Days:           days,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// DayEntry returns the template entry for the given weekday name, or nil.
func (w *WeeklyAvailability) DayEntry(weekday string) *DayAvailability {
	for i := range w.Days {
		if w.Days[i].Day == weekday {
			return &w.Days[i]
		}
	}
	return nil
}

// UpdateAvailabilityRequest defines the payload for replacing the weekly
// template. The days array is always replaced wholesale; there is no
// per-day patch.
type UpdateAvailabilityRequest struct {
	Days     []DayAvailability `json:"days" binding:"required"`
	Timezone string            `json:"timezone"`
}
