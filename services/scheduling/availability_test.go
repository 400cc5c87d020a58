package scheduling

import (
	"context"
	"testing"

	"shutterbook/models"

	"github.com/stretchr/testify/require"
)

func fullWeekRequest() models.UpdateAvailabilityRequest {
	days := make([]models.DayAvailability, 0, len(models.WeekdayNames))
	for _, name := range models.WeekdayNames {
		days = append(days, models.DayAvailability{Day: name, IsAvailable: false, Slots: []string{}})
	}
	return models.UpdateAvailabilityRequest{Days: days}
}

func TestGetAvailabilityCreatesDefault(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	avail, err := engine.GetAvailability(context.Background(), testPhotographer)
	require.NoError(t, err)
	require.Equal(t, testPhotographer, avail.PhotographerID)
	require.Equal(t, "UTC", avail.Timezone)
	require.Len(t, avail.Days, 7)
	for i, day := range avail.Days {
		require.Equal(t, models.WeekdayNames[i], day.Day)
		require.False(t, day.IsAvailable)
		require.Empty(t, day.Slots)
	}
}

func TestSetAvailabilityReplacesWholesale(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	first := fullWeekRequest()
	first.Days[0].IsAvailable = true
	first.Days[0].Slots = []string{"09:00", "10:00"}
	_, err := engine.SetAvailability(context.Background(), testPhotographer, first)
	require.NoError(t, err)

	second := fullWeekRequest()
	second.Days[1].IsAvailable = true
	second.Days[1].Slots = []string{"14:00"}
	updated, err := engine.SetAvailability(context.Background(), testPhotographer, second)
	require.NoError(t, err)

	// Monday's earlier slots are gone; the array is replaced, not merged.
	require.False(t, updated.DayEntry("Monday").IsAvailable)
	require.Empty(t, updated.DayEntry("Monday").Slots)
	require.Equal(t, []string{"14:00"}, updated.DayEntry("Tuesday").Slots)
}

func TestSetAvailabilityPreservesSlotOrder(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	req := fullWeekRequest()
	req.Days[0].IsAvailable = true
	req.Days[0].Slots = []string{"14:00", "09:00", "09:00"}
	updated, err := engine.SetAvailability(context.Background(), testPhotographer, req)
	require.NoError(t, err)
	require.Equal(t, []string{"14:00", "09:00", "09:00"}, updated.DayEntry("Monday").Slots)
}

func TestSetAvailabilityValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.UpdateAvailabilityRequest)
	}{
		{"too few days", func(r *models.UpdateAvailabilityRequest) { r.Days = r.Days[:6] }},
		{"unknown weekday", func(r *models.UpdateAvailabilityRequest) { r.Days[3].Day = "Funday" }},
		{"duplicate weekday", func(r *models.UpdateAvailabilityRequest) { r.Days[1].Day = "Monday" }},
		{"malformed slot", func(r *models.UpdateAvailabilityRequest) { r.Days[0].Slots = []string{"9am"} }},
		{"out of range slot", func(r *models.UpdateAvailabilityRequest) { r.Days[0].Slots = []string{"25:00"} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine, _, _, _ := newTestEngine()
			req := fullWeekRequest()
			tc.mutate(&req)
			_, err := engine.SetAvailability(context.Background(), testPhotographer, req)
			require.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestSetAvailabilityTimezone(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	req := fullWeekRequest()
	req.Timezone = "Europe/Berlin"
	updated, err := engine.SetAvailability(context.Background(), testPhotographer, req)
	require.NoError(t, err)
	require.Equal(t, "Europe/Berlin", updated.Timezone)
}
