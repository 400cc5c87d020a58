package scheduling

import (
	"context"
	"testing"
	"time"

	"shutterbook/models"

	"github.com/stretchr/testify/require"
)

const (
	testPhotographer = "ph-1"
	testService      = "svc-1"
	// 2024-01-01 is a Monday.
	testMonday = "2024-01-01"
)

func newTestEngine() (*DefaultSchedulingService, *fakeAvailabilityRepo, *fakeBookingRepo, *fakeServiceRepo) {
	avail := newFakeAvailabilityRepo()
	bookings := newFakeBookingRepo()
	services := newFakeServiceRepo(models.Service{
		ID:              testService,
		PhotographerID:  testPhotographer,
		Name:            "Portrait Session",
		DurationMinutes: 60,
		Price:           120,
		DepositAmount:   30,
		IsActive:        true,
	})
	engine := &DefaultSchedulingService{
		Availability: avail,
		Bookings:     bookings,
		Services:     services,
	}
	return engine, avail, bookings, services
}

func seedBooking(t *testing.T, bookings *fakeBookingRepo, id, date, start, end, status string) {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	bookings.bookings[id] = models.Booking{
		ID:             id,
		PhotographerID: testPhotographer,
		ServiceID:      testService,
		ClientName:     "Ada",
		ClientEmail:    "ada@example.com",
		Date:           day.UTC(),
		TimeSlot:       start,
		EndTime:        end,
		Status:         status,
		PaymentStatus:  models.PaymentStatusUnpaid,
	}
}

func TestDeriveOpenSlotsNoBookings(t *testing.T) {
	engine, avail, _, _ := newTestEngine()
	avail.setDay(testPhotographer, "Monday", []string{"09:00", "10:00", "11:00"})

	slots, err := engine.DeriveOpenSlots(context.Background(), testPhotographer, testService, testMonday)
	require.NoError(t, err)
	require.Equal(t, []string{"09:00", "10:00", "11:00"}, slots)
}

func TestDeriveOpenSlotsFiltersOverlap(t *testing.T) {
	engine, avail, bookings, _ := newTestEngine()
	avail.setDay(testPhotographer, "Monday", []string{"09:00", "10:00", "11:00"})
	seedBooking(t, bookings, "b-1", testMonday, "10:00", "11:00", models.BookingStatusConfirmed)

	slots, err := engine.DeriveOpenSlots(context.Background(), testPhotographer, testService, testMonday)
	require.NoError(t, err)
	// 10:00 conflicts; 11:00 starts exactly when the booking ends and stays.
	require.Equal(t, []string{"09:00", "11:00"}, slots)
}

func TestDeriveOpenSlotsIgnoresCancelled(t *testing.T) {
	engine, avail, bookings, _ := newTestEngine()
	avail.setDay(testPhotographer, "Monday", []string{"09:00"})
	seedBooking(t, bookings, "b-1", testMonday, "09:00", "10:00", models.BookingStatusCancelled)

	slots, err := engine.DeriveOpenSlots(context.Background(), testPhotographer, testService, testMonday)
	require.NoError(t, err)
	require.Equal(t, []string{"09:00"}, slots)
}

func TestDeriveOpenSlotsLazyDefault(t *testing.T) {
	engine, avail, _, _ := newTestEngine()

	slots, err := engine.DeriveOpenSlots(context.Background(), testPhotographer, testService, testMonday)
	require.NoError(t, err)
	require.Empty(t, slots)
	require.NotNil(t, slots)

	// The derivation's ensure step created the default template.
	stored, err := avail.GetByPhotographer(testPhotographer)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Len(t, stored.Days, 7)
	for _, day := range stored.Days {
		require.False(t, day.IsAvailable)
		require.Empty(t, day.Slots)
	}
}

func TestDeriveOpenSlotsUnknownService(t *testing.T) {
	engine, avail, _, _ := newTestEngine()
	avail.setDay(testPhotographer, "Monday", []string{"09:00"})

	_, err := engine.DeriveOpenSlots(context.Background(), testPhotographer, "missing", testMonday)
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeriveOpenSlotsInactiveService(t *testing.T) {
	engine, avail, _, services := newTestEngine()
	avail.setDay(testPhotographer, "Monday", []string{"09:00"})
	services.services["svc-off"] = models.Service{ID: "svc-off", DurationMinutes: 60, IsActive: false}

	_, err := engine.DeriveOpenSlots(context.Background(), testPhotographer, "svc-off", testMonday)
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeriveOpenSlotsInvalidDate(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	_, err := engine.DeriveOpenSlots(context.Background(), testPhotographer, testService, "not-a-date")
	require.True(t, IsValidationError(err))
}

func TestDeriveOpenSlotsUnavailableDay(t *testing.T) {
	engine, avail, _, _ := newTestEngine()
	// Slots configured but the day is switched off.
	template := models.DefaultWeeklyAvailability(testPhotographer)
	template.Days[0].Slots = []string{"09:00"}
	avail.templates[testPhotographer] = template

	slots, err := engine.DeriveOpenSlots(context.Background(), testPhotographer, testService, testMonday)
	require.NoError(t, err)
	require.Empty(t, slots)
}

func TestDeriveOpenSlotsPreservesOrderAndDuplicates(t *testing.T) {
	engine, avail, _, _ := newTestEngine()
	avail.setDay(testPhotographer, "Monday", []string{"11:00", "09:00", "09:00"})

	slots, err := engine.DeriveOpenSlots(context.Background(), testPhotographer, testService, testMonday)
	require.NoError(t, err)
	require.Equal(t, []string{"11:00", "09:00", "09:00"}, slots)
}

func TestDeriveOpenSlotsSkipsMidnightWrap(t *testing.T) {
	engine, avail, _, _ := newTestEngine()
	avail.setDay(testPhotographer, "Monday", []string{"22:00", "23:30"})

	slots, err := engine.DeriveOpenSlots(context.Background(), testPhotographer, testService, testMonday)
	require.NoError(t, err)
	// 23:30 + 60min would wrap past midnight and is not bookable.
	require.Equal(t, []string{"22:00"}, slots)
}

func TestDeriveOpenSlotsIdempotent(t *testing.T) {
	engine, avail, bookings, _ := newTestEngine()
	avail.setDay(testPhotographer, "Monday", []string{"09:00", "10:00", "11:00"})
	seedBooking(t, bookings, "b-1", testMonday, "09:30", "10:30", models.BookingStatusPending)

	first, err := engine.DeriveOpenSlots(context.Background(), testPhotographer, testService, testMonday)
	require.NoError(t, err)
	second, err := engine.DeriveOpenSlots(context.Background(), testPhotographer, testService, testMonday)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, []string{"11:00"}, first)
}
