package scheduling

import (
	"context"
	"sort"
	"time"

	bookingRepo "shutterbook/database/repository/booking"
	"shutterbook/models"
)

// In-memory fakes implementing the repository interfaces.

type fakeAvailabilityRepo struct {
	templates map[string]models.WeeklyAvailability
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{templates: make(map[string]models.WeeklyAvailability)}
}

func (f *fakeAvailabilityRepo) GetByPhotographer(photographerID string) (*models.WeeklyAvailability, error) {
	if avail, ok := f.templates[photographerID]; ok {
		return &avail, nil
	}
	return nil, nil
}

func (f *fakeAvailabilityRepo) EnsureDefault(photographerID string) (*models.WeeklyAvailability, error) {
	if avail, ok := f.templates[photographerID]; ok {
		return &avail, nil
	}
	def := models.DefaultWeeklyAvailability(photographerID)
	f.templates[photographerID] = def
	return &def, nil
}

func (f *fakeAvailabilityRepo) Replace(photographerID string, days []models.DayAvailability, timezone string) (*models.WeeklyAvailability, error) {
	avail, ok := f.templates[photographerID]
	if !ok {
		avail = models.DefaultWeeklyAvailability(photographerID)
	}
	avail.Days = days
	if timezone != "" {
		avail.Timezone = timezone
	}
	avail.UpdatedAt = time.Now().UTC()
	f.templates[photographerID] = avail
	return &avail, nil
}

// setDay configures one weekday entry for a photographer's template.
func (f *fakeAvailabilityRepo) setDay(photographerID, weekday string, slots []string) {
	avail, ok := f.templates[photographerID]
	if !ok {
		avail = models.DefaultWeeklyAvailability(photographerID)
	}
	for i := range avail.Days {
		if avail.Days[i].Day == weekday {
			avail.Days[i].IsAvailable = true
			avail.Days[i].Slots = slots
		}
	}
	f.templates[photographerID] = avail
}

type fakeBookingRepo struct {
	bookings       map[string]models.Booking
	forceDuplicate bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func activeStatus(status string) bool {
	return status == models.BookingStatusPending || status == models.BookingStatusConfirmed
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if f.forceDuplicate {
		return bookingRepo.ErrDuplicateSlot{TimeSlot: booking.TimeSlot}
	}
	for _, b := range f.bookings {
		if activeStatus(b.Status) && b.PhotographerID == booking.PhotographerID &&
			b.Date.Equal(booking.Date) && b.TimeSlot == booking.TimeSlot {
			return bookingRepo.ErrDuplicateSlot{TimeSlot: booking.TimeSlot}
		}
	}
	f.bookings[booking.ID] = *booking
	return nil
}

func (f *fakeBookingRepo) GetByID(bookingID string) (*models.Booking, error) {
	if b, ok := f.bookings[bookingID]; ok {
		return &b, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListByPhotographer(photographerID, status string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.PhotographerID != photographerID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].TimeSlot < out[j].TimeSlot
	})
	return out, nil
}

func (f *fakeBookingRepo) ListForDay(photographerID string, dayStart, dayEnd time.Time, statuses []string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.PhotographerID != photographerID {
			continue
		}
		if b.Date.Before(dayStart) || b.Date.After(dayEnd) {
			continue
		}
		for _, st := range statuses {
			if b.Status == st {
				out = append(out, b)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimeSlot < out[j].TimeSlot })
	return out, nil
}

func (f *fakeBookingRepo) HasOverlapping(photographerID string, dayStart, dayEnd time.Time, startSlot, endSlot string) (bool, error) {
	for _, b := range f.bookings {
		if b.PhotographerID != photographerID || !activeStatus(b.Status) {
			continue
		}
		if b.Date.Before(dayStart) || b.Date.After(dayEnd) {
			continue
		}
		// Same predicate as the Mongo query; zero-padded HH:MM strings
		// compare lexicographically in time order.
		if b.TimeSlot < endSlot && b.EndTime > startSlot {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) UpdateStatus(bookingID, status string) (*models.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	f.bookings[bookingID] = b
	return &b, nil
}

func (f *fakeBookingRepo) MarkReminderSent(bookingID string) error {
	if b, ok := f.bookings[bookingID]; ok {
		b.ReminderSent = true
		f.bookings[bookingID] = b
	}
	return nil
}

type fakeServiceRepo struct {
	services map[string]models.Service
}

func newFakeServiceRepo(services ...models.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[string]models.Service)}
	for _, svc := range services {
		repo.services[svc.ID] = svc
	}
	return repo
}

func (f *fakeServiceRepo) FindByID(serviceID string) (*models.Service, error) {
	if svc, ok := f.services[serviceID]; ok {
		return &svc, nil
	}
	return nil, nil
}
