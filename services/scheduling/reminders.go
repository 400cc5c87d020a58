package scheduling

import (
	"encoding/json"
	"fmt"
	"time"

	"shutterbook/models"
	"shutterbook/utils"

	"github.com/hibiken/asynq"
)

// TypeBookingReminder is the asynq task type for client appointment reminders.
const TypeBookingReminder = "booking:reminder"

// ReminderScheduler enqueues reminder tasks for confirmed bookings. Stale
// tasks (for bookings that were cancelled after confirmation) are filtered
// by the worker, not dequeued here.
type ReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration // how long before the booking start the reminder fires
}

// NewReminderScheduler constructs a scheduler around an asynq client.
func NewReminderScheduler(client *asynq.Client, lead time.Duration) *ReminderScheduler {
	return &ReminderScheduler{Client: client, Lead: lead}
}

// Schedule enqueues a reminder for the booking, processed Lead before the
// booking's start time, or immediately when the start is closer than that.
func (r *ReminderScheduler) Schedule(booking *models.Booking) error {
	if r == nil || r.Client == nil {
		return nil
	}

	startMin, err := utils.TimeToMinutes(booking.TimeSlot)
	if err != nil {
		return fmt.Errorf("booking %s has malformed time slot: %w", booking.ID, err)
	}
	startAt := booking.Date.Add(time.Duration(startMin) * time.Minute)
	fireAt := startAt.Add(-r.Lead)
	if now := time.Now().UTC(); fireAt.Before(now) {
		fireAt = now
	}

	payload, err := json.Marshal(models.ReminderPayload{BookingID: booking.ID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeBookingReminder, payload)
	if _, err := r.Client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}
