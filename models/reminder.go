package models

// ReminderPayload is the asynq task payload for booking reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}
