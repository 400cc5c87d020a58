package models

import "time"

// Booking status lifecycle: pending -> {confirmed, cancelled},
// confirmed -> {completed, cancelled}; cancelled and completed are terminal.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment statuses follow an independent lifecycle from booking status.
const (
	PaymentStatusUnpaid      = "unpaid"
	PaymentStatusDepositPaid = "deposit_paid"
	PaymentStatusPaid        = "paid"
)

// ValidBookingStatus reports whether s is a known booking status value.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Booking represents a single appointment. The client contact fields are a
// snapshot taken at creation, not a live reference. EndTime is computed once
// from the service duration at creation and stored; later service edits do
// not retroactively change it. Bookings are never physically deleted on
// cancellation; status is set to cancelled instead.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	PhotographerID string    `bson:"photographer_id" json:"photographerId"`
	ServiceID      string    `bson:"service_id" json:"serviceId"`
	ClientName     string    `bson:"client_name" json:"clientName"`
	ClientEmail    string    `bson:"client_email" json:"clientEmail"`
	ClientPhone    string    `bson:"client_phone,omitempty" json:"clientPhone,omitempty"`
	Date           time.Time `bson:"date" json:"date"`                    // Calendar date, normalized to midnight UTC
	TimeSlot       string    `bson:"time_slot" json:"timeSlot"`           // "HH:MM" start time
	EndTime        string    `bson:"end_time" json:"endTime"`             // "HH:MM", start + service duration
	Status         string    `bson:"status" json:"status"`                // pending | confirmed | cancelled | completed
	PaymentStatus  string    `bson:"payment_status" json:"paymentStatus"` // unpaid | deposit_paid | paid
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	ReminderSent   bool      `bson:"reminder_sent" json:"reminderSent"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// CreateBookingRequest is the public booking-request payload.
type CreateBookingRequest struct {
	PhotographerID string `json:"photographerId" binding:"required"`
	ServiceID      string `json:"serviceId" binding:"required"`
	ClientName     string `json:"clientName" binding:"required"`
	ClientEmail    string `json:"clientEmail" binding:"required,email"`
	ClientPhone    string `json:"clientPhone"`
	Date           string `json:"date" binding:"required"`     // "YYYY-MM-DD"
	TimeSlot       string `json:"timeSlot" binding:"required"` // "HH:MM"
	Notes          string `json:"notes"`
}

// UpdateBookingStatusRequest is the owner-only status mutation payload.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingResponse is a created booking with its service populated.
type BookingResponse struct {
	Booking
	Service ServiceSummary `json:"service"`
}
