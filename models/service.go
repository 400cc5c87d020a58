package models

import "time"

// Service is a catalog entry owned by a photographer. The booking engine
// treats the catalog as a read-only lookup: only duration and the active
// flag participate in scheduling, the rest is echoed back to clients.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	PhotographerID  string    `bson:"photographer_id" json:"photographerId"`
	Name            string    `bson:"name" json:"name"`
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"` // >= 15
	Price           float64   `bson:"price" json:"price"`
	DepositAmount   float64   `bson:"deposit_amount" json:"depositAmount"`
	IsActive        bool      `bson:"is_active" json:"isActive"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// ServiceSummary is the slice of a service embedded in booking responses.
type ServiceSummary struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	DepositAmount   float64 `json:"depositAmount"`
}

// Summary returns the embeddable view of the service.
func (s *Service) Summary() ServiceSummary {
	return ServiceSummary{
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		DepositAmount:   s.DepositAmount,
	}
}
