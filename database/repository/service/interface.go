package serviceRepo

import (
	"shutterbook/models"
)

// ServiceRepository is the read-only catalog lookup consumed by the
// scheduling engine. Catalog management itself lives outside this system.
type ServiceRepository interface {
	// FindByID retrieves a service by ID, or nil if absent.
	FindByID(serviceID string) (*models.Service, error)
}
