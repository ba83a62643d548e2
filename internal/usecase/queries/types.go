package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AppointmentView struct {
	ID          uuid.UUID `json:"id"`
	ResourceID  uuid.UUID `json:"resource_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	ServiceDate string    `json:"service_date"`
	Slot        string    `json:"slot"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentListItem struct {
	ID          uuid.UUID `json:"id"`
	ResourceID  uuid.UUID `json:"resource_id"`
	ServiceDate string    `json:"service_date"`
	Slot        string    `json:"slot"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// AvailabilityView is the derived projection for one (resource, date) pair.
// It is recomputed on every query and never cached across writes.
type AvailabilityView struct {
	ResourceID  uuid.UUID `json:"resource_id"`
	ServiceDate string    `json:"service_date"`
	Slots       []string  `json:"slots"`
}
