package request

import (
	"strings"

	"homefix-scheduling/internal/domain/schedule"
	"homefix-scheduling/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	Slot       string    `json:"slot" binding:"required"`
	Notes      *string   `json:"notes,omitempty"`
}

// ToParams parses the wire-level date and slot strings into domain values.
// The catalog membership check stays in the usecase; this only rejects
// strings that are not a date or a time at all.
func (r BookAppointmentRequest) ToParams(customerID uuid.UUID) (commands.BookAppointmentParams, error) {
	day, err := schedule.ParseDay(r.Date)
	if err != nil {
		return commands.BookAppointmentParams{}, err
	}

	slot, err := schedule.ParseSlot(r.Slot)
	if err != nil {
		return commands.BookAppointmentParams{}, err
	}

	notes := ""
	if r.Notes != nil {
		notes = strings.TrimSpace(*r.Notes)
	}

	return commands.BookAppointmentParams{
		ResourceID: r.ResourceID,
		CustomerID: customerID,
		Date:       day,
		Slot:       slot,
		Notes:      notes,
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
