//go:build unit || e2e

package builder

import (
	"time"

	domappt "homefix-scheduling/internal/domain/appointment"
	"homefix-scheduling/internal/domain/schedule"
	reqdto "homefix-scheduling/internal/handler/dto/request"
	"homefix-scheduling/internal/usecase/commands"
	"homefix-scheduling/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	CustomerID uuid.UUID
	Date       string
	Slot       string
	Status     domappt.Status
	Notes      string
	Now        time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:         uuid.New(),
		ResourceID: uuid.New(),
		CustomerID: uuid.New(),
		Date:       "2025-06-03",
		Slot:       "09:00",
		Status:     domappt.StatusPending,
		Notes:      "Leaky kitchen faucet",
		Now:        now,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) day() schedule.Day {
	day, err := schedule.ParseDay(b.Date)
	if err != nil {
		panic("builder date must be valid: " + b.Date)
	}
	return day
}

func (b *AppointmentBuilder) slot() schedule.Slot {
	slot, err := schedule.ParseSlot(b.Slot)
	if err != nil {
		panic("builder slot must be valid: " + b.Slot)
	}
	return slot
}

func (b *AppointmentBuilder) BuildDomain() (*domappt.Appointment, error) {
	return domappt.NewAppointment(b.ResourceID, b.CustomerID, b.day(), b.slot(), b.Notes, b.Now)
}

func (b *AppointmentBuilder) BuildReconstructed() (*domappt.Appointment, error) {
	return domappt.ReconstructAppointment(
		b.ID, b.ResourceID, b.CustomerID, b.day(), b.slot(), b.Status, b.Notes, b.Now, b.Now,
	)
}

func (b *AppointmentBuilder) BuildParams() commands.BookAppointmentParams {
	return commands.BookAppointmentParams{
		ResourceID: b.ResourceID,
		CustomerID: b.CustomerID,
		Date:       b.day(),
		Slot:       b.slot(),
		Notes:      b.Notes,
	}
}

func (b *AppointmentBuilder) BuildBookRequestDTO() reqdto.BookAppointmentRequest {
	notes := b.Notes
	return reqdto.BookAppointmentRequest{
		ResourceID: b.ResourceID,
		Date:       b.Date,
		Slot:       b.Slot,
		Notes:      &notes,
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	notes := b.Notes
	return &queries.AppointmentView{
		ID:          b.ID,
		ResourceID:  b.ResourceID,
		CustomerID:  b.CustomerID,
		ServiceDate: b.Date,
		Slot:        b.Slot,
		Status:      string(b.Status),
		Notes:       &notes,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}
