package appointment

import (
	"errors"
	"strings"
	"time"

	"homefix-scheduling/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrPastDate          = errors.New("service date is in the past")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

const maxNotesLen = 1000

// Appointment is one resource occupying one slot on one date. Only the
// status and updatedAt fields ever change after creation.
type Appointment struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	customerID  uuid.UUID
	serviceDate schedule.Day
	slot        schedule.Slot
	status      Status
	notes       string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewAppointment creates a pending appointment. The date check is day
// granular: today is bookable, yesterday is not.
func NewAppointment(
	resourceID, customerID uuid.UUID,
	serviceDate schedule.Day,
	slot schedule.Slot,
	notes string,
	now time.Time,
) (*Appointment, error) {
	if serviceDate.Before(schedule.DayOf(now)) {
		return nil, ErrPastDate
	}

	notes = strings.TrimSpace(notes)
	if len(notes) > maxNotesLen {
		notes = notes[:maxNotesLen]
	}

	return &Appointment{
		id:          uuid.New(),
		resourceID:  resourceID,
		customerID:  customerID,
		serviceDate: serviceDate,
		slot:        slot,
		status:      StatusPending,
		notes:       notes,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructAppointment(
	id, resourceID, customerID uuid.UUID,
	serviceDate schedule.Day,
	slot schedule.Slot,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
) (*Appointment, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Appointment{
		id:          id,
		resourceID:  resourceID,
		customerID:  customerID,
		serviceDate: serviceDate,
		slot:        slot,
		status:      status,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// TransitionTo advances the lifecycle. updatedAt never moves backwards
// even if the caller's clock does.
func (a *Appointment) TransitionTo(next Status, now time.Time) error {
	if !a.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.status = next
	if now.After(a.updatedAt) {
		a.updatedAt = now
	}
	return nil
}

func (a *Appointment) Cancel(now time.Time) error {
	return a.TransitionTo(StatusCancelled, now)
}

func (a *Appointment) IsActive() bool {
	return a.status.IsActive()
}

func (a *Appointment) ID() uuid.UUID             { return a.id }
func (a *Appointment) ResourceID() uuid.UUID     { return a.resourceID }
func (a *Appointment) CustomerID() uuid.UUID     { return a.customerID }
func (a *Appointment) ServiceDate() schedule.Day { return a.serviceDate }
func (a *Appointment) Slot() schedule.Slot       { return a.slot }
func (a *Appointment) Status() Status            { return a.status }
func (a *Appointment) Notes() string             { return a.notes }
func (a *Appointment) CreatedAt() time.Time      { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time      { return a.updatedAt }
