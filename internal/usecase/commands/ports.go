package commands

import (
	"context"

	"homefix-scheduling/internal/domain/appointment"
	"homefix-scheduling/internal/infra/db"

	"github.com/google/uuid"
)

// AppointmentRepository is the write side of the booking ledger. Create
// must be atomic with respect to the active-slot uniqueness: under
// concurrent identical requests exactly one insert may succeed.
type AppointmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) error
}

// OutboxRepository enqueues domain events in the booking transaction; a
// background publisher drains them to the broker afterwards.
type OutboxRepository interface {
	Enqueue(ctx context.Context, tx db.DBTX, eventType string, aggregateID uuid.UUID, payload []byte) error
}
