package repository

import (
	"context"
	"time"

	"homefix-scheduling/internal/domain/appointment"
	"homefix-scheduling/internal/domain/schedule"
	"homefix-scheduling/internal/infra"
	"homefix-scheduling/internal/infra/db"

	"github.com/google/uuid"
)

const insertAppointmentSQL = `
	INSERT INTO appointments
		(id, resource_id, customer_id, service_date, slot_start, status, notes, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

const selectAppointmentForUpdateSQL = `
	SELECT id, resource_id, customer_id, service_date, slot_start, status, COALESCE(notes, ''), created_at, updated_at
	FROM appointments
	WHERE id = $1
	FOR UPDATE
`

const updateAppointmentStatusSQL = `
	UPDATE appointments
	SET status = $2, updated_at = $3
	WHERE id = $1
`

// AppointmentRepository is the only writer of the appointments table. All
// methods run on the caller's transaction so the conflict check, the row
// update and the outbox insert commit or roll back together.
type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

// Create inserts the appointment. A violation of the active-slot partial
// unique index surfaces as KindConflict; there is no separate existence
// check that could race.
func (r *AppointmentRepository) Create(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) error {
	_, err := tx.Exec(ctx, insertAppointmentSQL,
		appt.ID(),
		appt.ResourceID(),
		appt.CustomerID(),
		appt.ServiceDate().Time(),
		appt.Slot().String(),
		appt.Status().String(),
		appt.Notes(),
		appt.CreatedAt(),
		appt.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row := tx.QueryRow(ctx, selectAppointmentForUpdateSQL, id)

	var (
		apptID      uuid.UUID
		resourceID  uuid.UUID
		customerID  uuid.UUID
		serviceDate time.Time
		slotStart   string
		status      string
		notes       string
		createdAt   time.Time
		updatedAt   time.Time
	)
	if err := row.Scan(&apptID, &resourceID, &customerID, &serviceDate, &slotStart, &status, &notes, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find appointment for update", err)
	}

	slot, err := schedule.ParseSlot(slotStart)
	if err != nil {
		return nil, infra.WrapRepoErr("stored slot is malformed", err, infra.KindDBFailure)
	}

	appt, err := appointment.ReconstructAppointment(
		apptID, resourceID, customerID,
		schedule.DayOf(serviceDate),
		slot,
		appointment.Status(status),
		notes,
		createdAt, updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("stored appointment is invalid", err, infra.KindDBFailure)
	}
	return appt, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) error {
	tag, err := tx.Exec(ctx, updateAppointmentStatusSQL,
		appt.ID(),
		appt.Status().String(),
		appt.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment disappeared during update", nil, infra.KindNotFound)
	}
	return nil
}
