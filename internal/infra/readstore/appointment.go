package readstore

import (
	"context"
	"errors"
	"time"

	"homefix-scheduling/internal/domain/appointment"
	"homefix-scheduling/internal/domain/schedule"
	"homefix-scheduling/internal/infra"
	"homefix-scheduling/internal/infra/db"
	"homefix-scheduling/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const appointmentColumns = `id, resource_id, customer_id, service_date, slot_start, status, notes, created_at, updated_at`

const findAppointmentByIDSQL = `
	SELECT ` + appointmentColumns + `
	FROM appointments
	WHERE id = $1
`

const listByCustomerSQL = `
	SELECT id, resource_id, service_date, slot_start, status, created_at
	FROM appointments
	WHERE customer_id = $1
	ORDER BY service_date DESC, slot_start DESC
	LIMIT $2
`

const listByResourceDaySQL = `
	SELECT ` + appointmentColumns + `
	FROM appointments
	WHERE resource_id = $1 AND service_date = $2
	ORDER BY slot_start
`

const occupiedSlotsSQL = `
	SELECT slot_start
	FROM appointments
	WHERE resource_id = $1
	  AND service_date = $2
	  AND status = ANY($3)
	ORDER BY slot_start
`

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(pool db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: pool}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	view, err := scanAppointmentView(r.db.QueryRow(ctx, findAppointmentByIDSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return view, nil
}

func (r *AppointmentReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, listByCustomerSQL, customerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by customer", err)
	}
	defer rows.Close()

	items := make([]*queries.AppointmentListItem, 0)
	for rows.Next() {
		var (
			item        queries.AppointmentListItem
			serviceDate time.Time
		)
		if err := rows.Scan(&item.ID, &item.ResourceID, &serviceDate, &item.Slot, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment list item", err)
		}
		item.ServiceDate = schedule.DayOf(serviceDate).String()
		items = append(items, &item)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", rows.Err())
	}
	return items, nil
}

func (r *AppointmentReadStore) ListByResourceDay(ctx context.Context, resourceID uuid.UUID, day schedule.Day) ([]*queries.AppointmentView, error) {
	rows, err := r.db.Query(ctx, listByResourceDaySQL, resourceID, day.Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by resource", err)
	}
	defer rows.Close()

	views := make([]*queries.AppointmentView, 0)
	for rows.Next() {
		view, err := scanAppointmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		views = append(views, view)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", rows.Err())
	}
	return views, nil
}

// OccupiedSlots returns the slot starts held by active appointments for
// the resource/day pair, already parsed into domain slots.
func (r *AppointmentReadStore) OccupiedSlots(ctx context.Context, resourceID uuid.UUID, day schedule.Day) ([]schedule.Slot, error) {
	active := make([]string, 0, 3)
	for _, s := range appointment.ActiveStatuses() {
		active = append(active, s.String())
	}

	rows, err := r.db.Query(ctx, occupiedSlotsSQL, resourceID, day.Time(), active)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupied slots", err)
	}
	defer rows.Close()

	var slots []schedule.Slot
	for rows.Next() {
		var slotStart string
		if err := rows.Scan(&slotStart); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied slot", err)
		}
		slot, parseErr := schedule.ParseSlot(slotStart)
		if parseErr != nil {
			return nil, infra.WrapRepoErr("stored slot is malformed", parseErr, infra.KindDBFailure)
		}
		slots = append(slots, slot)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied slots", rows.Err())
	}
	return slots, nil
}

func scanAppointmentView(row pgx.Row) (*queries.AppointmentView, error) {
	var (
		view        queries.AppointmentView
		serviceDate time.Time
		notes       *string
	)
	if err := row.Scan(
		&view.ID,
		&view.ResourceID,
		&view.CustomerID,
		&serviceDate,
		&view.Slot,
		&view.Status,
		&notes,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return nil, err
	}
	view.ServiceDate = schedule.DayOf(serviceDate).String()
	view.Notes = notes
	return &view, nil
}
