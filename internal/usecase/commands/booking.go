package commands

import (
	"context"
	"encoding/json"

	"homefix-scheduling/internal/domain/appointment"
	"homefix-scheduling/internal/domain/schedule"
	"homefix-scheduling/internal/infra"
	"homefix-scheduling/internal/pkg/clock"
	"homefix-scheduling/internal/pkg/errs"
	"homefix-scheduling/internal/usecase/queries"

	"homefix-scheduling/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrInvalidDate             = errs.New("service date is in the past")
	ErrUnknownSlot             = errs.New("slot is not in the catalog")
	ErrSlotConflict            = errs.New("slot is already booked")
	ErrInvalidStatus           = errs.New("unknown appointment status")
	ErrInvalidTransition       = errs.New("invalid status transition")
	ErrForbidden               = errs.New("actor may not modify this appointment")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const (
	EventAppointmentBooked        = "appointment_booked"
	EventAppointmentCancelled     = "appointment_cancelled"
	EventAppointmentStatusChanged = "appointment_status_changed"
)

const (
	RoleCustomer = "customer"
	RoleOperator = "operator"
	RoleAdmin    = "admin"
)

// Actor identifies the authenticated caller for ownership checks.
type Actor struct {
	ID   uuid.UUID
	Role string
}

func (a Actor) isStaff() bool {
	return a.Role == RoleOperator || a.Role == RoleAdmin
}

type BookAppointmentParams struct {
	ResourceID uuid.UUID
	CustomerID uuid.UUID
	Date       schedule.Day
	Slot       schedule.Slot
	Notes      string
}

type BookingCommands interface {
	BookAppointment(ctx context.Context, params BookAppointmentParams) (*queries.AppointmentView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next appointment.Status, actor Actor) (*queries.AppointmentView, error)
	CancelAppointment(ctx context.Context, id uuid.UUID, actor Actor) (*queries.AppointmentView, error)
}

// Transactor begins ledger transactions; satisfied by *pgxpool.Pool.
type Transactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type bookingUseCaseImpl struct {
	appointmentRepo AppointmentRepository
	outboxRepo      OutboxRepository
	catalog         *schedule.Catalog
	db              Transactor
	clock           clock.Clock
}

func NewBookingUseCase(
	appointmentRepo AppointmentRepository,
	outboxRepo OutboxRepository,
	catalog *schedule.Catalog,
	transactor Transactor,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		appointmentRepo: appointmentRepo,
		outboxRepo:      outboxRepo,
		catalog:         catalog,
		db:              transactor,
		clock:           clk,
	}
}

// BookAppointment validates the request against the catalog and today's
// date, then inserts the pending appointment. The conflict check is not a
// separate read: the insert itself fails on the active-slot index when the
// key is taken, so two racing requests cannot both succeed.
func (u *bookingUseCaseImpl) BookAppointment(
	ctx context.Context,
	params BookAppointmentParams,
) (*queries.AppointmentView, error) {
	if !u.catalog.Contains(params.Slot) {
		return nil, ErrUnknownSlot
	}

	appt, err := appointment.NewAppointment(
		params.ResourceID,
		params.CustomerID,
		params.Date,
		params.Slot,
		params.Notes,
		u.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	err = u.withinTx(ctx, func(tx db.DBTX) error {
		if createErr := u.appointmentRepo.Create(ctx, tx, appt); createErr != nil {
			if infra.IsKind(createErr, infra.KindConflict) {
				return ErrSlotConflict
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return u.enqueueEvent(ctx, tx, EventAppointmentBooked, appt)
	})
	if err != nil {
		return nil, err
	}

	return toAppointmentView(appt), nil
}

func (u *bookingUseCaseImpl) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	next appointment.Status,
	actor Actor,
) (*queries.AppointmentView, error) {
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !actor.isStaff() {
		return nil, ErrForbidden
	}
	return u.transition(ctx, id, next, actor, EventAppointmentStatusChanged)
}

// CancelAppointment is UpdateStatus(cancelled) with relaxed authorization:
// customers may cancel their own appointments.
func (u *bookingUseCaseImpl) CancelAppointment(
	ctx context.Context,
	id uuid.UUID,
	actor Actor,
) (*queries.AppointmentView, error) {
	return u.transition(ctx, id, appointment.StatusCancelled, actor, EventAppointmentCancelled)
}

func (u *bookingUseCaseImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	next appointment.Status,
	actor Actor,
	eventType string,
) (*queries.AppointmentView, error) {
	var appt *appointment.Appointment

	err := u.withinTx(ctx, func(tx db.DBTX) error {
		found, findErr := u.appointmentRepo.FindByIDForUpdate(ctx, tx, id)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return queries.ErrAppointmentNotFound
			}
			return errs.Mark(findErr, ErrDatabaseOperationFailed)
		}

		if !actor.isStaff() && found.CustomerID() != actor.ID {
			return ErrForbidden
		}

		if txnErr := found.TransitionTo(next, u.clock.Now()); txnErr != nil {
			return errs.Mark(txnErr, ErrInvalidTransition)
		}

		if updErr := u.appointmentRepo.UpdateStatus(ctx, tx, found); updErr != nil {
			return errs.Mark(updErr, ErrDatabaseOperationFailed)
		}

		appt = found
		return u.enqueueEvent(ctx, tx, eventType, found)
	})
	if err != nil {
		return nil, err
	}

	return toAppointmentView(appt), nil
}

func (u *bookingUseCaseImpl) enqueueEvent(ctx context.Context, tx db.DBTX, eventType string, appt *appointment.Appointment) error {
	payload, err := json.Marshal(map[string]any{
		"appointment_id": appt.ID(),
		"resource_id":    appt.ResourceID(),
		"customer_id":    appt.CustomerID(),
		"service_date":   appt.ServiceDate().String(),
		"slot":           appt.Slot().String(),
		"status":         appt.Status().String(),
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if enqErr := u.outboxRepo.Enqueue(ctx, tx, eventType, appt.ID(), payload); enqErr != nil {
		return errs.Mark(enqErr, ErrDatabaseOperationFailed)
	}
	return nil
}

func toAppointmentView(appt *appointment.Appointment) *queries.AppointmentView {
	var notes *string
	if appt.Notes() != "" {
		n := appt.Notes()
		notes = &n
	}
	return &queries.AppointmentView{
		ID:          appt.ID(),
		ResourceID:  appt.ResourceID(),
		CustomerID:  appt.CustomerID(),
		ServiceDate: appt.ServiceDate().String(),
		Slot:        appt.Slot().String(),
		Status:      appt.Status().String(),
		Notes:       notes,
		CreatedAt:   appt.CreatedAt(),
		UpdatedAt:   appt.UpdatedAt(),
	}
}
