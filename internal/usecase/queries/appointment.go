package queries

import (
	"context"

	"homefix-scheduling/internal/domain/schedule"
	"homefix-scheduling/internal/infra"
	"homefix-scheduling/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrQueryFailed         = errs.New("appointment query failed")
)

const defaultListLimit = 50

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*AppointmentListItem, error)
	ListByResourceDay(ctx context.Context, resourceID uuid.UUID, day schedule.Day) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*AppointmentListItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	items, err := q.store.ListByCustomer(ctx, customerID, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}

func (q *appointmentQueriesImpl) ListByResourceDay(ctx context.Context, resourceID uuid.UUID, day schedule.Day) ([]*AppointmentView, error) {
	views, err := q.store.ListByResourceDay(ctx, resourceID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
