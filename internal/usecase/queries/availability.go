package queries

import (
	"context"

	"homefix-scheduling/internal/domain/schedule"
	"homefix-scheduling/internal/pkg/clock"
	"homefix-scheduling/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAvailabilityCheckFailed = errs.New("availability check failed")

// AppointmentReadStore is the read-side port into the appointment ledger.
// Only the ledger writes; availability is a pure projection over it.
type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*AppointmentListItem, error)
	ListByResourceDay(ctx context.Context, resourceID uuid.UUID, day schedule.Day) ([]*AppointmentView, error)
	OccupiedSlots(ctx context.Context, resourceID uuid.UUID, day schedule.Day) ([]schedule.Slot, error)
}

type AvailabilityQueries interface {
	GetAvailableSlots(ctx context.Context, resourceID uuid.UUID, day schedule.Day) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	catalog *schedule.Catalog
	store   AppointmentReadStore
	clock   clock.Clock
}

func NewAvailabilityQueries(catalog *schedule.Catalog, store AppointmentReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		catalog: catalog,
		store:   store,
		clock:   clk,
	}
}

// GetAvailableSlots returns the catalog slots still free for the resource
// on the given day, in catalog order. Past days yield an empty list without
// touching the store; the ledger cannot make yesterday bookable.
func (q *availabilityQueriesImpl) GetAvailableSlots(
	ctx context.Context,
	resourceID uuid.UUID,
	day schedule.Day,
) (*AvailabilityView, error) {
	view := &AvailabilityView{
		ResourceID:  resourceID,
		ServiceDate: day.String(),
		Slots:       []string{},
	}

	if day.Before(schedule.DayOf(q.clock.Now())) {
		return view, nil
	}

	occupied, err := q.store.OccupiedSlots(ctx, resourceID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityCheckFailed)
	}

	for _, s := range schedule.FreeSlots(q.catalog.Slots(), occupied) {
		view.Slots = append(view.Slots, s.String())
	}
	return view, nil
}
