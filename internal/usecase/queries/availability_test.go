//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"homefix-scheduling/internal/domain/schedule"
	"homefix-scheduling/internal/pkg/clock"
	"homefix-scheduling/internal/usecase/queries"
	queriesmock "homefix-scheduling/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAvailabilityFixture(t *testing.T) (queries.AvailabilityQueries, *queriesmock.MockAppointmentReadStore, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)

	catalog, err := schedule.NewCatalog(schedule.CatalogConfig{
		DayStart:    "09:00",
		DayEnd:      "12:00",
		SlotMinutes: 60,
	})
	require.NoError(t, err)

	store := queriesmock.NewMockAppointmentReadStore(ctrl)
	clk := clock.NewMockClock(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	return queries.NewAvailabilityQueries(catalog, store, clk), store, clk
}

func mustDay(t *testing.T, v string) schedule.Day {
	t.Helper()
	day, err := schedule.ParseDay(v)
	require.NoError(t, err)
	return day
}

func mustSlot(t *testing.T, v string) schedule.Slot {
	t.Helper()
	slot, err := schedule.ParseSlot(v)
	require.NoError(t, err)
	return slot
}

func TestGetAvailableSlots(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	t.Run("free day returns the full catalog in order", func(t *testing.T) {
		q, store, _ := newAvailabilityFixture(t)
		day := mustDay(t, "2025-06-03")

		store.EXPECT().OccupiedSlots(gomock.Any(), resourceID, day).Return(nil, nil)

		view, err := q.GetAvailableSlots(ctx, resourceID, day)
		require.NoError(t, err)

		want := []string{"09:00", "10:00", "11:00"}
		if diff := cmp.Diff(want, view.Slots); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "2025-06-03", view.ServiceDate)
		assert.Equal(t, resourceID, view.ResourceID)
	})

	t.Run("booked slots drop out, gaps preserved", func(t *testing.T) {
		q, store, _ := newAvailabilityFixture(t)
		day := mustDay(t, "2025-06-03")

		store.EXPECT().OccupiedSlots(gomock.Any(), resourceID, day).
			Return([]schedule.Slot{mustSlot(t, "10:00")}, nil)

		view, err := q.GetAvailableSlots(ctx, resourceID, day)
		require.NoError(t, err)

		want := []string{"09:00", "11:00"}
		if diff := cmp.Diff(want, view.Slots); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("fully booked day is empty but not nil", func(t *testing.T) {
		q, store, _ := newAvailabilityFixture(t)
		day := mustDay(t, "2025-06-03")

		store.EXPECT().OccupiedSlots(gomock.Any(), resourceID, day).
			Return([]schedule.Slot{mustSlot(t, "09:00"), mustSlot(t, "10:00"), mustSlot(t, "11:00")}, nil)

		view, err := q.GetAvailableSlots(ctx, resourceID, day)
		require.NoError(t, err)
		require.NotNil(t, view.Slots)
		assert.Empty(t, view.Slots)
	})

	t.Run("past day short-circuits without hitting the store", func(t *testing.T) {
		q, _, _ := newAvailabilityFixture(t)
		day := mustDay(t, "2025-06-01")

		view, err := q.GetAvailableSlots(ctx, resourceID, day)
		require.NoError(t, err)
		require.NotNil(t, view.Slots)
		assert.Empty(t, view.Slots)
	})

	t.Run("today is still queryable", func(t *testing.T) {
		q, store, _ := newAvailabilityFixture(t)
		day := mustDay(t, "2025-06-02")

		store.EXPECT().OccupiedSlots(gomock.Any(), resourceID, day).Return(nil, nil)

		view, err := q.GetAvailableSlots(ctx, resourceID, day)
		require.NoError(t, err)
		assert.Len(t, view.Slots, 3)
	})

	t.Run("day boundary follows the clock", func(t *testing.T) {
		q, store, clk := newAvailabilityFixture(t)
		day := mustDay(t, "2025-06-02")

		// Same calendar day stays queryable right up to midnight.
		clk.Set(time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC))
		store.EXPECT().OccupiedSlots(gomock.Any(), resourceID, day).Return(nil, nil)
		view, err := q.GetAvailableSlots(ctx, resourceID, day)
		require.NoError(t, err)
		assert.Len(t, view.Slots, 3)

		clk.Add(time.Minute)
		view, err = q.GetAvailableSlots(ctx, resourceID, day)
		require.NoError(t, err)
		assert.Empty(t, view.Slots)
	})

	t.Run("store failure is marked", func(t *testing.T) {
		q, store, _ := newAvailabilityFixture(t)
		day := mustDay(t, "2025-06-03")

		store.EXPECT().OccupiedSlots(gomock.Any(), resourceID, day).
			Return(nil, errors.New("connection reset"))

		view, err := q.GetAvailableSlots(ctx, resourceID, day)
		require.ErrorIs(t, err, queries.ErrAvailabilityCheckFailed)
		assert.Nil(t, view)
	})
}
