//go:build unit

package schedule_test

import (
	"testing"

	"homefix-scheduling/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotStrings(slots []schedule.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestNewCatalog(t *testing.T) {
	t.Run("generates ordered slots from day template", func(t *testing.T) {
		catalog, err := schedule.NewCatalog(schedule.CatalogConfig{
			DayStart:    "09:00",
			DayEnd:      "12:00",
			SlotMinutes: 60,
		})
		require.NoError(t, err)

		want := []string{"09:00", "10:00", "11:00"}
		if diff := cmp.Diff(want, slotStrings(catalog.Slots())); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 3, catalog.Len())
	})

	t.Run("30 minute slots over a working day", func(t *testing.T) {
		catalog, err := schedule.NewCatalog(schedule.CatalogConfig{
			DayStart:    "08:00",
			DayEnd:      "18:00",
			SlotMinutes: 30,
		})
		require.NoError(t, err)

		slots := catalog.Slots()
		require.Len(t, slots, 20)
		assert.Equal(t, "08:00", slots[0].String())
		assert.Equal(t, "17:30", slots[len(slots)-1].String())

		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].Before(slots[i]), "slots must be strictly ascending")
		}
	})

	t.Run("invalid configurations", func(t *testing.T) {
		cases := []struct {
			name string
			cfg  schedule.CatalogConfig
		}{
			{"start after end", schedule.CatalogConfig{DayStart: "18:00", DayEnd: "08:00", SlotMinutes: 30}},
			{"start equals end", schedule.CatalogConfig{DayStart: "08:00", DayEnd: "08:00", SlotMinutes: 30}},
			{"zero slot width", schedule.CatalogConfig{DayStart: "08:00", DayEnd: "18:00", SlotMinutes: 0}},
			{"negative slot width", schedule.CatalogConfig{DayStart: "08:00", DayEnd: "18:00", SlotMinutes: -30}},
			{"uneven division", schedule.CatalogConfig{DayStart: "09:00", DayEnd: "12:00", SlotMinutes: 45}},
			{"malformed start", schedule.CatalogConfig{DayStart: "nine", DayEnd: "12:00", SlotMinutes: 30}},
			{"malformed end", schedule.CatalogConfig{DayStart: "09:00", DayEnd: "25:00", SlotMinutes: 30}},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := schedule.NewCatalog(c.cfg)
				require.ErrorIs(t, err, schedule.ErrInvalidConfiguration)
			})
		}
	})

	t.Run("membership check", func(t *testing.T) {
		catalog, err := schedule.NewCatalog(schedule.CatalogConfig{
			DayStart:    "09:00",
			DayEnd:      "12:00",
			SlotMinutes: 60,
		})
		require.NoError(t, err)

		inCatalog, _ := schedule.ParseSlot("10:00")
		offGrid, _ := schedule.ParseSlot("10:30")
		outsideHours, _ := schedule.ParseSlot("13:00")

		assert.True(t, catalog.Contains(inCatalog))
		assert.False(t, catalog.Contains(offGrid))
		assert.False(t, catalog.Contains(outsideHours))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		catalog, err := schedule.NewCatalog(schedule.CatalogConfig{
			DayStart:    "09:00",
			DayEnd:      "11:00",
			SlotMinutes: 60,
		})
		require.NoError(t, err)

		first := catalog.Slots()
		mutated, _ := schedule.ParseSlot("23:00")
		first[0] = mutated

		assert.Equal(t, "09:00", catalog.Slots()[0].String())
	})
}

func TestFreeSlots(t *testing.T) {
	catalog, err := schedule.NewCatalog(schedule.CatalogConfig{
		DayStart:    "09:00",
		DayEnd:      "12:00",
		SlotMinutes: 60,
	})
	require.NoError(t, err)

	mustSlot := func(v string) schedule.Slot {
		s, err := schedule.ParseSlot(v)
		require.NoError(t, err)
		return s
	}

	t.Run("booked slot disappears, order preserved", func(t *testing.T) {
		free := schedule.FreeSlots(catalog.Slots(), []schedule.Slot{mustSlot("10:00")})

		want := []string{"09:00", "11:00"}
		if diff := cmp.Diff(want, slotStrings(free)); diff != "" {
			t.Errorf("free slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no occupied slots returns full catalog", func(t *testing.T) {
		free := schedule.FreeSlots(catalog.Slots(), nil)
		assert.Len(t, free, catalog.Len())
	})

	t.Run("fully booked day is empty", func(t *testing.T) {
		free := schedule.FreeSlots(catalog.Slots(), catalog.Slots())
		assert.Empty(t, free)
	})

	t.Run("occupied slots outside the catalog are ignored", func(t *testing.T) {
		free := schedule.FreeSlots(catalog.Slots(), []schedule.Slot{mustSlot("14:00")})
		assert.Len(t, free, catalog.Len())
	})
}
