package schedule

import (
	"errors"
)

var ErrInvalidConfiguration = errors.New("invalid slot catalog configuration")

// CatalogConfig is the day template: working hours plus the slot width.
// It is setup-time input; a config that does not divide evenly into slots
// is rejected before the service starts taking bookings.
type CatalogConfig struct {
	DayStart    string
	DayEnd      string
	SlotMinutes int
}

// Catalog holds the canonical ordered slot sequence for a service day.
// Immutable after construction; safe for concurrent readers.
type Catalog struct {
	slots []Slot
	index map[int]struct{}
}

func NewCatalog(cfg CatalogConfig) (*Catalog, error) {
	start, err := ParseSlot(cfg.DayStart)
	if err != nil {
		return nil, ErrInvalidConfiguration
	}
	end, err := ParseSlot(cfg.DayEnd)
	if err != nil {
		return nil, ErrInvalidConfiguration
	}
	if !start.Before(end) {
		return nil, ErrInvalidConfiguration
	}
	if cfg.SlotMinutes <= 0 {
		return nil, ErrInvalidConfiguration
	}
	span := end.Minutes() - start.Minutes()
	if span%cfg.SlotMinutes != 0 {
		return nil, ErrInvalidConfiguration
	}

	count := span / cfg.SlotMinutes
	slots := make([]Slot, 0, count)
	index := make(map[int]struct{}, count)
	for m := start.Minutes(); m < end.Minutes(); m += cfg.SlotMinutes {
		slots = append(slots, Slot{minutes: m})
		index[m] = struct{}{}
	}

	return &Catalog{slots: slots, index: index}, nil
}

// Slots returns the slots in ascending time order. The returned slice is a
// copy; callers may not mutate the catalog through it.
func (c *Catalog) Slots() []Slot {
	out := make([]Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

func (c *Catalog) Contains(s Slot) bool {
	_, ok := c.index[s.Minutes()]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.slots)
}
