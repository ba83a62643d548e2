package schedule

// FreeSlots returns the catalog slots not present in occupied, preserving
// catalog order. Exclusion is keyed on the slot start, so lookup stays O(1)
// per slot regardless of how many appointments a resource has that day.
func FreeSlots(catalog []Slot, occupied []Slot) []Slot {
	if len(occupied) == 0 {
		out := make([]Slot, len(catalog))
		copy(out, catalog)
		return out
	}

	taken := make(map[int]struct{}, len(occupied))
	for _, s := range occupied {
		taken[s.Minutes()] = struct{}{}
	}

	free := make([]Slot, 0, len(catalog))
	for _, s := range catalog {
		if _, ok := taken[s.Minutes()]; ok {
			continue
		}
		free = append(free, s)
	}
	return free
}
