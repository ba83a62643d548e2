package schedule

import (
	"errors"
	"fmt"
)

var ErrInvalidSlot = errors.New("invalid slot time")

const minutesPerDay = 24 * 60

// Slot is the start of one fixed-width booking interval within a day,
// held as minutes from midnight so slots compare and sort as plain ints.
type Slot struct {
	minutes int
}

func ParseSlot(value string) (Slot, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(value, "%2d:%2d", &hour, &minute); err != nil {
		return Slot{}, ErrInvalidSlot
	}
	if len(value) != 5 || value[2] != ':' {
		return Slot{}, ErrInvalidSlot
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{minutes: hour*60 + minute}, nil
}

func SlotFromMinutes(minutes int) (Slot, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{minutes: minutes}, nil
}

func (s Slot) Minutes() int {
	return s.minutes
}

func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.minutes/60, s.minutes%60)
}

func (s Slot) Before(other Slot) bool {
	return s.minutes < other.minutes
}
