package schedule

import (
	"errors"
	"time"
)

var ErrInvalidDay = errors.New("invalid day")

const dayLayout = "2006-01-02"

// Day is a calendar date with no time component. All "is this date in the
// past" checks in the booking flow go through Day so they cannot be skewed
// by the time-of-day portion of a timestamp.
type Day struct {
	year  int
	month time.Month
	day   int
}

func ParseDay(value string) (Day, error) {
	t, err := time.Parse(dayLayout, value)
	if err != nil {
		return Day{}, ErrInvalidDay
	}
	return DayOf(t), nil
}

func DayOf(t time.Time) Day {
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d Day) String() string {
	return d.Time().Format(dayLayout)
}

// Time returns midnight of the day in UTC, the canonical storage form.
func (d Day) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Day) Before(other Day) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d Day) Equal(other Day) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}
