package schedule

import (
	"strconv"
	"strings"
)

// Occupancy is the part of a booking the calendar cares about. Duration is
// kept in its stored string form; see ParseDuration.
type Occupancy struct {
	Date      string
	Time      string
	Duration  string
	Confirmed bool
}

// Block is an administrator-declared unavailable slot.
type Block struct {
	Date string
	Time string
}

// ParseDuration reports the whole number of hours in raw. Empty, non-numeric,
// zero and negative values are not usable durations.
func ParseDuration(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return 0, false
	}
	return hours, true
}

// ExpandOccupiedSlots lists the hourly labels a booking starting at start
// occupies. The result is cut at midnight instead of wrapping into the next
// date, so "10:00 PM" for four hours yields two labels.
func ExpandOccupiedSlots(start string, hours int) ([]string, error) {
	startMinutes, err := ParseTimeLabel(start)
	if err != nil {
		return nil, err
	}

	end := startMinutes + hours*MinutesPerHour
	var occupied []string
	for offset := startMinutes; offset < end && offset < MinutesPerDay; offset += MinutesPerHour {
		occupied = append(occupied, FormatMinutes(offset))
	}
	return occupied, nil
}

// Occupied returns every label o holds on its date: the expanded range when o
// has a usable duration, otherwise just its start label.
func Occupied(o Occupancy) ([]string, error) {
	hours, ok := ParseDuration(o.Duration)
	if !ok {
		return []string{o.Time}, nil
	}
	return ExpandOccupiedSlots(o.Time, hours)
}
