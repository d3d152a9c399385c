package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

var ErrInvalidTimeLabel = errors.New("invalid time label")

// ParseTimeLabel converts a 12-hour label such as "2:00 PM" into minutes
// since midnight.
func ParseTimeLabel(label string) (int, error) {
	clock, marker, ok := strings.Cut(label, " ")
	if !ok || strings.Contains(marker, " ") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, label)
	}

	hourStr, minuteStr, ok := strings.Cut(clock, ":")
	if !ok || len(hourStr) < 1 || len(hourStr) > 2 || len(minuteStr) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, label)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 || !isDigits(hourStr) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, label)
	}

	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute > 59 || !isDigits(minuteStr) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, label)
	}

	switch strings.ToUpper(marker) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, label)
	}

	return hour*MinutesPerHour + minute, nil
}

// FormatMinutes is the inverse of ParseTimeLabel. It does not wrap values
// past the end of the day; m must be non-negative.
func FormatMinutes(m int) string {
	hours := m / MinutesPerHour
	mins := m % MinutesPerHour

	switch {
	case hours == 0:
		return fmt.Sprintf("12:%02d AM", mins)
	case hours < 12:
		return fmt.Sprintf("%d:%02d AM", hours, mins)
	case hours == 12:
		return fmt.Sprintf("12:%02d PM", mins)
	default:
		return fmt.Sprintf("%d:%02d PM", hours-12, mins)
	}
}

// NormalizeTimeLabel returns the canonical spelling of label ("02:00 pm"
// becomes "2:00 PM").
func NormalizeTimeLabel(label string) (string, error) {
	m, err := ParseTimeLabel(strings.TrimSpace(label))
	if err != nil {
		return "", err
	}
	return FormatMinutes(m), nil
}

// ParseClock accepts either a 12-hour label or a 24-hour "HH:MM" value and
// returns the canonical 12-hour label.
func ParseClock(value string) (string, error) {
	value = strings.TrimSpace(value)
	if label, err := NormalizeTimeLabel(value); err == nil {
		return label, nil
	}

	hourStr, minuteStr, ok := strings.Cut(value, ":")
	if !ok || len(minuteStr) != 2 || !isDigits(hourStr) || !isDigits(minuteStr) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeLabel, value)
	}
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minuteStr)
	if len(hourStr) > 2 || hour > 23 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeLabel, value)
	}
	return FormatMinutes(hour*MinutesPerHour + minute), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
