// Package hours answers "is this venue open" questions over the 24 hour clock.
package hours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the size of the circular time domain.
const MinutesPerDay = 24 * 60

// ErrInvalidTime is returned for any time of day outside 00:00-23:59 or malformed text.
var ErrInvalidTime = errors.New("invalid time of day")

// TimeOfDay is a point on the 24 hour clock, stored as minutes since midnight.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay and rejects out of range components.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %d:%d", ErrInvalidTime, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay is NewTimeOfDay for values known to be valid. It panics otherwise.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay parses "HH:MM" (24 hour clock). A single digit hour is accepted.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 || !isDigits(hh) || !isDigits(mm) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return NewTimeOfDay(hour, minute)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Valid reports whether t lies within 00:00-23:59.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Fractional returns hour + minute/60, the unit the day-part windows are expressed in.
func (t TimeOfDay) Fractional() float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidTime, int(t))
	}
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func validate(ts ...TimeOfDay) error {
	for _, t := range ts {
		if !t.Valid() {
			return fmt.Errorf("%w: %d minutes", ErrInvalidTime, int(t))
		}
	}
	return nil
}
