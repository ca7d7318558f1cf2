package hours

import (
	"fmt"
	"strings"
)

// DayPart names one of the four fixed activity periods.
type DayPart string

const (
	Dawn  DayPart = "dawn"
	Day   DayPart = "day"
	Dusk  DayPart = "dusk"
	Night DayPart = "night"
)

// Window is a day-part and its whole-hour bounds.
type Window struct {
	Part      DayPart
	Label     string
	StartHour int
	EndHour   int
}

// Windows lists the day-parts in display order. Night wraps past midnight.
var Windows = []Window{
	{Part: Dawn, Label: "Morning", StartHour: 5, EndHour: 12},
	{Part: Day, Label: "Midday", StartHour: 12, EndHour: 17},
	{Part: Dusk, Label: "Evening", StartHour: 17, EndHour: 21},
	{Part: Night, Label: "Night", StartHour: 21, EndHour: 5},
}

// DayPartForHour picks the day-part a whole hour belongs to.
func DayPartForHour(hour int) (DayPart, error) {
	switch {
	case hour < 0 || hour > 23:
		return "", fmt.Errorf("%w: hour %d", ErrInvalidTime, hour)
	case hour >= 5 && hour < 12:
		return Dawn, nil
	case hour >= 12 && hour < 17:
		return Day, nil
	case hour >= 17 && hour < 21:
		return Dusk, nil
	default:
		return Night, nil
	}
}

// Mode selects the overlap rule used to compute day-part flags.
type Mode string

const (
	ModeLegacy   Mode = "legacy"
	ModeCircular Mode = "circular"
)

// ParseMode accepts "legacy" or "circular"; empty means legacy.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeLegacy:
		return ModeLegacy, nil
	case ModeCircular:
		return ModeCircular, nil
	default:
		return "", fmt.Errorf("unknown day-part mode %q", s)
	}
}

// Flags holds day-part membership of one venue.
type Flags struct {
	Dawn  bool `json:"open_dawn"`
	Day   bool `json:"open_day"`
	Dusk  bool `json:"open_dusk"`
	Night bool `json:"open_night"`
}

// Has reports membership in p.
func (f Flags) Has(p DayPart) bool {
	switch p {
	case Dawn:
		return f.Dawn
	case Day:
		return f.Day
	case Dusk:
		return f.Dusk
	case Night:
		return f.Night
	}
	return false
}

func (f *Flags) set(p DayPart, v bool) {
	switch p {
	case Dawn:
		f.Dawn = v
	case Day:
		f.Day = v
	case Dusk:
		f.Dusk = v
	case Night:
		f.Night = v
	}
}

// ComputeFlags evaluates all four windows for one opening/closing pair.
func ComputeFlags(opening, closing TimeOfDay, mode Mode) (Flags, error) {
	overlaps := OverlapsWindow
	if mode == ModeCircular {
		overlaps = OverlapsWindowCircular
	}

	var f Flags
	for _, w := range Windows {
		open, err := overlaps(opening, closing, w.StartHour, w.EndHour)
		if err != nil {
			return Flags{}, fmt.Errorf("computing %s flag: %w", w.Part, err)
		}
		f.set(w.Part, open)
	}
	return f, nil
}
