package hours

// Interval is a half-open arc [Start, End) on the 24 hour circle.
// Start > End wraps past midnight; Start == End covers the whole day.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

type segment struct{ from, to int }

// FullDay reports the degenerate open-all-day case.
func (i Interval) FullDay() bool { return i.Start == i.End }

// Wraps reports whether the interval crosses midnight.
func (i Interval) Wraps() bool { return i.Start > i.End }

// segments unrolls the arc into at most two non-wrapping minute ranges.
func (i Interval) segments() []segment {
	start, end := int(i.Start), int(i.End)
	switch {
	case i.FullDay():
		return []segment{{0, MinutesPerDay}}
	case i.Wraps():
		return []segment{{start, MinutesPerDay}, {0, end}}
	default:
		return []segment{{start, end}}
	}
}

// Contains reports whether the point t falls inside the interval.
func (i Interval) Contains(t TimeOfDay) bool {
	m := int(t)
	for _, s := range i.segments() {
		if s.from <= m && m < s.to {
			return true
		}
	}
	return false
}

// Overlaps reports whether the two arcs share at least one minute.
func (i Interval) Overlaps(o Interval) bool {
	for _, a := range i.segments() {
		for _, b := range o.segments() {
			if a.from < b.to && b.from < a.to {
				return true
			}
		}
	}
	return false
}

// windowInterval converts whole-hour window bounds to an Interval. End 24 maps to midnight.
func windowInterval(startHour, endHour int) Interval {
	return Interval{
		Start: TimeOfDay((startHour * 60) % MinutesPerDay),
		End:   TimeOfDay((endHour * 60) % MinutesPerDay),
	}
}
