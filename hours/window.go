package hours

import "fmt"

// IsOpenAtHour reports whether [opening, closing) contains hour.
// The interval wraps past midnight when opening > closing, and
// opening == closing means the venue never closes.
func IsOpenAtHour(opening, closing, hour TimeOfDay) (bool, error) {
	if err := validate(opening, closing, hour); err != nil {
		return false, err
	}
	return Interval{Start: opening, End: closing}.Contains(hour), nil
}

// OverlapsWindow reports whether a venue is open at some instant of the
// window [windowStart, windowEnd), comparing fractional hours.
//
// Only the window's wrap is considered, never the venue's own: a venue
// open 22:00-02:00 does not overlap the 21-5 night window under this rule.
// Day-part flags are computed with it unless the circular mode is selected,
// see OverlapsWindowCircular.
func OverlapsWindow(opening, closing TimeOfDay, windowStart, windowEnd int) (bool, error) {
	if err := validate(opening, closing); err != nil {
		return false, err
	}
	if err := validateWindow(windowStart, windowEnd); err != nil {
		return false, err
	}
	if opening == closing {
		return true, nil
	}

	openH := opening.Fractional()
	closeH := closing.Fractional()
	start, end := float64(windowStart), float64(windowEnd)

	if windowStart < windowEnd {
		return openH < end && closeH > start, nil
	}
	return openH < end || closeH > start, nil
}

// OverlapsWindowCircular is the symmetric intersection of the venue arc and
// the window arc, with either side allowed to wrap.
func OverlapsWindowCircular(opening, closing TimeOfDay, windowStart, windowEnd int) (bool, error) {
	if err := validate(opening, closing); err != nil {
		return false, err
	}
	if err := validateWindow(windowStart, windowEnd); err != nil {
		return false, err
	}
	venue := Interval{Start: opening, End: closing}
	return venue.Overlaps(windowInterval(windowStart, windowEnd)), nil
}

func validateWindow(start, end int) error {
	if start < 0 || start > 24 || end < 0 || end > 24 {
		return fmt.Errorf("%w: window %d-%d", ErrInvalidTime, start, end)
	}
	return nil
}
