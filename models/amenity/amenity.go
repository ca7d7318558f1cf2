package amenity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"amenities-dashboard/hours"
)

// Amenity is one row of the curated dataset, annotated with its day-part flags.
type Amenity struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	AmenityType string          `json:"amenity"`
	Latitude    float64         `json:"lat"`
	Longitude   float64         `json:"lon"`
	OpeningTime hours.TimeOfDay `json:"opening_hour"`
	ClosingTime hours.TimeOfDay `json:"closing_hour"`
	Website     string          `json:"website,omitempty"`

	DayParts hours.Flags `json:"day_parts"`
}

// NewID derives a stable identifier from name and coordinates so reloads keep IDs.
func NewID(name string, lat, lon float64) string {
	key := fmt.Sprintf("%s|%.6f|%.6f", strings.ToLower(strings.TrimSpace(name)), lat, lon)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

// Annotate computes the day-part flags. Called once when the record is loaded.
func (a *Amenity) Annotate(mode hours.Mode) error {
	flags, err := hours.ComputeFlags(a.OpeningTime, a.ClosingTime, mode)
	if err != nil {
		return fmt.Errorf("annotating %q: %w", a.Name, err)
	}
	a.DayParts = flags
	return nil
}

// IsOpenAt reports whether the amenity is open at t.
func (a *Amenity) IsOpenAt(t hours.TimeOfDay) (bool, error) {
	return hours.IsOpenAtHour(a.OpeningTime, a.ClosingTime, t)
}

// Point returns the location as an orb point (lon, lat).
func (a *Amenity) Point() orb.Point {
	return orb.Point{a.Longitude, a.Latitude}
}

// TypeKey is the case-insensitive key used for styling lookups.
func (a *Amenity) TypeKey() string {
	return strings.ToLower(strings.TrimSpace(a.AmenityType))
}

func (a *Amenity) ToString() string {
	return fmt.Sprintf("Amenity(name=%s, type=%s, hours=%s-%s, lat=%f, lon=%f)",
		a.Name, a.AmenityType, a.OpeningTime, a.ClosingTime, a.Latitude, a.Longitude)
}
