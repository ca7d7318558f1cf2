package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// LatLng is a map coordinate as sent by the front end.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate rejects non-finite and out-of-range coordinates.
func (l LatLng) Validate() error {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lng) || math.IsInf(l.Lat, 0) || math.IsInf(l.Lng, 0) {
		return fmt.Errorf("coordinate %v,%v is not finite", l.Lat, l.Lng)
	}
	if l.Lat < -90 || l.Lat > 90 || l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("coordinate %v,%v out of range", l.Lat, l.Lng)
	}
	return nil
}

// BoundingBox is the visible map viewport, in the corner layout Leaflet reports.
type BoundingBox struct {
	SouthWest LatLng `json:"_southWest"`
	NorthEast LatLng `json:"_northEast"`
}

func (b BoundingBox) Validate() error {
	if err := b.SouthWest.Validate(); err != nil {
		return fmt.Errorf("bounding box: %w", err)
	}
	if err := b.NorthEast.Validate(); err != nil {
		return fmt.Errorf("bounding box: %w", err)
	}
	if b.SouthWest.Lat > b.NorthEast.Lat || b.SouthWest.Lng > b.NorthEast.Lng {
		return errors.New("bounding box corners are inverted")
	}
	return nil
}

// Bound converts the viewport to an orb.Bound.
func (b BoundingBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.SouthWest.Lng, b.SouthWest.Lat},
		Max: orb.Point{b.NorthEast.Lng, b.NorthEast.Lat},
	}
}

// Contains is inclusive on every edge.
func (b BoundingBox) Contains(p orb.Point) bool {
	return b.Bound().Contains(p)
}
