package models

// Map defaults used until the user pans, zooms or searches.
const (
	DefaultZoom = 13
	SearchZoom  = 16
)

// DefaultCenter is used when no amenity matches the current filters.
var DefaultCenter = LatLng{Lat: 44.43, Lng: 26.10}

// Session is the UI state carried between interactions of one user.
type Session struct {
	ID            string       `json:"id"`
	Center        LatLng       `json:"center"`
	Zoom          int          `json:"zoom"`
	Bounds        *BoundingBox `json:"bounds,omitempty"`
	LastSearch    string       `json:"last_search,omitempty"`
	SearchUpdated bool         `json:"search_updated"`
	Initialized   bool         `json:"initialized"`
}

// ViewportUpdate is the map state reported after a pan or zoom.
type ViewportUpdate struct {
	Center LatLng       `json:"center"`
	Zoom   int          `json:"zoom"`
	Bounds *BoundingBox `json:"bounds,omitempty"`
}
