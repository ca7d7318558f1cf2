package models

// GeocodeResult is the first match of a free text location search.
type GeocodeResult struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
}

// SearchRequest is the body of POST /v1/search.
type SearchRequest struct {
	Query string `json:"query"`
	Force bool   `json:"force"`
}

// SearchOutcome tells the front end what happened to a search.
// Geocoding problems come back as Warning, never as a failed request.
type SearchOutcome struct {
	Session *Session       `json:"session"`
	Result  *GeocodeResult `json:"result,omitempty"`
	Message string         `json:"message,omitempty"`
	Warning string         `json:"warning,omitempty"`
	Skipped bool           `json:"skipped,omitempty"`
}

func (r GeocodeResult) ToLatLng() LatLng {
	return LatLng{Lat: r.Lat, Lng: r.Lon}
}
