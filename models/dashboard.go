package models

import "amenities-dashboard/hours"

// AllAmenities disables the amenity type filter.
const AllAmenities = "All"

// DashboardQuery holds the sidebar filters of one interaction.
type DashboardQuery struct {
	AmenityType string
	Hour        int
	NightOnly   bool
}

// Marker is one amenity pin on the map.
type Marker struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	AmenityType string  `json:"amenity"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Color       string  `json:"color"`
	OpeningHour string  `json:"opening_hour"`
	ClosingHour string  `json:"closing_hour"`
	Website     string  `json:"website,omitempty"`
}

// DashboardView is everything the front end needs to draw one frame.
type DashboardView struct {
	Session    *Session      `json:"session"`
	TimePeriod hours.DayPart `json:"time_period"`
	TileURL    string        `json:"tile_url,omitempty"`
	Markers    []Marker      `json:"markers"`
	Total      int           `json:"total"`
	Truncated  bool          `json:"truncated"`
}

// LabeledCount is one bar or pie slice.
type LabeledCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Stats aggregates the whole dataset for the charts.
type Stats struct {
	ByType          []LabeledCount                   `json:"by_type"`
	ByDayPart       []LabeledCount                   `json:"by_day_part"`
	TypesPerDayPart map[hours.DayPart][]LabeledCount `json:"types_per_day_part"`
}
