package util

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"amenities-dashboard/hours"
	"amenities-dashboard/models/amenity"
)

// ErrMissingColumn is returned when the dataset header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{"amenity", "opening_hour", "closing_hour", "lat", "lon", "name"}

// ReadOptions controls how raw rows become annotated amenities.
type ReadOptions struct {
	// NormalizeMidnight rewrites a 00:00 closing time to 23:59.
	NormalizeMidnight bool
	Mode              hours.Mode
}

// RowWarning describes a row that was skipped while loading.
type RowWarning struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

func (w RowWarning) String() string {
	return fmt.Sprintf("row %d: %s", w.Row, w.Reason)
}

// rawAmenity is one dataset row before validation.
type rawAmenity struct {
	Name        string `json:"name"`
	AmenityType string `json:"amenity"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	OpeningHour string `json:"opening_hour"`
	ClosingHour string `json:"closing_hour"`
	Website     string `json:"website"`
}

var midnight = hours.MustTimeOfDay(0, 0)
var lastMinute = hours.MustTimeOfDay(23, 59)

func (r rawAmenity) toAmenity(opts ReadOptions) (amenity.Amenity, error) {
	var a amenity.Amenity

	name := strings.TrimSpace(r.Name)
	if name == "" {
		return a, errors.New("empty name")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(r.Lat), 64)
	if err != nil || lat < -90 || lat > 90 {
		return a, fmt.Errorf("invalid lat %q", r.Lat)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(r.Lon), 64)
	if err != nil || lon < -180 || lon > 180 {
		return a, fmt.Errorf("invalid lon %q", r.Lon)
	}
	opening, err := hours.ParseTimeOfDay(r.OpeningHour)
	if err != nil {
		return a, fmt.Errorf("opening_hour: %w", err)
	}
	closing, err := hours.ParseTimeOfDay(r.ClosingHour)
	if err != nil {
		return a, fmt.Errorf("closing_hour: %w", err)
	}
	if opts.NormalizeMidnight && closing == midnight {
		closing = lastMinute
	}

	a = amenity.Amenity{
		ID:          amenity.NewID(name, lat, lon),
		Name:        name,
		AmenityType: strings.TrimSpace(r.AmenityType),
		Latitude:    lat,
		Longitude:   lon,
		OpeningTime: opening,
		ClosingTime: closing,
		Website:     strings.TrimSpace(r.Website),
	}
	if err := a.Annotate(opts.Mode); err != nil {
		return a, err
	}
	return a, nil
}

func convertRows(rows []rawAmenity, firstRow int, opts ReadOptions) ([]amenity.Amenity, []RowWarning) {
	out := make([]amenity.Amenity, 0, len(rows))
	var warnings []RowWarning
	for i, r := range rows {
		a, err := r.toAmenity(opts)
		if err != nil {
			warnings = append(warnings, RowWarning{Row: firstRow + i, Reason: err.Error()})
			continue
		}
		out = append(out, a)
	}
	return out, warnings
}

// ParseAmenitiesCSV reads a headered CSV stream. Header names are trimmed and
// matched case-insensitively. Rows that fail validation are returned as warnings.
func ParseAmenitiesCSV(r io.Reader, opts ReadOptions) ([]amenity.Amenity, []RowWarning, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := columns[c]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []rawAmenity
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, rawAmenity{
			Name:        field(record, "name"),
			AmenityType: field(record, "amenity"),
			Lat:         field(record, "lat"),
			Lon:         field(record, "lon"),
			OpeningHour: field(record, "opening_hour"),
			ClosingHour: field(record, "closing_hour"),
			Website:     field(record, "website"),
		})
	}

	// Row numbers count the header as row 1.
	amenities, warnings := convertRows(rows, 2, opts)
	return amenities, warnings, nil
}

// ReadAmenitiesFromCSV loads the dataset from a CSV file on disk.
func ReadAmenitiesFromCSV(filePath string, opts ReadOptions) ([]amenity.Amenity, []RowWarning, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %q: %w", filePath, err)
	}
	defer f.Close()
	return ParseAmenitiesCSV(f, opts)
}

// ReadAmenitiesFromJSON loads the dataset from a JSON array of rows on disk.
func ReadAmenitiesFromJSON(filePath string, opts ReadOptions) ([]amenity.Amenity, []RowWarning, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var rows []rawAmenity
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal amenities: %w", err)
	}
	amenities, warnings := convertRows(rows, 1, opts)
	return amenities, warnings, nil
}

// ReadAmenities picks the reader from the file extension.
func ReadAmenities(filePath string, opts ReadOptions) ([]amenity.Amenity, []RowWarning, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return ReadAmenitiesFromJSON(filePath, opts)
	default:
		return ReadAmenitiesFromCSV(filePath, opts)
	}
}
