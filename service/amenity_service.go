package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"amenities-dashboard/config"
	"amenities-dashboard/dao/redis"
	"amenities-dashboard/hours"
	"amenities-dashboard/models"
	"amenities-dashboard/models/amenity"
)

const DEFAULT_MARKER_LIMIT = 300
const DEFAULT_MARKER_COLOR = "#555555"

var markerColors = map[string]string{
	"cafe":       "#6f4e37",
	"restaurant": "#d35400",
	"pub":        "#2980b9",
	"park":       "#27ae60",
}

// MarkerColor returns the pin color for an amenity type, case-insensitively.
func MarkerColor(a *amenity.Amenity) string {
	if c, ok := markerColors[a.TypeKey()]; ok {
		return c
	}
	return DEFAULT_MARKER_COLOR
}

type AmenityService struct {
	amenityDao  *redis.RedisAmenityDAO
	sessions    *SessionService
	markerLimit int
	tileStyles  map[string]string
}

// NewAmenityService constructs a new AmenityService with Redis dependency injection.
func NewAmenityService(
	amenityDao *redis.RedisAmenityDAO,
	sessions *SessionService,
	mapConfig config.MapConfig) *AmenityService {

	limit := mapConfig.MarkerLimit
	if limit <= 0 {
		limit = DEFAULT_MARKER_LIMIT
	}
	return &AmenityService{
		amenityDao:  amenityDao,
		sessions:    sessions,
		markerLimit: limit,
		tileStyles:  mapConfig.TileStyles,
	}
}

// AmenityTypes lists the dropdown options: All, then the distinct types sorted.
func (as *AmenityService) AmenityTypes() ([]string, error) {
	all, err := as.amenityDao.ListAmenities()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var types []string
	for _, a := range all {
		if _, ok := seen[a.AmenityType]; ok {
			continue
		}
		seen[a.AmenityType] = struct{}{}
		types = append(types, a.AmenityType)
	}
	sort.Strings(types)
	return append([]string{models.AllAmenities}, types...), nil
}

// Filter applies the sidebar filters: amenity type, night only and open at q.Hour:00.
func (as *AmenityService) Filter(all []amenity.Amenity, q models.DashboardQuery) ([]amenity.Amenity, error) {
	at, err := hours.NewTimeOfDay(q.Hour, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	out := make([]amenity.Amenity, 0, len(all))
	for i := range all {
		a := &all[i]
		if q.AmenityType != "" && q.AmenityType != models.AllAmenities && a.AmenityType != q.AmenityType {
			continue
		}
		if q.NightOnly && !a.DayParts.Night {
			continue
		}
		open, err := a.IsOpenAt(at)
		if err != nil {
			return nil, err
		}
		if open {
			out = append(out, *a)
		}
	}
	return out, nil
}

// FilterViewport keeps amenities inside the session bounds. It is skipped right
// after a search, until the next map interaction reports fresh bounds.
func FilterViewport(list []amenity.Amenity, s *models.Session) []amenity.Amenity {
	if s.Bounds == nil || s.SearchUpdated {
		return list
	}
	out := make([]amenity.Amenity, 0, len(list))
	for i := range list {
		if s.Bounds.Contains(list[i].Point()) {
			out = append(out, list[i])
		}
	}
	return out
}

// MeanCenter is the average position of list, or the city default when empty.
func MeanCenter(list []amenity.Amenity) models.LatLng {
	if len(list) == 0 {
		return models.DefaultCenter
	}
	var lat, lon float64
	for _, a := range list {
		lat += a.Latitude
		lon += a.Longitude
	}
	n := float64(len(list))
	return models.LatLng{Lat: lat / n, Lng: lon / n}
}

// Dashboard computes one frame of the map for a session.
func (as *AmenityService) Dashboard(sessionID string, q models.DashboardQuery) (*models.DashboardView, error) {
	part, err := hours.DayPartForHour(q.Hour)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	all, err := as.amenityDao.ListAmenities()
	if err != nil {
		return nil, err
	}
	filtered, err := as.Filter(all, q)
	if err != nil {
		return nil, err
	}

	session, err := as.sessions.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Initialized {
		session.Center = MeanCenter(filtered)
		session.Zoom = models.DefaultZoom
		session.Initialized = true
		if err := as.sessions.Save(session); err != nil {
			return nil, err
		}
		log.Debug().Str("session_id", session.ID).Msg("[AmenityService] initialized session")
	}

	visible := FilterViewport(filtered, session)
	view := &models.DashboardView{
		Session:    session,
		TimePeriod: part,
		TileURL:    as.tileStyles[string(part)],
		Total:      len(visible),
	}
	if len(visible) > as.markerLimit {
		visible = visible[:as.markerLimit]
		view.Truncated = true
	}

	view.Markers = make([]models.Marker, len(visible))
	for i := range visible {
		a := &visible[i]
		view.Markers[i] = models.Marker{
			ID:          a.ID,
			Name:        a.Name,
			AmenityType: a.AmenityType,
			Lat:         a.Latitude,
			Lon:         a.Longitude,
			Color:       MarkerColor(a),
			OpeningHour: a.OpeningTime.String(),
			ClosingHour: a.ClosingTime.String(),
			Website:     a.Website,
		}
	}
	return view, nil
}

// Nearby returns amenities within radius km of the point, nearest first.
func (as *AmenityService) Nearby(lat, lon, radius float64) ([]amenity.Amenity, error) {
	if err := (models.LatLng{Lat: lat, Lng: lon}).Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("%w: radius=%f", ErrInvalidRequest, radius)
	}
	return as.amenityDao.GetNearbyAmenities(lat, lon, radius)
}

// Sample returns up to perType amenities of each type, ordered by type then name.
func (as *AmenityService) Sample(perType int) ([]amenity.Amenity, error) {
	if perType <= 0 {
		return nil, fmt.Errorf("%w: per type must be positive", ErrInvalidRequest)
	}
	all, err := as.amenityDao.ListAmenities()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].AmenityType < all[j].AmenityType })

	taken := make(map[string]int)
	var out []amenity.Amenity
	for _, a := range all {
		if taken[a.AmenityType] >= perType {
			continue
		}
		taken[a.AmenityType]++
		out = append(out, a)
	}
	return out, nil
}

// Stats aggregates the whole stored dataset.
func (as *AmenityService) Stats() (*models.Stats, error) {
	all, err := as.amenityDao.ListAmenities()
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(all)
	return &stats, nil
}

// ComputeStats counts amenities by type, by day-part, and by type within each day-part.
func ComputeStats(list []amenity.Amenity) models.Stats {
	byType := make(map[string]int)
	perPart := make(map[hours.DayPart]map[string]int, len(hours.Windows))
	for _, w := range hours.Windows {
		perPart[w.Part] = make(map[string]int)
	}

	for _, a := range list {
		byType[a.AmenityType]++
		for _, w := range hours.Windows {
			if a.DayParts.Has(w.Part) {
				perPart[w.Part][a.AmenityType]++
			}
		}
	}

	stats := models.Stats{
		ByType:          sortedCounts(byType),
		TypesPerDayPart: make(map[hours.DayPart][]models.LabeledCount, len(hours.Windows)),
	}
	for _, w := range hours.Windows {
		counts := perPart[w.Part]
		total := 0
		for _, n := range counts {
			total += n
		}
		stats.ByDayPart = append(stats.ByDayPart, models.LabeledCount{Label: w.Label, Count: total})
		stats.TypesPerDayPart[w.Part] = sortedCounts(counts)
	}
	return stats
}

// sortedCounts orders by count descending, then label.
func sortedCounts(m map[string]int) []models.LabeledCount {
	out := make([]models.LabeledCount, 0, len(m))
	for label, n := range m {
		out = append(out, models.LabeledCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
