package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"amenities-dashboard/api/nominatim"
	"amenities-dashboard/logging"
	"amenities-dashboard/models"
)

const (
	NO_RESULTS_WARNING     = "No results found."
	GEOCODING_ERROR_PREFIX = "Geocoding error: "
)

// SearchService moves a session's map to a geocoded location.
type SearchService struct {
	geocoder nominatim.GeocodeAPI
	sessions *SessionService
}

func NewSearchService(geocoder nominatim.GeocodeAPI, sessions *SessionService) *SearchService {
	return &SearchService{geocoder: geocoder, sessions: sessions}
}

// Search geocodes query and recenters the session on the first match.
// A blank query, or a repeat of the last successful one without force, does nothing.
// Geocoding failures are reported in the outcome; only storage failures return an error.
func (ss *SearchService) Search(ctx context.Context, sessionID string, req models.SearchRequest) (*models.SearchOutcome, error) {
	session, err := ss.sessions.Load(sessionID)
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(req.Query)
	if query == "" || (query == session.LastSearch && !req.Force) {
		return &models.SearchOutcome{Session: session, Skipped: true}, nil
	}

	logger := logging.FromContext(ctx).With().Str("session_id", session.ID).Str("query", query).Logger()

	result, err := ss.geocoder.Search(ctx, query)
	if errors.Is(err, nominatim.ErrNoResults) {
		logger.Info().Msg("[SearchService] no geocoding results")
		return &models.SearchOutcome{Session: session, Warning: NO_RESULTS_WARNING}, nil
	}
	if err != nil {
		logger.Warn().Err(err).Msg("[SearchService] geocoding failed")
		return &models.SearchOutcome{Session: session, Warning: GEOCODING_ERROR_PREFIX + err.Error()}, nil
	}

	session.Center = result.ToLatLng()
	session.Zoom = models.SearchZoom
	session.SearchUpdated = true
	session.Bounds = nil
	session.LastSearch = query
	session.Initialized = true
	if err := ss.sessions.Save(session); err != nil {
		return nil, err
	}

	logger.Info().Float64("lat", result.Lat).Float64("lon", result.Lon).Msg("[SearchService] session recentered")
	return &models.SearchOutcome{
		Session: session,
		Result:  result,
		Message: fmt.Sprintf("Found: %s", result.DisplayName),
	}, nil
}

// UpdateViewport stores the map state reported after a pan or zoom and
// re-enables the viewport filter.
func (ss *SearchService) UpdateViewport(sessionID string, update models.ViewportUpdate) (*models.Session, error) {
	if update.Zoom < 0 {
		return nil, fmt.Errorf("%w: negative zoom %d", ErrInvalidRequest, update.Zoom)
	}
	if err := update.Center.Validate(); err != nil {
		return nil, fmt.Errorf("%w: center: %w", ErrInvalidRequest, err)
	}
	if update.Bounds != nil {
		if err := update.Bounds.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
	}

	session, err := ss.sessions.Load(sessionID)
	if err != nil {
		return nil, err
	}
	session.Center = update.Center
	session.Zoom = update.Zoom
	if update.Bounds != nil {
		session.Bounds = update.Bounds
	}
	session.SearchUpdated = false
	session.Initialized = true
	if err := ss.sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}
