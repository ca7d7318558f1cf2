package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amenities-dashboard/api/nominatim"
	"amenities-dashboard/config"
	"amenities-dashboard/dao/redis"
	"amenities-dashboard/db"
	"amenities-dashboard/hours"
	"amenities-dashboard/models"
	"amenities-dashboard/models/amenity"
	services "amenities-dashboard/service"
	"amenities-dashboard/util"
)

type stubGeocoder struct {
	result *models.GeocodeResult
	err    error
}

func (g *stubGeocoder) Search(ctx context.Context, query string) (*models.GeocodeResult, error) {
	return g.result, g.err
}

func newHandlers(t *testing.T, geocoder nominatim.GeocodeAPI) (*AmenityHandler, *SessionHandler) {
	t.Helper()
	client := db.NewMockRedisClient(context.Background())
	amenityDao := redis.NewRedisAmenityDAO(client)
	sessions := services.NewSessionService(redis.NewRedisSessionDAO(client, 0))

	for _, a := range []amenity.Amenity{
		{Name: "Origo", AmenityType: "cafe", Latitude: 44.4327, Longitude: 26.1003, OpeningTime: hours.MustTimeOfDay(8, 0), ClosingTime: hours.MustTimeOfDay(18, 0)},
		{Name: "Fabrica", AmenityType: "pub", Latitude: 44.4310, Longitude: 26.1010, OpeningTime: hours.MustTimeOfDay(18, 0), ClosingTime: hours.MustTimeOfDay(23, 59)},
	} {
		a.ID = amenity.NewID(a.Name, a.Latitude, a.Longitude)
		require.NoError(t, a.Annotate(hours.ModeLegacy))
		require.NoError(t, amenityDao.UpsertAmenity(a))
	}

	amenityService := services.NewAmenityService(amenityDao, sessions, config.MapConfig{
		MarkerLimit: 300,
		TileStyles:  map[string]string{"day": "day-tiles"},
	})
	return NewAmenityHandler(amenityService, util.NewChartRenderer()),
		NewSessionHandler(services.NewSearchService(geocoder, sessions), sessions)
}

func do(handler http.HandlerFunc, method, target, body, session string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if session != "" {
		req.Header.Set(SessionIDHeader, session)
	}
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestAmenityHandler_GetDashboard(t *testing.T) {
	amenities, _ := newHandlers(t, &stubGeocoder{})

	rr := do(amenities.GetDashboard, "GET", "/v1/amenities?amenity=cafe&hour=12", "", "s1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "s1", rr.Header().Get(SessionIDHeader))

	var view models.DashboardView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, hours.Day, view.TimePeriod)
	assert.Equal(t, "day-tiles", view.TileURL)
	require.Len(t, view.Markers, 1)
	assert.Equal(t, "Origo", view.Markers[0].Name)
	assert.Equal(t, "#6f4e37", view.Markers[0].Color)
}

func TestAmenityHandler_GetDashboard_IssuesSession(t *testing.T) {
	amenities, _ := newHandlers(t, &stubGeocoder{})

	rr := do(amenities.GetDashboard, "GET", "/v1/amenities", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(SessionIDHeader))
}

func TestAmenityHandler_GetDashboard_BadArgs(t *testing.T) {
	amenities, _ := newHandlers(t, &stubGeocoder{})

	for _, target := range []string{
		"/v1/amenities?hour=noon",
		"/v1/amenities?hour=24",
		"/v1/amenities?night_only=maybe",
	} {
		rr := do(amenities.GetDashboard, "GET", target, "", "s1")
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
}

func TestAmenityHandler_GetAmenityTypes(t *testing.T) {
	amenities, _ := newHandlers(t, &stubGeocoder{})

	rr := do(amenities.GetAmenityTypes, "GET", "/v1/amenities/types", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["All","cafe","pub"]`, rr.Body.String())
}

func TestAmenityHandler_GetAmenitiesNearby(t *testing.T) {
	amenities, _ := newHandlers(t, &stubGeocoder{})

	rr := do(amenities.GetAmenitiesNearby, "GET", "/v1/amenities/nearby?lat=44.4327&lon=26.1003&radius=0.1", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var got []amenity.Amenity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Origo", got[0].Name)

	rr = do(amenities.GetAmenitiesNearby, "GET", "/v1/amenities/nearby?lat=x&lon=26.1&radius=1", "", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(amenities.GetAmenitiesNearby, "GET", "/v1/amenities/nearby?lat=44&lon=26.1&radius=-1", "", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAmenityHandler_GetAmenitiesNearby_NonFiniteArgs(t *testing.T) {
	amenities, _ := newHandlers(t, &stubGeocoder{})

	for _, target := range []string{
		"/v1/amenities/nearby?lat=NaN&lon=26.1&radius=1",
		"/v1/amenities/nearby?lat=44.43&lon=-Inf&radius=1",
		"/v1/amenities/nearby?lat=44.43&lon=26.1&radius=Inf",
	} {
		rr := do(amenities.GetAmenitiesNearby, "GET", target, "", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
}

func TestAmenityHandler_GetStatsAndCharts(t *testing.T) {
	amenities, _ := newHandlers(t, &stubGeocoder{})

	rr := do(amenities.GetStats, "GET", "/v1/amenities/stats", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var stats models.Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Len(t, stats.ByType, 2)

	rr = do(amenities.GetCharts, "GET", "/v1/charts", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), util.TypeChartTitle)
}

func TestAmenityHandler_GetSample(t *testing.T) {
	amenities, _ := newHandlers(t, &stubGeocoder{})

	rr := do(amenities.GetSample, "GET", "/v1/amenities/sample?per_type=1", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var got []amenity.Amenity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)

	rr = do(amenities.GetSample, "GET", "/v1/amenities/sample?per_type=0", "", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionHandler_SearchAndViewport(t *testing.T) {
	geocoder := &stubGeocoder{result: &models.GeocodeResult{Lat: 44.4313, Lon: 26.1005, DisplayName: "Lipscani"}}
	_, sessions := newHandlers(t, geocoder)

	rr := do(sessions.Search, "POST", "/v1/search", `{"query":"Lipscani"}`, "s1")
	require.Equal(t, http.StatusOK, rr.Code)
	var outcome models.SearchOutcome
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &outcome))
	assert.Equal(t, "Found: Lipscani", outcome.Message)
	assert.True(t, outcome.Session.SearchUpdated)
	assert.Equal(t, models.SearchZoom, outcome.Session.Zoom)

	rr = do(sessions.UpdateViewport, "PUT", "/v1/session/viewport",
		`{"center":{"lat":44.43,"lng":26.1},"zoom":14,"bounds":{"_southWest":{"lat":44.42,"lng":26.09},"_northEast":{"lat":44.44,"lng":26.11}}}`, "s1")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(sessions.GetSession, "GET", "/v1/session", "", "s1")
	require.Equal(t, http.StatusOK, rr.Code)
	var s models.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &s))
	assert.False(t, s.SearchUpdated)
	assert.Equal(t, 14, s.Zoom)
	require.NotNil(t, s.Bounds)
	assert.Equal(t, 44.44, s.Bounds.NorthEast.Lat)
	assert.Equal(t, "Lipscani", s.LastSearch)
}

func TestSessionHandler_SearchWarningIsNotAnError(t *testing.T) {
	_, sessions := newHandlers(t, &stubGeocoder{err: nominatim.ErrNoResults})

	rr := do(sessions.Search, "POST", "/v1/search", `{"query":"Atlantis"}`, "s1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No results found.")
}

func TestSessionHandler_BadBodies(t *testing.T) {
	_, sessions := newHandlers(t, &stubGeocoder{})

	rr := do(sessions.Search, "POST", "/v1/search", `{`, "s1")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(sessions.UpdateViewport, "PUT", "/v1/session/viewport", `not json`, "s1")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(sessions.UpdateViewport, "PUT", "/v1/session/viewport", `{"zoom":-2}`, "s1")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAmenityHandler_Ping(t *testing.T) {
	amenities, _ := newHandlers(t, &stubGeocoder{})

	rr := do(amenities.Ping, "GET", "/ping", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"pong"}`, rr.Body.String())
}
