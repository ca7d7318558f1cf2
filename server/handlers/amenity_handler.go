package handlers

import (
	"bytes"
	"net/http"

	"amenities-dashboard/logging"
	"amenities-dashboard/models"
	services "amenities-dashboard/service"
	"amenities-dashboard/util"
)

const (
	AMENITY_QUERY_ARG    = "amenity"
	HOUR_QUERY_ARG       = "hour"
	NIGHT_ONLY_QUERY_ARG = "night_only"
	LAT_QUERY_ARG        = "lat"
	LON_QUERY_ARG        = "lon"
	RADIUS_QUERY_ARG     = "radius"
	PER_TYPE_QUERY_ARG   = "per_type"

	DEFAULT_HOUR     = 12
	DEFAULT_PER_TYPE = 2
)

type AmenityHandler struct {
	amenityService *services.AmenityService
	chartRenderer  *util.ChartRenderer
}

func NewAmenityHandler(amenityService *services.AmenityService, chartRenderer *util.ChartRenderer) *AmenityHandler {
	return &AmenityHandler{amenityService: amenityService, chartRenderer: chartRenderer}
}

// GetDashboard handles GET /v1/amenities?amenity=&hour=&night_only=
func (h *AmenityHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	hour, err := parseArgInt(vals, HOUR_QUERY_ARG, DEFAULT_HOUR)
	if err != nil {
		http.Error(w, "Invalid argument "+HOUR_QUERY_ARG, http.StatusBadRequest)
		return
	}
	nightOnly, err := parseArgBool(vals, NIGHT_ONLY_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+NIGHT_ONLY_QUERY_ARG, http.StatusBadRequest)
		return
	}
	amenityType := vals.Get(AMENITY_QUERY_ARG)
	if amenityType == "" {
		amenityType = models.AllAmenities
	}

	view, err := h.amenityService.Dashboard(sessionID(w, r), models.DashboardQuery{
		AmenityType: amenityType,
		Hour:        hour,
		NightOnly:   nightOnly,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

// GetAmenityTypes handles GET /v1/amenities/types
func (h *AmenityHandler) GetAmenityTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.amenityService.AmenityTypes()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, types)
}

// GetAmenitiesNearby handles GET /v1/amenities/nearby?lat=&lon=&radius=
func (h *AmenityHandler) GetAmenitiesNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err := parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err := parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}

	amenities, err := h.amenityService.Nearby(lat, lon, radius)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, amenities)
}

// GetSample handles GET /v1/amenities/sample?per_type=
func (h *AmenityHandler) GetSample(w http.ResponseWriter, r *http.Request) {
	perType, err := parseArgInt(r.URL.Query(), PER_TYPE_QUERY_ARG, DEFAULT_PER_TYPE)
	if err != nil {
		http.Error(w, "Invalid argument "+PER_TYPE_QUERY_ARG, http.StatusBadRequest)
		return
	}
	sample, err := h.amenityService.Sample(perType)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sample)
}

// GetStats handles GET /v1/amenities/stats
func (h *AmenityHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.amenityService.Stats()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}

// GetCharts handles GET /v1/charts
func (h *AmenityHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	stats, err := h.amenityService.Stats()
	if err != nil {
		writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := h.chartRenderer.Render(&buf, *stats); err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("Error writing charts")
	}
}

// Ping handles GET /ping
func (h *AmenityHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "pong"})
}
