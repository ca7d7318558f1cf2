package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"amenities-dashboard/logging"
	services "amenities-dashboard/service"
)

// SessionIDHeader identifies the caller's map session.
const SessionIDHeader = "X-Session-ID"

// sessionID returns the caller's session ID, issuing a new one when absent.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(SessionIDHeader))
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(SessionIDHeader, id)
	return id
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("Error encoding response")
	}
}

// writeError maps service errors to status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrInvalidRequest) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	logging.FromContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	v, err := strconv.ParseFloat(vals.Get(name), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s is not a finite number", name)
	}
	return v, nil
}

// parseArgInt returns def when the argument is absent.
func parseArgInt(vals url.Values, name string, def int) (int, error) {
	s := vals.Get(name)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func parseArgBool(vals url.Values, name string) (bool, error) {
	s := vals.Get(name)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
