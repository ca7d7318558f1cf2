package handlers

import (
	"encoding/json"
	"net/http"

	"amenities-dashboard/models"
	services "amenities-dashboard/service"
)

type SessionHandler struct {
	searchService *services.SearchService
	sessions      *services.SessionService
}

func NewSessionHandler(searchService *services.SearchService, sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{searchService: searchService, sessions: sessions}
}

// Search handles POST /v1/search. Geocoding problems come back as a 200 with a warning.
func (h *SessionHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := h.searchService.Search(r.Context(), sessionID(w, r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, outcome)
}

// UpdateViewport handles PUT /v1/session/viewport
func (h *SessionHandler) UpdateViewport(w http.ResponseWriter, r *http.Request) {
	var update models.ViewportUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.searchService.UpdateViewport(sessionID(w, r), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

// GetSession handles GET /v1/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Load(sessionID(w, r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}
