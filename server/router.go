package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"amenities-dashboard/server/middleware"
)

// AmenityRoutes serves the catalog and chart endpoints.
type AmenityRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetAmenityTypes(w http.ResponseWriter, r *http.Request)
	GetAmenitiesNearby(w http.ResponseWriter, r *http.Request)
	GetSample(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetCharts(w http.ResponseWriter, r *http.Request)
}

// SessionRoutes serves the per-user map state endpoints.
type SessionRoutes interface {
	Search(w http.ResponseWriter, r *http.Request)
	UpdateViewport(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	amenityHandler AmenityRoutes
	sessionHandler SessionRoutes
	router         *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	amenityHandler AmenityRoutes,
	sessionHandler SessionRoutes,
	router *mux.Router) *Router {
	return &Router{
		amenityHandler: amenityHandler,
		sessionHandler: sessionHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(middleware.RequestLogging, middleware.Recovery)

	r.router.HandleFunc("/ping", r.amenityHandler.Ping).Methods("GET")

	// expects ?amenity={type|All}&hour={0-23}&night_only={bool}
	r.router.HandleFunc("/v1/amenities", r.amenityHandler.GetDashboard).Methods("GET")
	r.router.HandleFunc("/v1/amenities/types", r.amenityHandler.GetAmenityTypes).Methods("GET")
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float)}
	r.router.HandleFunc("/v1/amenities/nearby", r.amenityHandler.GetAmenitiesNearby).Methods("GET")
	r.router.HandleFunc("/v1/amenities/sample", r.amenityHandler.GetSample).Methods("GET")
	r.router.HandleFunc("/v1/amenities/stats", r.amenityHandler.GetStats).Methods("GET")
	r.router.HandleFunc("/v1/charts", r.amenityHandler.GetCharts).Methods("GET")

	r.router.HandleFunc("/v1/search", r.sessionHandler.Search).Methods("POST")
	r.router.HandleFunc("/v1/session/viewport", r.sessionHandler.UpdateViewport).Methods("PUT")
	r.router.HandleFunc("/v1/session", r.sessionHandler.GetSession).Methods("GET")
}
