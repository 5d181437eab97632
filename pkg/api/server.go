package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ssargent/hoteldb/pkg/codec"
	"github.com/ssargent/hoteldb/pkg/hotel"
)

// NewRouter builds the chi router with all routes configured.
func NewRouter(server *Server) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		auth := apiKeyMiddleware(server.config.APIKey)
		if server.metrics != nil {
			r.Use(server.metrics.InstrumentAuthMiddleware(auth))
		} else {
			r.Use(auth)
		}

		// Health check
		r.Get("/health", server.route("GET", "/api/v1/health", server.handleHealth))

		// Rooms
		r.Get("/rooms", server.route("GET", "/api/v1/rooms", server.handleListRooms))
		r.Post("/rooms", server.route("POST", "/api/v1/rooms", server.handleCreateRoom))
		r.Get("/rooms/{id}", server.route("GET", "/api/v1/rooms/{id}", server.handleGetRoom))
		r.Patch("/rooms/{id}", server.route("PATCH", "/api/v1/rooms/{id}", server.handleUpdateRoom))
		r.Delete("/rooms/{id}", server.route("DELETE", "/api/v1/rooms/{id}", server.handleDeleteRoom))
		r.Get("/rooms/{id}/keycards", server.route("GET", "/api/v1/rooms/{id}/keycards", server.handleRoomKeycards))

		// Guests
		r.Get("/guests", server.route("GET", "/api/v1/guests", server.handleListGuests))
		r.Post("/guests", server.route("POST", "/api/v1/guests", server.handleCreateGuest))
		r.Get("/guests/{id}", server.route("GET", "/api/v1/guests/{id}", server.handleGetGuest))
		r.Patch("/guests/{id}", server.route("PATCH", "/api/v1/guests/{id}", server.handleUpdateGuest))
		r.Delete("/guests/{id}", server.route("DELETE", "/api/v1/guests/{id}", server.handleDeleteGuest))

		// Stays
		r.Get("/stays", server.route("GET", "/api/v1/stays", server.handleListStays))
		r.Get("/stays/{id}", server.route("GET", "/api/v1/stays/{id}", server.handleGetStay))
		r.Post("/checkin", server.route("POST", "/api/v1/checkin", server.handleCheckin))
		r.Post("/stays/{id}/checkout", server.route("POST", "/api/v1/stays/{id}/checkout", server.handleCheckout))
		r.Delete("/stays/{id}", server.route("DELETE", "/api/v1/stays/{id}", server.handleDeleteStay))

		// Keycards
		r.Get("/keycards", server.route("GET", "/api/v1/keycards", server.handleListKeycards))
		r.Delete("/keycards/{id}", server.route("DELETE", "/api/v1/keycards/{id}", server.handleDeleteKeycard))

		// Report
		r.Get("/report", server.route("GET", "/api/v1/report", server.handleGetReport))
		r.Post("/report", server.route("POST", "/api/v1/report", server.handleSaveReport))
	})

	return r
}

// route wraps a handler with HTTP metrics when metrics are enabled.
func (s *Server) route(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	if s.metrics == nil {
		return handler
	}
	return s.metrics.InstrumentHandler(method, endpoint, handler)
}

// StartServer starts the HTTP server with all routes configured.
func StartServer(svc *hotel.Service, config ServerConfig) error {
	// Initialize metrics
	metrics := NewMetrics()

	server := NewServer(svc, config, metrics)
	r := NewRouter(server)

	// Start background metrics updater
	go server.startMetricsUpdater()

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting hoteldb REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))

	return nil
}

// startMetricsUpdater periodically refreshes the occupancy gauges.
func (s *Server) startMetricsUpdater() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.updateOccupancyMetrics()
	}
}

func (s *Server) updateOccupancyMetrics() {
	if s.metrics == nil {
		return
	}
	rooms, err := s.svc.Rooms(false)
	if err != nil {
		return
	}
	stays, err := s.svc.Stays(false)
	if err != nil {
		return
	}
	var occupied, vacant, open int
	for _, room := range rooms {
		switch room.Status {
		case codec.RoomOccupied:
			occupied++
		case codec.RoomVacant:
			vacant++
		}
	}
	for _, st := range stays {
		if st.Status == codec.StayOpen {
			open++
		}
	}
	s.metrics.UpdateOccupancy(occupied, vacant, open)
}
