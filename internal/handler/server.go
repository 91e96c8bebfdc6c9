// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, itinerary.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/openapi"
)

// ItineraryServicer defines the business operations the itinerary handlers
// depend on. Defining the interface here (in the consumer package) follows the
// Go convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ItineraryServicer interface {
	Preview(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error)
	Create(ctx context.Context, req domain.TripRequest) (domain.SavedItinerary, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.SavedItinerary, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExportServicer renders a saved itinerary as a downloadable file.
type ExportServicer interface {
	Export(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (domain.ExportFile, error)
}

// Server holds the dependencies shared by every handler.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	itineraries ItineraryServicer
	exports     ExportServicer
	log         *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(itineraries ItineraryServicer, exports ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{itineraries: itineraries, exports: exports, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes mounts every endpoint on a fresh chi router. generate wraps the two
// endpoints that run the planner, e.g. with a rate limiter; it may be empty.
func Routes(s *Server, generate ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/interests", s.ListInterests)
	r.Get("/openapi.yaml", serveDocument)

	r.Route("/itineraries", func(r chi.Router) {
		r.With(generate...).Post("/preview", s.PreviewItinerary)
		r.With(generate...).Post("/", s.CreateItinerary)
		r.Get("/", s.ListItineraries)
		r.Get("/{id}", s.GetItinerary)
		r.Delete("/{id}", s.DeleteItinerary)
		r.Get("/{id}/export", s.ExportItinerary)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	return r
}

func serveDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapi.Document)
}
