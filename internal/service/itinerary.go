// Package service contains the business logic for the trip planner API.
// Services validate inputs, call the planner, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/planner"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// ItineraryService validates trip requests, synthesizes itineraries and
// manages saved ones.
type ItineraryService struct {
	repo  repo.ItineraryRepo
	opts  planner.Options
	delay time.Duration
	log   *slog.Logger

	// synthesize is planner.Synthesize; tests swap it to force failures.
	synthesize func(domain.TripRequest, planner.Options) domain.Itinerary
}

// Option customises an ItineraryService.
type Option func(*ItineraryService)

// WithPlannerOptions overrides the planner's cost table and day policy.
func WithPlannerOptions(opts planner.Options) Option {
	return func(s *ItineraryService) { s.opts = opts }
}

// WithGenerationDelay makes every generation wait d before returning,
// mimicking the latency of a remote planner. The wait honours ctx.
func WithGenerationDelay(d time.Duration) Option {
	return func(s *ItineraryService) { s.delay = d }
}

// WithLogger sets the logger used for generation failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *ItineraryService) { s.log = l }
}

// NewItineraryService constructs an ItineraryService backed by the provided repo.
func NewItineraryService(r repo.ItineraryRepo, options ...Option) *ItineraryService {
	s := &ItineraryService{
		repo:       r,
		opts:       planner.DefaultOptions(),
		log:        slog.Default(),
		synthesize: planner.Synthesize,
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// Preview validates req and returns the synthesized itinerary without saving it.
// Returns domain.ErrValidation for invalid input and domain.ErrGeneration if
// synthesis fails. A cancelled ctx aborts the simulated delay.
func (s *ItineraryService) Preview(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	req = normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Preview: %w", err)
	}
	it, err := s.generate(ctx, req)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Preview: %w", err)
	}
	return it, nil
}

// Create validates req, synthesizes the itinerary and persists both.
func (s *ItineraryService) Create(ctx context.Context, req domain.TripRequest) (domain.SavedItinerary, error) {
	req = normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	it, err := s.generate(ctx, req)
	if err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	saved, err := s.repo.Create(ctx, req, it)
	if err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	return saved, nil
}

// GetByID returns a saved itinerary.
// Returns domain.ErrNotFound if it does not exist.
func (s *ItineraryService) GetByID(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error) {
	saved, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("service.ItineraryService.GetByID: %w", err)
	}
	return saved, nil
}

// ListPaged returns one page of saved itineraries and the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.SavedItinerary, int64, error) {
	items, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ItineraryService.ListPaged: %w", err)
	}
	if items == nil {
		items = []domain.SavedItinerary{}
	}
	return items, total, nil
}

// Delete removes a saved itinerary.
// Returns domain.ErrNotFound if it does not exist.
func (s *ItineraryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

// generate runs the planner after the configured delay. Synthesis either
// yields a complete itinerary or fails as a whole with domain.ErrGeneration.
func (s *ItineraryService) generate(ctx context.Context, req domain.TripRequest) (it domain.Itinerary, err error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.Itinerary{}, ctx.Err()
		case <-timer.C:
		}
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "itinerary generation failed",
				"destination", req.Destination,
				"panic", fmt.Sprint(r),
			)
			it, err = domain.Itinerary{}, fmt.Errorf("%w: %v", domain.ErrGeneration, r)
		}
	}()

	return s.synthesize(req, s.opts), nil
}
