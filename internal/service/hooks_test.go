package service

import (
	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/planner"
)

// SetSynthesize replaces the planner call so tests can force a failure.
func SetSynthesize(s *ItineraryService, f func(domain.TripRequest, planner.Options) domain.Itinerary) {
	s.synthesize = f
}
