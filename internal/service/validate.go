package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Bounds applied to every trip request before it reaches the planner.
const (
	MinBudget         = 1000
	MaxBudget         = 200000
	MinDestinationLen = 2
	MinPurposeLen     = 2
	MaxTripDays       = 60
	maxFreeTextRunes  = 500
)

// normalizeRequest trims surrounding whitespace from every text field.
// The caller's value is not modified.
func normalizeRequest(req domain.TripRequest) domain.TripRequest {
	req.Destination = strings.TrimSpace(req.Destination)
	req.Purpose = strings.TrimSpace(req.Purpose)
	req.Accommodation = strings.TrimSpace(req.Accommodation)
	req.Transportation = strings.TrimSpace(req.Transportation)
	req.DietaryRestrictions = strings.TrimSpace(req.DietaryRestrictions)
	req.SpecialRequests = strings.TrimSpace(req.SpecialRequests)
	return req
}

// validateRequest enforces the trip form's rules.
// Returns an error wrapping domain.ErrValidation describing the first violation.
func validateRequest(req domain.TripRequest) error {
	if utf8.RuneCountInString(req.Destination) < MinDestinationLen {
		return fmt.Errorf("%w: destination must be at least %d characters", domain.ErrValidation, MinDestinationLen)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if req.EndDate.Sub(req.StartDate).Hours()/24 > MaxTripDays {
		return fmt.Errorf("%w: trip may not be longer than %d days", domain.ErrValidation, MaxTripDays)
	}
	if req.Budget < MinBudget || req.Budget > MaxBudget {
		return fmt.Errorf("%w: budget must be between %d and %d", domain.ErrValidation, MinBudget, MaxBudget)
	}
	if utf8.RuneCountInString(req.Purpose) < MinPurposeLen {
		return fmt.Errorf("%w: purpose must be at least %d characters", domain.ErrValidation, MinPurposeLen)
	}
	if len(req.Interests) == 0 {
		return fmt.Errorf("%w: select at least one interest", domain.ErrValidation)
	}
	for i := range req.Interests {
		if !i.Valid() {
			return fmt.Errorf("%w: unknown interest %q", domain.ErrValidation, string(i))
		}
	}
	for _, f := range []struct{ name, value string }{
		{"accommodation", req.Accommodation},
		{"transportation", req.Transportation},
		{"dietary_restrictions", req.DietaryRestrictions},
		{"special_requests", req.SpecialRequests},
	} {
		if utf8.RuneCountInString(f.value) > maxFreeTextRunes {
			return fmt.Errorf("%w: %s may not exceed %d characters", domain.ErrValidation, f.name, maxFreeTextRunes)
		}
	}
	return nil
}
