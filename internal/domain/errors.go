package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when a trip request fails
// business rule validation (e.g. budget out of range, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrGeneration is returned when itinerary synthesis fails for any reason.
// There is no partial result; the caller may simply submit again.
// Handlers should map this to HTTP 500 with a generic message.
var ErrGeneration = errors.New("itinerary generation failed")
