// Package domain contains the core data types for the trip planner.
// This package has no internal dependencies and is imported by every other
// internal package (planner, repo, service, handler).
package domain

import "time"

// TripRequest is the set of preferences a traveller submits to get an itinerary.
// It is treated as immutable once submitted: the planner only reads it.
//
// StartDate and EndDate are calendar dates; only their date part is meaningful.
// The optional text fields are empty strings when the traveller left them blank.
type TripRequest struct {
	Destination         string      `json:"destination"`
	StartDate           time.Time   `json:"start_date"`
	EndDate             time.Time   `json:"end_date"`
	Budget              int64       `json:"budget"`
	Purpose             string      `json:"purpose"`
	Interests           InterestSet `json:"interests"`
	Accommodation       string      `json:"accommodation"`
	Transportation      string      `json:"transportation"`
	DietaryRestrictions string      `json:"dietary_restrictions"`
	SpecialRequests     string      `json:"special_requests"`
}
