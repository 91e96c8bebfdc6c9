package domain

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary is the synthesized day-by-day plan for a TripRequest plus the
// aggregate cost figures. It is never mutated after the planner returns it.
//
// AccommodationPerNight and TransportationCost are the trip-level charges
// the planner added on top of the daily costs, so TotalCost is
// sum(Days[i].Cost()) + AccommodationPerNight*Duration + TransportationCost.
// RemainingBudget is Budget - TotalCost and is negative for an over-budget plan.
type Itinerary struct {
	Destination           string    `json:"destination"`
	Duration              int       `json:"duration"`
	Budget                int64     `json:"budget"`
	AccommodationPerNight int64     `json:"accommodation_per_night"`
	TransportationCost    int64     `json:"transportation_cost"`
	TotalCost             int64     `json:"total_cost"`
	RemainingBudget       int64     `json:"remaining_budget"`
	Days                  []DayPlan `json:"days"`
}

// OverBudget reports whether the plan costs more than the stated budget.
func (it Itinerary) OverBudget() bool {
	return it.RemainingBudget < 0
}

// DayPlan is one day of an itinerary. Day is 1-based.
// Activities and Meals always hold exactly three entries each.
type DayPlan struct {
	Day           int        `json:"day"`
	Date          string     `json:"date"`
	Activities    []Activity `json:"activities"`
	Meals         []Meal     `json:"meals"`
	Accommodation string     `json:"accommodation"`
	Notes         string     `json:"notes"`
}

// Cost re-sums the day's activity and meal costs.
// It matches the amount the planner accumulated for the day.
func (d DayPlan) Cost() int64 {
	var total int64
	for _, a := range d.Activities {
		total += a.Cost
	}
	for _, m := range d.Meals {
		total += m.Cost
	}
	return total
}

// Activity is a scheduled outing within a day.
type Activity struct {
	Time        string `json:"time"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Cost        int64  `json:"cost"`
	Duration    string `json:"duration"`
}

// MealType identifies which meal of the day a Meal is.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
)

// Meal is one of the three meals planned for a day.
type Meal struct {
	Time    string   `json:"time"`
	Type    MealType `json:"type"`
	Venue   string   `json:"venue"`
	Cuisine string   `json:"cuisine"`
	Cost    int64    `json:"cost"`
}

// SavedItinerary is a generated itinerary persisted together with the
// request that produced it.
type SavedItinerary struct {
	ID        uuid.UUID   `json:"id"`
	Request   TripRequest `json:"request"`
	Itinerary Itinerary   `json:"itinerary"`
	CreatedAt time.Time   `json:"created_at"`
}
