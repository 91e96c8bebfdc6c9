// Package planner synthesizes a day-by-day itinerary from a trip request.
// Synthesis is a pure function of its inputs: no I/O, no clock, no randomness.
// The planner trusts its caller; validation happens in the service layer.
package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// DefaultAccommodation labels each day when the request names none.
const DefaultAccommodation = "Standard hotel"

// dateLayout renders dates like "Monday, June 2".
const dateLayout = "Monday, January 2"

// Options tunes synthesis policy.
type Options struct {
	// Costs is the percentage-of-budget table. Nil means domain.DefaultCostPolicy.
	Costs domain.CostPolicy

	// MinimumOneDay makes a request whose start and end dates coincide
	// produce a one-day trip instead of an empty one.
	MinimumOneDay bool
}

// DefaultOptions returns the default cost table with same-day trips counted as one day.
func DefaultOptions() Options {
	return Options{Costs: domain.DefaultCostPolicy(), MinimumOneDay: true}
}

// Duration returns the number of days between start and end, rounded up.
// Equal dates yield 0 unless minOneDay is set.
func Duration(start, end time.Time, minOneDay bool) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 0 {
		days = 0
	}
	if days == 0 && minOneDay && !end.Before(start) {
		days = 1
	}
	return days
}

// Synthesize builds the itinerary for req.
//
// Every day gets three activities and three meals priced as shares of the
// budget, an accommodation label and a note that depends on the day's
// position. Accommodation is charged per day and transportation once, on top
// of the daily costs. RemainingBudget is never clamped.
func Synthesize(req domain.TripRequest, opts Options) domain.Itinerary {
	costs := opts.Costs
	if costs == nil {
		costs = domain.DefaultCostPolicy()
	}

	duration := Duration(req.StartDate, req.EndDate, opts.MinimumOneDay)
	days := make([]domain.DayPlan, 0, duration)

	var total int64
	for i := 0; i < duration; i++ {
		day := domain.DayPlan{
			Day:           i + 1,
			Date:          req.StartDate.AddDate(0, 0, i).Format(dateLayout),
			Activities:    activities(req, costs),
			Meals:         meals(req, costs),
			Accommodation: accommodation(req),
			Notes:         notes(i, duration),
		}
		total += dayCost(day)
		days = append(days, day)
	}

	accommodationCost := costs.Amount(domain.CostAccommodation, req.Budget)
	transportationCost := costs.Amount(domain.CostTransportation, req.Budget)
	total += accommodationCost*int64(duration) + transportationCost

	return domain.Itinerary{
		Destination:           req.Destination,
		Duration:              duration,
		Budget:                req.Budget,
		AccommodationPerNight: accommodationCost,
		TransportationCost:    transportationCost,
		TotalCost:             total,
		RemainingBudget:       req.Budget - total,
		Days:                  days,
	}
}

// activities returns the morning, lunch-time and afternoon outings.
func activities(req domain.TripRequest, costs domain.CostPolicy) []domain.Activity {
	dest := req.Destination

	morning := "Visit Local Attraction"
	if req.Interests.Has(domain.InterestHistory) {
		morning = "Visit Historical Monument"
	}

	afternoon, afternoonDesc := "Relaxing Activity", "Relax and enjoy the atmosphere"
	if req.Interests.Has(domain.InterestAdventure) {
		afternoon, afternoonDesc = "Adventure Activity", "Experience thrilling adventure"
	}

	return []domain.Activity{
		{
			Time:        "10:00 AM",
			Name:        morning,
			Description: "Explore the beautiful sights of " + dest,
			Location:    "Central " + dest,
			Cost:        costs.Amount(domain.CostMorningActivity, req.Budget),
			Duration:    "2 hours",
		},
		{
			Time:        "1:00 PM",
			Name:        "Lunch at local restaurant",
			Description: "Enjoy authentic local cuisine",
			Location:    "Downtown " + dest,
			Cost:        costs.Amount(domain.CostLunchOuting, req.Budget),
			Duration:    "1 hour",
		},
		{
			Time:        "3:00 PM",
			Name:        afternoon,
			Description: afternoonDesc,
			Location:    dest + " outskirts",
			Cost:        costs.Amount(domain.CostAfternoonActivity, req.Budget),
			Duration:    "3 hours",
		},
	}
}

// meals returns breakfast, lunch and dinner.
func meals(req domain.TripRequest, costs domain.CostPolicy) []domain.Meal {
	lunchCuisine := "Casual dining"
	if req.Interests.Has(domain.InterestFood) {
		lunchCuisine = "Gourmet local"
	}
	dinnerVenue := "Popular restaurant"
	if req.Interests.Has(domain.InterestCulture) {
		dinnerVenue = "Cultural experience restaurant"
	}

	return []domain.Meal{
		{
			Time:    "8:00 AM",
			Type:    domain.MealBreakfast,
			Venue:   "Hotel restaurant",
			Cuisine: "Continental",
			Cost:    costs.Amount(domain.CostBreakfast, req.Budget),
		},
		{
			Time:    "1:00 PM",
			Type:    domain.MealLunch,
			Venue:   "Local restaurant",
			Cuisine: lunchCuisine,
			Cost:    costs.Amount(domain.CostLunch, req.Budget),
		},
		{
			Time:    "8:00 PM",
			Type:    domain.MealDinner,
			Venue:   dinnerVenue,
			Cuisine: "Local specialties",
			Cost:    costs.Amount(domain.CostDinner, req.Budget),
		},
	}
}

func accommodation(req domain.TripRequest) string {
	if req.Accommodation != "" {
		return req.Accommodation
	}
	return DefaultAccommodation
}

// notes picks the day's note by position. The first-day check runs before
// the last-day check, so a one-day trip gets the orientation note.
func notes(i, duration int) string {
	switch {
	case i == 0:
		return "First day in the city - take it easy and get oriented."
	case i == duration-1:
		return "Last day - make sure to pack and check out on time."
	default:
		return fmt.Sprintf("Day %d of your adventure!", i+1)
	}
}

// dayCost returns the sum of a day's activity and meal costs.
func dayCost(d domain.DayPlan) int64 {
	var sum int64
	for _, a := range d.Activities {
		sum += a.Cost
	}
	for _, m := range d.Meals {
		sum += m.Cost
	}
	return sum
}
