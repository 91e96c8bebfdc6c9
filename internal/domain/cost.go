package domain

import "math"

// CostItem names one line of the percentage-of-budget cost model.
type CostItem string

const (
	CostMorningActivity   CostItem = "morning_activity"
	CostLunchOuting       CostItem = "lunch_outing"
	CostAfternoonActivity CostItem = "afternoon_activity"
	CostBreakfast         CostItem = "breakfast"
	CostLunch             CostItem = "lunch"
	CostDinner            CostItem = "dinner"
	// CostAccommodation is charged once per day of the trip.
	CostAccommodation CostItem = "accommodation"
	// CostTransportation is charged once for the whole trip.
	CostTransportation CostItem = "transportation"
)

// CostPolicy maps each cost item to its share of the trip budget (0.05 = 5%).
// Items missing from the map cost nothing.
type CostPolicy map[CostItem]float64

// DefaultCostPolicy returns the standard budget split.
func DefaultCostPolicy() CostPolicy {
	return CostPolicy{
		CostMorningActivity:   0.05,
		CostLunchOuting:       0.03,
		CostAfternoonActivity: 0.07,
		CostBreakfast:         0.02,
		CostLunch:             0.03,
		CostDinner:            0.04,
		CostAccommodation:     0.20,
		CostTransportation:    0.10,
	}
}

// Amount returns item's share of budget rounded to the nearest whole unit.
func (p CostPolicy) Amount(item CostItem, budget int64) int64 {
	return RoundHalfUp(float64(budget) * p[item])
}

// RoundHalfUp rounds x to the nearest integer with halves going toward
// positive infinity (2.5 -> 3, -2.5 -> -2).
func RoundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
