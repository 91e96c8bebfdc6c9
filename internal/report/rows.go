// Package report renders saved itineraries into downloadable files.
package report

import (
	"fmt"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Rows flattens an itinerary into export rows: every activity and meal in
// day order, then accommodation, transportation, total and remaining budget.
// The summary rows use the charges recorded on the itinerary, so they add up
// to TotalCost whatever cost policy is in force today.
func Rows(it domain.Itinerary) []domain.ExportRow {
	rows := make([]domain.ExportRow, 0, len(it.Days)*6+4)
	for _, d := range it.Days {
		for _, a := range d.Activities {
			rows = append(rows, domain.ExportRow{
				Day: d.Day, Date: d.Date, Kind: domain.RowActivity,
				Time: a.Time, Title: a.Name, Place: a.Location, Detail: a.Description, Cost: a.Cost,
			})
		}
		for _, m := range d.Meals {
			rows = append(rows, domain.ExportRow{
				Day: d.Day, Date: d.Date, Kind: domain.RowMeal,
				Time: m.Time, Title: string(m.Type), Place: m.Venue, Detail: m.Cuisine, Cost: m.Cost,
			})
		}
	}

	perDay := it.AccommodationPerNight
	rows = append(rows,
		domain.ExportRow{
			Kind:   domain.RowAccommodation,
			Title:  "Accommodation",
			Detail: fmt.Sprintf("%d x %d", it.Duration, perDay),
			Cost:   perDay * int64(it.Duration),
		},
		domain.ExportRow{
			Kind:  domain.RowTransportation,
			Title: "Transportation",
			Cost:  it.TransportationCost,
		},
		domain.ExportRow{Kind: domain.RowTotal, Title: "Total cost", Cost: it.TotalCost},
		domain.ExportRow{Kind: domain.RowRemaining, Title: "Remaining budget", Cost: it.RemainingBudget},
	)
	return rows
}
