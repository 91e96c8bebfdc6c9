package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

var amounts = message.NewPrinter(language.English)

// PDF renders a printable itinerary: a budget overview followed by one
// section per day with activities, meals, accommodation, notes and the
// day's cost. generatedAt is printed in the footer.
func PDF(saved domain.SavedItinerary, generatedAt time.Time) ([]byte, error) {
	it := saved.Itinerary

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 22)
	pdf.SetTitle("Itinerary: "+it.Destination, true)
	pdf.AliasNbPages("")

	// Core fonts are cp1252; user text may be any UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8,
			fmt.Sprintf("Generated %s - estimates only, not a booking - page %d/{nb}",
				generatedAt.UTC().Format("02 Jan 2006 15:04 UTC"), pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, tr(it.Destination), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, fmt.Sprintf("%d-day itinerary", it.Duration), "", 1, "L", false, 0, "")
	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	section := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 6, tr(value), "", 1, "L", false, 0, "")
	}

	section("Overview")
	req := saved.Request
	row("Dates", req.StartDate.Format("02 Jan 2006")+" - "+req.EndDate.Format("02 Jan 2006"))
	row("Purpose", req.Purpose)
	if len(req.Interests) > 0 {
		labels := make([]string, 0, len(req.Interests))
		for _, in := range req.Interests.Slice() {
			labels = append(labels, in.Label())
		}
		row("Interests", strings.Join(labels, ", "))
	}
	row("Budget", money(it.Budget))
	for _, r := range Rows(it) {
		switch r.Kind {
		case domain.RowAccommodation, domain.RowTransportation, domain.RowTotal:
			row(r.Title, money(r.Cost))
		}
	}

	if it.OverBudget() {
		pdf.SetFillColor(253, 226, 226)
		pdf.SetTextColor(150, 20, 20)
	} else {
		pdf.SetFillColor(226, 246, 230)
		pdf.SetTextColor(20, 110, 40)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "REMAINING BUDGET", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, money(it.RemainingBudget), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	for _, d := range it.Days {
		section(fmt.Sprintf("Day %d - %s", d.Day, d.Date))
		for _, a := range d.Activities {
			row(a.Time, fmt.Sprintf("%s, %s (%s) %s", a.Name, a.Location, a.Duration, money(a.Cost)))
		}
		for _, m := range d.Meals {
			row(m.Time, fmt.Sprintf("%s at %s, %s %s", m.Type, m.Venue, m.Cuisine, money(m.Cost)))
		}
		row("Stay", d.Accommodation)
		row("Day cost", money(d.Cost()))
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(80, 80, 80)
		pdf.MultiCell(170, 5, tr(d.Notes), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report.PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// money formats whole currency units with thousands separators, e.g. "-8,400".
func money(v int64) string {
	return amounts.Sprintf("%d", v)
}
