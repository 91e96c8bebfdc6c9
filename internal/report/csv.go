package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{"day", "date", "kind", "time", "title", "place", "detail", "cost"}

// CSV encodes the itinerary's rows as CSV with a header line.
// Summary rows leave the day column empty.
func CSV(it domain.Itinerary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("report.CSV: %w", err)
	}
	for _, r := range Rows(it) {
		if err := w.Write(csvRecord(r)); err != nil {
			return nil, fmt.Errorf("report.CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("report.CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRecord(r domain.ExportRow) []string {
	day := ""
	if r.Day > 0 {
		day = strconv.Itoa(r.Day)
	}
	return []string{
		day,
		r.Date,
		string(r.Kind),
		r.Time,
		r.Title,
		r.Place,
		r.Detail,
		strconv.FormatInt(r.Cost, 10),
	}
}
