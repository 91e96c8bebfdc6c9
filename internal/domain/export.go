package domain

import "fmt"

// ExportFormat selects how a saved itinerary is rendered for download.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ParseExportFormat maps a query value to an ExportFormat. Empty means CSV.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case "", ExportCSV:
		return ExportCSV, nil
	case ExportPDF:
		return ExportPDF, nil
	}
	return "", fmt.Errorf("%w: unsupported export format %q", ErrValidation, s)
}

// ExportRowKind says what an ExportRow describes.
type ExportRowKind string

const (
	RowActivity       ExportRowKind = "activity"
	RowMeal           ExportRowKind = "meal"
	RowAccommodation  ExportRowKind = "accommodation"
	RowTransportation ExportRowKind = "transportation"
	RowTotal          ExportRowKind = "total"
	RowRemaining      ExportRowKind = "remaining_budget"
)

// ExportRow is a single row in the flat itinerary export: one per activity
// and meal, followed by trip-level summary rows whose Day is 0.
type ExportRow struct {
	Day    int
	Date   string
	Kind   ExportRowKind
	Time   string
	Title  string // activity name or meal type
	Place  string // location or venue
	Detail string // description or cuisine
	Cost   int64
}

// ExportFile is a rendered export ready to stream to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
