package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
	"github.com/pkordes/trip-planner/backend/internal/report"
)

// ExportService renders saved itineraries as downloadable files.
type ExportService struct {
	itineraries repo.ItineraryRepo
	now         func() time.Time
}

// NewExportService constructs an ExportService. Summary lines are taken from
// the charges saved with each itinerary, so exports stay consistent with
// TotalCost when the cost policy changes.
func NewExportService(itineraries repo.ItineraryRepo) *ExportService {
	return &ExportService{itineraries: itineraries, now: time.Now}
}

// Export loads the itinerary and renders it in the requested format.
// Returns domain.ErrNotFound if the itinerary does not exist.
func (s *ExportService) Export(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (domain.ExportFile, error) {
	saved, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		return domain.ExportFile{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	name := exportBaseName(saved)
	switch format {
	case domain.ExportPDF:
		body, err := report.PDF(saved, s.now())
		if err != nil {
			return domain.ExportFile{}, fmt.Errorf("service.ExportService.Export: %w", err)
		}
		return domain.ExportFile{Filename: name + ".pdf", ContentType: "application/pdf", Body: body}, nil
	case domain.ExportCSV:
		body, err := report.CSV(saved.Itinerary)
		if err != nil {
			return domain.ExportFile{}, fmt.Errorf("service.ExportService.Export: %w", err)
		}
		return domain.ExportFile{Filename: name + ".csv", ContentType: "text/csv", Body: body}, nil
	}
	return domain.ExportFile{}, fmt.Errorf("service.ExportService.Export: %w: unsupported export format %q", domain.ErrValidation, format)
}

// exportBaseName builds a file name like "itinerary-jaipur-2025-03-10".
// Anything other than ASCII letters and digits in the destination becomes a hyphen.
func exportBaseName(saved domain.SavedItinerary) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(saved.Request.Destination) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "trip"
	}
	return "itinerary-" + slug + "-" + saved.Request.StartDate.Format("2006-01-02")
}
