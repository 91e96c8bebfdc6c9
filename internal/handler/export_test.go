package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/handler"
)

// ---- mock ExportServicer ---------------------------------------------------

type mockExportServicer struct {
	export func(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (domain.ExportFile, error)
}

func (m *mockExportServicer) Export(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (domain.ExportFile, error) {
	return m.export(ctx, id, format)
}

// compile-time check: mockExportServicer must satisfy handler.ExportServicer.
var _ handler.ExportServicer = (*mockExportServicer)(nil)

// newExportHTTPHandler wires a Server with only the export service mock.
func newExportHTTPHandler(exportSvc handler.ExportServicer) http.Handler {
	return handler.Routes(handler.NewServer(nil, exportSvc, nil))
}

func exportGet(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// ---- GET /itineraries/{id}/export ------------------------------------------

func TestExportItinerary_DefaultsToCSV(t *testing.T) {
	id := uuid.New()
	var gotID uuid.UUID
	var gotFormat domain.ExportFormat
	svc := &mockExportServicer{
		export: func(_ context.Context, id uuid.UUID, f domain.ExportFormat) (domain.ExportFile, error) {
			gotID, gotFormat = id, f
			return domain.ExportFile{
				Filename:    "itinerary-jaipur-2025-03-10.csv",
				ContentType: "text/csv",
				Body:        []byte("day,date,kind\n"),
			}, nil
		},
	}

	rec := exportGet(newExportHTTPHandler(svc), "/itineraries/"+id.String()+"/export")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, gotID)
	assert.Equal(t, domain.ExportCSV, gotFormat)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=itinerary-jaipur-2025-03-10.csv", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "14", rec.Header().Get("Content-Length"))
	assert.Equal(t, "day,date,kind\n", rec.Body.String())
}

func TestExportItinerary_PDF(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID, f domain.ExportFormat) (domain.ExportFile, error) {
			require.Equal(t, domain.ExportPDF, f)
			return domain.ExportFile{Filename: "itinerary-trip-2025-03-10.pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.3")}, nil
		},
	}

	rec := exportGet(newExportHTTPHandler(svc), "/itineraries/"+uuid.New().String()+"/export?format=pdf")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "itinerary-trip-2025-03-10.pdf")
}

func TestExportItinerary_422_UnknownFormat(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID, _ domain.ExportFormat) (domain.ExportFile, error) {
			t.Fatal("service should not be called")
			return domain.ExportFile{}, nil
		},
	}

	rec := exportGet(newExportHTTPHandler(svc), "/itineraries/"+uuid.New().String()+"/export?format=xlsx")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "xlsx")
}

func TestExportItinerary_404(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID, _ domain.ExportFormat) (domain.ExportFile, error) {
			return domain.ExportFile{}, domain.ErrNotFound
		},
	}

	rec := exportGet(newExportHTTPHandler(svc), "/itineraries/"+uuid.New().String()+"/export")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Code)
}
