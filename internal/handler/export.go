package handler

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// ExportItinerary handles GET /itineraries/{id}/export.
// ?format=csv (default) or ?format=pdf selects the rendering; the file is
// sent as an attachment.
func (s *Server) ExportItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	format, err := domain.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
		return
	}

	file, err := s.exports.Export(r.Context(), id, format)
	if err != nil {
		s.writeLookupError(w, r, err, "itinerary not found")
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Body)
}
