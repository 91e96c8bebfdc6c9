package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// InterestOption is one entry of the interest vocabulary. ID is what clients
// send back in a trip request; Label is what they show.
type InterestOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ListInterests handles GET /interests.
func (s *Server) ListInterests(w http.ResponseWriter, _ *http.Request) {
	all := domain.Interests()
	out := make([]InterestOption, len(all))
	for i, in := range all {
		out[i] = InterestOption{ID: string(in), Label: in.Label()}
	}
	writeJSON(w, http.StatusOK, out)
}
