package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// TripRequestBody is the JSON body accepted by the generation endpoints.
// Dates are calendar dates ("2025-03-10"). Interests may be slugs or labels.
type TripRequestBody struct {
	Destination         string              `json:"destination"`
	StartDate           *openapi_types.Date `json:"start_date"`
	EndDate             *openapi_types.Date `json:"end_date"`
	Budget              int64               `json:"budget"`
	Purpose             string              `json:"purpose"`
	Interests           []string            `json:"interests"`
	Accommodation       string              `json:"accommodation,omitempty"`
	Transportation      string              `json:"transportation,omitempty"`
	DietaryRestrictions string              `json:"dietary_restrictions,omitempty"`
	SpecialRequests     string              `json:"special_requests,omitempty"`
}

// SavedItineraryResponse is the JSON form of a saved itinerary.
type SavedItineraryResponse struct {
	ID        uuid.UUID        `json:"id"`
	Request   TripRequestBody  `json:"request"`
	Itinerary domain.Itinerary `json:"itinerary"`
	CreatedAt time.Time        `json:"created_at"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ItineraryPage is the body of GET /itineraries.
type ItineraryPage struct {
	Data       []SavedItineraryResponse `json:"data"`
	Pagination Pagination               `json:"pagination"`
}

// PreviewItinerary handles POST /itineraries/preview.
// The itinerary is generated but not saved.
func (s *Server) PreviewItinerary(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTripRequest(w, r)
	if !ok {
		return
	}

	it, err := s.itineraries.Preview(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// CreateItinerary handles POST /itineraries.
func (s *Server) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTripRequest(w, r)
	if !ok {
		return
	}

	saved, err := s.itineraries.Create(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, savedToResponse(saved))
}

// ListItineraries handles GET /itineraries.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListItineraries(w http.ResponseWriter, r *http.Request) {
	page, err := optionalInt(r, "page")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	limit, err := optionalInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	params := domain.NewPaginationParams(page, limit)
	items, total, err := s.itineraries.ListPaged(r.Context(), params)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	data := make([]SavedItineraryResponse, len(items))
	for i, it := range items {
		data[i] = savedToResponse(it)
	}
	writeJSON(w, http.StatusOK, ItineraryPage{
		Data: data,
		Pagination: Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: params.TotalPages(total),
		},
	})
}

// GetItinerary handles GET /itineraries/{id}.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	saved, err := s.itineraries.GetByID(r.Context(), id)
	if err != nil {
		s.writeLookupError(w, r, err, "itinerary not found")
		return
	}
	writeJSON(w, http.StatusOK, savedToResponse(saved))
}

// DeleteItinerary handles DELETE /itineraries/{id}.
func (s *Server) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.itineraries.Delete(r.Context(), id); err != nil {
		s.writeLookupError(w, r, err, "itinerary not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- request helpers ---------------------------------------------------------

// decodeTripRequest reads the JSON body into a domain.TripRequest, writing
// the error response itself when it returns false.
func decodeTripRequest(w http.ResponseWriter, r *http.Request) (domain.TripRequest, bool) {
	var body TripRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body too large")
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
		default:
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "malformed request body: "+err.Error())
		}
		return domain.TripRequest{}, false
	}

	req, err := bodyToRequest(body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
		return domain.TripRequest{}, false
	}
	return req, true
}

// pathID parses the {id} URL parameter, answering 404 for anything that is
// not a UUID since no itinerary can have that id.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "itinerary not found")
		return uuid.Nil, false
	}
	return id, true
}

// optionalInt parses an integer query parameter, returning nil when it is absent.
func optionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &v, nil
}

// --- mapping helpers --------------------------------------------------------

// bodyToRequest converts the request body into a domain.TripRequest.
// Missing dates stay zero so the service reports them.
func bodyToRequest(body TripRequestBody) (domain.TripRequest, error) {
	interests, err := domain.ParseInterestSet(body.Interests)
	if err != nil {
		return domain.TripRequest{}, err
	}
	req := domain.TripRequest{
		Destination:         body.Destination,
		Budget:              body.Budget,
		Purpose:             body.Purpose,
		Interests:           interests,
		Accommodation:       body.Accommodation,
		Transportation:      body.Transportation,
		DietaryRestrictions: body.DietaryRestrictions,
		SpecialRequests:     body.SpecialRequests,
	}
	if body.StartDate != nil {
		req.StartDate = body.StartDate.Time
	}
	if body.EndDate != nil {
		req.EndDate = body.EndDate.Time
	}
	return req, nil
}

func requestToBody(req domain.TripRequest) TripRequestBody {
	start := openapi_types.Date{Time: req.StartDate}
	end := openapi_types.Date{Time: req.EndDate}
	return TripRequestBody{
		Destination:         req.Destination,
		StartDate:           &start,
		EndDate:             &end,
		Budget:              req.Budget,
		Purpose:             req.Purpose,
		Interests:           req.Interests.Slugs(),
		Accommodation:       req.Accommodation,
		Transportation:      req.Transportation,
		DietaryRestrictions: req.DietaryRestrictions,
		SpecialRequests:     req.SpecialRequests,
	}
}

func savedToResponse(s domain.SavedItinerary) SavedItineraryResponse {
	return SavedItineraryResponse{
		ID:        s.ID,
		Request:   requestToBody(s.Request),
		Itinerary: s.Itinerary,
		CreatedAt: s.CreatedAt,
	}
}
