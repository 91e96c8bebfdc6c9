// Package repo contains all database access logic for the trip planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ItineraryRepo defines the persistence operations for generated itineraries.
type ItineraryRepo interface {
	// Create stores the request together with the itinerary it produced and
	// returns the persisted record with DB-generated id and created_at.
	Create(ctx context.Context, req domain.TripRequest, it domain.Itinerary) (domain.SavedItinerary, error)

	// GetByID retrieves a single saved itinerary.
	// Returns domain.ErrNotFound if no row with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error)

	// ListPaged returns one page of saved itineraries, newest first, and the
	// total number of rows.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.SavedItinerary, int64, error)

	// Delete removes a saved itinerary. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

const itineraryColumns = `
	id, destination, start_date, end_date, budget, purpose, interests,
	accommodation, transportation, dietary_restrictions, special_requests,
	duration, accommodation_per_night, transportation_cost,
	total_cost, remaining_budget, days, created_at`

// Create inserts a new itinerary row and returns the full persisted record.
func (r *pgItineraryRepo) Create(ctx context.Context, req domain.TripRequest, it domain.Itinerary) (domain.SavedItinerary, error) {
	days, err := json.Marshal(it.Days)
	if err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: encode days: %w", err)
	}

	q := `
		INSERT INTO itineraries (
			destination, start_date, end_date, budget, purpose, interests,
			accommodation, transportation, dietary_restrictions, special_requests,
			duration, accommodation_per_night, transportation_cost,
			total_cost, remaining_budget, days)
		VALUES (
			@destination, @start_date, @end_date, @budget, @purpose, @interests,
			@accommodation, @transportation, @dietary_restrictions, @special_requests,
			@duration, @accommodation_per_night, @transportation_cost,
			@total_cost, @remaining_budget, @days)
		RETURNING ` + itineraryColumns

	args := pgx.NamedArgs{
		"destination":             req.Destination,
		"start_date":              req.StartDate,
		"end_date":                req.EndDate,
		"budget":                  req.Budget,
		"purpose":                 req.Purpose,
		"interests":               req.Interests.Slugs(),
		"accommodation":           req.Accommodation,
		"transportation":          req.Transportation,
		"dietary_restrictions":    req.DietaryRestrictions,
		"special_requests":        req.SpecialRequests,
		"duration":                it.Duration,
		"accommodation_per_night": it.AccommodationPerNight,
		"transportation_cost":     it.TransportationCost,
		"total_cost":              it.TotalCost,
		"remaining_budget":        it.RemainingBudget,
		"days":                    days,
	}

	result, err := scanItinerary(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a saved itinerary by primary key.
func (r *pgItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error) {
	q := `SELECT ` + itineraryColumns + ` FROM itineraries WHERE id = @id`

	result, err := scanItinerary(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of saved itineraries ordered by created_at descending.
func (r *pgItineraryRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.SavedItinerary, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM itineraries`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListPaged: count: %w", err)
	}

	q := `SELECT ` + itineraryColumns + `
		FROM itineraries
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	out := []domain.SavedItinerary{}
	for rows.Next() {
		s, err := scanItinerary(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListPaged: scan: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListPaged: rows: %w", err)
	}
	return out, total, nil
}

// Delete removes a saved itinerary by primary key.
func (r *pgItineraryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM itineraries WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanItinerary maps a single itineraries row into a domain.SavedItinerary.
// The destination and budget are copied onto the itinerary as the planner does.
func scanItinerary(s scanner) (domain.SavedItinerary, error) {
	var (
		out       domain.SavedItinerary
		id        pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
		interests []string
		days      []byte
	)

	req := &out.Request
	it := &out.Itinerary
	err := s.Scan(
		&id, &req.Destination, &startDate, &endDate, &req.Budget, &req.Purpose, &interests,
		&req.Accommodation, &req.Transportation, &req.DietaryRestrictions, &req.SpecialRequests,
		&it.Duration, &it.AccommodationPerNight, &it.TransportationCost,
		&it.TotalCost, &it.RemainingBudget, &days, &out.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SavedItinerary{}, domain.ErrNotFound
		}
		return domain.SavedItinerary{}, err
	}

	out.ID = uuid.UUID(id.Bytes)
	req.StartDate = startDate.Time
	req.EndDate = endDate.Time

	req.Interests, err = domain.ParseInterestSet(interests)
	if err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("decode interests: %w", err)
	}

	it.Days = []domain.DayPlan{}
	if err := json.Unmarshal(days, &it.Days); err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("decode days: %w", err)
	}
	it.Destination = req.Destination
	it.Budget = req.Budget

	return out, nil
}
