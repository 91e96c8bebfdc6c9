package repo_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/planner"
	"github.com/pkordes/trip-planner/backend/internal/repo"
	"github.com/pkordes/trip-planner/backend/testutil"
)

// mockItineraryRepo is a hand-written test double for repo.ItineraryRepo.
// Each method is a function field; set only the ones your test needs.
type mockItineraryRepo struct {
	create    func(ctx context.Context, req domain.TripRequest, it domain.Itinerary) (domain.SavedItinerary, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.SavedItinerary, int64, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockItineraryRepo) Create(ctx context.Context, req domain.TripRequest, it domain.Itinerary) (domain.SavedItinerary, error) {
	return m.create(ctx, req, it)
}
func (m *mockItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error) {
	return m.getByID(ctx, id)
}
func (m *mockItineraryRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.SavedItinerary, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockItineraryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.ItineraryRepo = (*mockItineraryRepo)(nil)

func savedFixture() domain.SavedItinerary {
	req := requestFixture()
	return domain.SavedItinerary{
		ID:        uuid.New(),
		Request:   req,
		Itinerary: planner.Synthesize(req, planner.DefaultOptions()),
		CreatedAt: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// unreachableRedis points at a port nothing listens on, with retries off so
// every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	c := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { c.Close() })
	return c
}

// ---- unit tests (no Redis required) ----------------------------------------

func TestCachedItineraryRepo_RedisDown_FallsThrough(t *testing.T) {
	want := savedFixture()
	calls := 0
	inner := &mockItineraryRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.SavedItinerary, error) {
			calls++
			return want, nil
		},
	}
	r := repo.NewCachedItineraryRepo(inner, unreachableRedis(t), time.Minute, quietLogger())

	got, err := r.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, 1, calls)
}

func TestCachedItineraryRepo_RedisDown_DeleteStillSucceeds(t *testing.T) {
	inner := &mockItineraryRepo{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}
	r := repo.NewCachedItineraryRepo(inner, unreachableRedis(t), time.Minute, quietLogger())

	assert.NoError(t, r.Delete(context.Background(), uuid.New()))
}

func TestCachedItineraryRepo_NotFoundPropagates(t *testing.T) {
	inner := &mockItineraryRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.SavedItinerary, error) {
			return domain.SavedItinerary{}, domain.ErrNotFound
		},
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}
	r := repo.NewCachedItineraryRepo(inner, unreachableRedis(t), time.Minute, quietLogger())

	_, err := r.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = r.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- integration tests (TEST_REDIS_URL) ------------------------------------

func TestCachedItineraryRepo_GetByID_ServesFromCache(t *testing.T) {
	rdb := testutil.NewRedis(t)
	want := savedFixture()
	calls := 0
	inner := &mockItineraryRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.SavedItinerary, error) {
			calls++
			return want, nil
		},
	}
	r := repo.NewCachedItineraryRepo(inner, rdb, time.Minute, quietLogger())
	ctx := context.Background()

	first, err := r.GetByID(ctx, want.ID)
	require.NoError(t, err)
	second, err := r.GetByID(ctx, want.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second read should be a cache hit")
	assert.Equal(t, first.Itinerary, second.Itinerary)
	assert.True(t, second.Request.StartDate.Equal(want.Request.StartDate))
	assert.Equal(t, want.Request.Interests, second.Request.Interests)
}

func TestCachedItineraryRepo_CreatePrimesCache(t *testing.T) {
	rdb := testutil.NewRedis(t)
	want := savedFixture()
	inner := &mockItineraryRepo{
		create: func(_ context.Context, _ domain.TripRequest, _ domain.Itinerary) (domain.SavedItinerary, error) {
			return want, nil
		},
		getByID: func(_ context.Context, _ uuid.UUID) (domain.SavedItinerary, error) {
			t.Fatal("GetByID should be served from the cache")
			return domain.SavedItinerary{}, nil
		},
	}
	r := repo.NewCachedItineraryRepo(inner, rdb, time.Minute, quietLogger())
	ctx := context.Background()

	_, err := r.Create(ctx, want.Request, want.Itinerary)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
}

func TestCachedItineraryRepo_DeleteEvicts(t *testing.T) {
	rdb := testutil.NewRedis(t)
	want := savedFixture()
	deleted := false
	inner := &mockItineraryRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.SavedItinerary, error) {
			if deleted {
				return domain.SavedItinerary{}, domain.ErrNotFound
			}
			return want, nil
		},
		delete: func(_ context.Context, _ uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	r := repo.NewCachedItineraryRepo(inner, rdb, time.Minute, quietLogger())
	ctx := context.Background()

	_, err := r.GetByID(ctx, want.ID)
	require.NoError(t, err)
	require.NoError(t, r.Delete(ctx, want.ID))

	_, err = r.GetByID(ctx, want.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
