package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/stem-train-planning/internal/domain"
	"github.com/cxd309/stem-train-planning/internal/repo"
	"github.com/cxd309/stem-train-planning/testutil"
)

// newTestRepo returns a RunRepo backed by a transaction that is rolled back
// when the test finishes.
func newTestRepo(t *testing.T) repo.RunRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewRunRepo(tx)
}

// runFixture returns a two-train run. "Local" is inserted first so the test
// can check that insertion order survives the round trip.
func runFixture() domain.Run {
	set := domain.NewTrajectorySet()
	set.Set("Local", domain.Trajectory{{Time: 5, Location: 0}, {Time: 8.75, Location: 5}, {Time: 11.25, Location: 5}})
	set.Set("Express", domain.Trajectory{{Time: 0, Location: 0}, {Time: 7.5, Location: 15}, {Time: 14.5, Location: 15}})
	return domain.Run{Scenario: "activity-even", Trajectories: set}
}

func TestRunRepo_Create(t *testing.T) {
	r := newTestRepo(t)

	got, err := r.Create(context.Background(), runFixture())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, "activity-even", got.Scenario)
	assert.Equal(t, 2, got.Trains)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestRunRepo_GetByID_PreservesTrainOrderAndSamples(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	input := runFixture()

	created, err := r.Create(ctx, input)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{"Local", "Express"}, got.Trajectories.Labels())
	for _, label := range input.Trajectories.Labels() {
		want, _ := input.Trajectories.Get(label)
		have, ok := got.Trajectories.Get(label)
		require.True(t, ok, label)
		assert.Equal(t, want, have, label)
	}
}

func TestRunRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunRepo_List_Paginates(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for range 3 {
		_, err := r.Create(ctx, runFixture())
		require.NoError(t, err)
	}
	limit := 2

	first, err := r.List(ctx, domain.NewRunPage(nil, &limit))
	require.NoError(t, err)
	assert.Len(t, first, 2)

	page := 2
	second, err := r.List(ctx, domain.NewRunPage(&page, &limit))
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, domain.TrajectorySet{}, second[0].Trajectories, "List must not load samples")
}

func TestRunRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, runFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepo(t)

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
