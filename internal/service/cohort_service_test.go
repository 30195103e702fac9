package service

import (
	"adaptive_learning_backend/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	db1 := newTestDB(t)
	db2 := newTestDB(t)

	svc1 := NewCohortService(repository.NewCohortRepository(db1), testEngineConfig())
	svc2 := NewCohortService(repository.NewCohortRepository(db2), testEngineConfig())

	learners1, items1, err := svc1.Generate()
	require.NoError(t, err)
	learners2, items2, err := svc2.Generate()
	require.NoError(t, err)

	assert.Equal(t, learners1, learners2)
	assert.Equal(t, items1, items2)
}

func TestGenerateDiffersForDifferentSeeds(t *testing.T) {
	db1 := newTestDB(t)
	db2 := newTestDB(t)

	cfg2 := testEngineConfig()
	cfg2.Seed = 7

	svc1 := NewCohortService(repository.NewCohortRepository(db1), testEngineConfig())
	svc2 := NewCohortService(repository.NewCohortRepository(db2), cfg2)

	learners1, _, err := svc1.Generate()
	require.NoError(t, err)
	learners2, _, err := svc2.Generate()
	require.NoError(t, err)

	assert.NotEqual(t, learners1, learners2)
}

func TestGenerateRespectsDocumentedBounds(t *testing.T) {
	db := newTestDB(t)
	cfg := testEngineConfig()
	cfg.Students = 200
	cfg.Items = 300

	svc := NewCohortService(repository.NewCohortRepository(db), cfg)
	learners, items, err := svc.Generate()
	require.NoError(t, err)
	require.Len(t, learners, 200)
	require.Len(t, items, 300)

	domainSet := map[string]bool{}
	for _, d := range cfg.Domains {
		domainSet[d] = true
	}

	for _, l := range learners {
		assert.GreaterOrEqual(t, l.Engagement, 0.0)
		assert.LessOrEqual(t, l.Engagement, 1.0)
		assert.GreaterOrEqual(t, l.PaceMinPerDay, 5.0)
		assert.LessOrEqual(t, l.PaceMinPerDay, 120.0)
		assert.GreaterOrEqual(t, l.GoalHoursPerWeek, 1.0)
		assert.LessOrEqual(t, l.GoalHoursPerWeek, 8.0)
		require.Len(t, l.Affinities, len(cfg.Domains))
		for d, aff := range l.Affinities {
			assert.True(t, domainSet[d])
			assert.GreaterOrEqual(t, aff, -2.0)
			assert.LessOrEqual(t, aff, 2.0)
		}
	}

	for _, item := range items {
		assert.True(t, domainSet[item.Domain])
		assert.GreaterOrEqual(t, item.Discrimination, 0.6)
		assert.LessOrEqual(t, item.Discrimination, 1.8)
		assert.GreaterOrEqual(t, item.ExpectedMinutes, 3.0)
		assert.LessOrEqual(t, item.ExpectedMinutes, 20.0)
	}
}

func TestGeneratePersistsCohort(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCohortRepository(db)

	svc := NewCohortService(repo, testEngineConfig())
	_, _, err := svc.Generate()
	require.NoError(t, err)

	learners, err := repo.ListLearners()
	require.NoError(t, err)
	assert.Len(t, learners, testEngineConfig().Students)

	items, err := repo.ListItems()
	require.NoError(t, err)
	assert.Len(t, items, testEngineConfig().Items)
}
