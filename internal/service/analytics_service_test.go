package service

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOverviewAggregatesWindow(t *testing.T) {
	db, cohortRepo, trajRepo := newTestRepos(t)
	cfg := testEngineConfig()
	asOf := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	seedLearner(t, db, model.Learner{ID: 1, GoalHoursPerWeek: 4, Affinities: map[string]float64{}})
	seedLearner(t, db, model.Learner{ID: 2, GoalHoursPerWeek: 6, Affinities: map[string]float64{}})

	seedTrajectory(t, db, 1, "Algebra", 1, 30, 0.6, asOf)
	seedTrajectory(t, db, 2, "Calculus", 2, 10, 0.8, asOf)
	// 窗口外
	seedTrajectory(t, db, 1, "Algebra", cfg.LookbackDays+3, 999, 0.1, asOf)

	svc := NewAnalyticsService(cohortRepo, trajRepo, cfg)
	overview, err := svc.GetOverview(asOf)
	require.NoError(t, err)

	assert.Equal(t, cfg.LookbackDays, overview.WindowDays)
	assert.EqualValues(t, 40, overview.TotalMinutes)
	assert.InDelta(t, 0.7, overview.MeanMicro, 1e-9)
	assert.InDelta(t, 5.0, overview.MeanGoalHours, 1e-9)
	assert.Equal(t, 2, overview.Learners)
}

func TestGetOverviewOnEmptyStore(t *testing.T) {
	_, cohortRepo, trajRepo := newTestRepos(t)

	svc := NewAnalyticsService(cohortRepo, trajRepo, testEngineConfig())
	overview, err := svc.GetOverview(time.Now())
	require.NoError(t, err)

	assert.Zero(t, overview.TotalMinutes)
	assert.Zero(t, overview.MeanGoalHours)
	assert.Zero(t, overview.Learners)
}

func TestRecentProgressDefaultsWindow(t *testing.T) {
	db, cohortRepo, trajRepo := newTestRepos(t)
	asOf := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	seedTrajectory(t, db, 1, "Algebra", 1, 20, 0.5, asOf)

	svc := NewAnalyticsService(cohortRepo, trajRepo, testEngineConfig())
	rows, err := svc.RecentProgress(asOf, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Algebra", rows[0].Domain)
}

func TestTrajectorySeriesRequiresKnownLearner(t *testing.T) {
	db, cohortRepo, trajRepo := newTestRepos(t)
	asOf := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	svc := NewAnalyticsService(cohortRepo, trajRepo, testEngineConfig())
	_, err := svc.TrajectorySeries(1, "Algebra")
	assert.ErrorIs(t, err, util.ErrLearnerNotFound)

	seedLearner(t, db, model.Learner{ID: 1, Affinities: map[string]float64{}})
	seedTrajectory(t, db, 1, "Algebra", 2, 20, 0.5, asOf)
	seedTrajectory(t, db, 1, "Algebra", 1, 25, 0.6, asOf)

	series, err := svc.TrajectorySeries(1, "Algebra")
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.True(t, series[0].Date.Before(series[1].Date))
}
