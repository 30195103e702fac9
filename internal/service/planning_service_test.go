package service

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlanCellsSumToGoal(t *testing.T) {
	db, cohortRepo, trajRepo := newTestRepos(t)
	asOf := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	seedLearner(t, db, model.Learner{ID: 1, Engagement: 0.5, GoalHoursPerWeek: 4, Affinities: map[string]float64{}})
	seedTrajectory(t, db, 1, "Algebra", 1, 30, 0.3, asOf)
	seedTrajectory(t, db, 1, "Calculus", 2, 25, 0.7, asOf)

	svc := NewPlanningService(cohortRepo, trajRepo, testEngineConfig())
	for _, priority := range []model.PriorityPolicy{model.PriorityWeak, model.PriorityStrong, model.PriorityBalanced} {
		for _, goal := range []float64{2, 4, 10} {
			plan, err := svc.BuildPlan(1, priority, goal, asOf)
			require.NoError(t, err)
			assert.InEpsilon(t, goal, plan.TotalHours(), 1e-6, "priority=%s goal=%v", priority, goal)
			assert.Len(t, plan.Cells, 2*len(model.PlanDays))
		}
	}
}

func TestBuildPlanWeakFavorsLowScoreDomain(t *testing.T) {
	db, cohortRepo, trajRepo := newTestRepos(t)
	asOf := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	seedLearner(t, db, model.Learner{ID: 1, Engagement: 0.5, Affinities: map[string]float64{}})
	seedTrajectory(t, db, 1, "Algebra", 1, 30, 0.1, asOf)
	seedTrajectory(t, db, 1, "Calculus", 1, 30, 0.9, asOf)

	svc := NewPlanningService(cohortRepo, trajRepo, testEngineConfig())

	plan, err := svc.BuildPlan(1, model.PriorityWeak, 5, asOf)
	require.NoError(t, err)
	assert.Greater(t, hoursFor(plan, "Algebra"), hoursFor(plan, "Calculus"))

	plan, err = svc.BuildPlan(1, model.PriorityStrong, 5, asOf)
	require.NoError(t, err)
	assert.Greater(t, hoursFor(plan, "Calculus"), hoursFor(plan, "Algebra"))
}

func TestBuildPlanBalancedSplitsEvenly(t *testing.T) {
	db, cohortRepo, trajRepo := newTestRepos(t)
	asOf := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	cfg := testEngineConfig()

	seedLearner(t, db, model.Learner{ID: 1, Engagement: 0.5, Affinities: map[string]float64{}})
	for _, d := range cfg.Domains {
		seedTrajectory(t, db, 1, d, 1, 20, 0.6, asOf)
	}

	svc := NewPlanningService(cohortRepo, trajRepo, cfg)
	plan, err := svc.BuildPlan(1, model.PriorityBalanced, 7, asOf)
	require.NoError(t, err)

	require.Len(t, plan.DomainHours, len(cfg.Domains))
	for _, dh := range plan.DomainHours {
		assert.InDelta(t, 7.0/float64(len(cfg.Domains)), dh.Hours, 1e-9)
	}
}

func TestBuildPlanWithoutRecentActivitySplitsAcrossAllDomains(t *testing.T) {
	db, cohortRepo, trajRepo := newTestRepos(t)
	asOf := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	cfg := testEngineConfig()

	seedLearner(t, db, model.Learner{ID: 1, Engagement: 0.5, Affinities: map[string]float64{}})
	// 回看窗口外的记录不计入
	seedTrajectory(t, db, 1, "Algebra", cfg.LookbackDays+5, 30, 0.2, asOf)

	svc := NewPlanningService(cohortRepo, trajRepo, cfg)
	plan, err := svc.BuildPlan(1, model.PriorityWeak, 5, asOf)
	require.NoError(t, err)

	require.Len(t, plan.DomainHours, len(cfg.Domains))
	for _, dh := range plan.DomainHours {
		assert.InDelta(t, 5.0/float64(len(cfg.Domains)), dh.Hours, 1e-9)
	}
}

func TestBuildPlanDefaultsGoalToLearnerProfile(t *testing.T) {
	db, cohortRepo, trajRepo := newTestRepos(t)
	asOf := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	seedLearner(t, db, model.Learner{ID: 1, Engagement: 0.5, GoalHoursPerWeek: 6.5, Affinities: map[string]float64{}})

	svc := NewPlanningService(cohortRepo, trajRepo, testEngineConfig())
	plan, err := svc.BuildPlan(1, model.PriorityBalanced, 0, asOf)
	require.NoError(t, err)
	assert.InEpsilon(t, 6.5, plan.TotalHours(), 1e-6)
	assert.InDelta(t, 6.5, plan.GoalHours, 1e-9)
}

func TestBuildPlanErrors(t *testing.T) {
	db, cohortRepo, trajRepo := newTestRepos(t)
	asOf := time.Now()

	svc := NewPlanningService(cohortRepo, trajRepo, testEngineConfig())
	_, err := svc.BuildPlan(99, model.PriorityBalanced, 4, asOf)
	assert.ErrorIs(t, err, util.ErrLearnerNotFound)

	seedLearner(t, db, model.Learner{ID: 1, Affinities: map[string]float64{}})
	cfg := testEngineConfig()
	cfg.Domains = nil
	svc = NewPlanningService(cohortRepo, trajRepo, cfg)
	_, err = svc.BuildPlan(1, model.PriorityBalanced, 4, asOf)
	assert.ErrorIs(t, err, util.ErrEmptyDomainSet)
}

func hoursFor(plan *model.WeeklyPlan, domain string) float64 {
	var sum float64
	for _, c := range plan.Cells {
		if c.Domain == domain {
			sum += c.Hours
		}
	}
	return sum
}
