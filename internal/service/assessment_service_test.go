package service

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/util"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssessmentFixture(t *testing.T) *AssessmentService {
	t.Helper()
	db, cohortRepo, trajRepo := newTestRepos(t)
	cfg := testEngineConfig()
	cfg.Domains = []string{"Algebra", "Calculus"}

	seedLearner(t, db, model.Learner{ID: 1, Ability: 0, Affinities: map[string]float64{}})
	seedItem(t, db, model.Item{ID: 1, Domain: "Algebra", Discrimination: 1.0, Difficulty: 0.2, ExpectedMinutes: 8})
	seedItem(t, db, model.Item{ID: 2, Domain: "Algebra", Discrimination: 1.0, Difficulty: -0.5, ExpectedMinutes: 8})
	seedItem(t, db, model.Item{ID: 3, Domain: "Calculus", Discrimination: 1.0, Difficulty: 0.1, ExpectedMinutes: 8})

	rec := NewRecommendationService(cohortRepo, trajRepo, cfg)
	return NewAssessmentService(rec)
}

func TestGenerateFiltersByDomainAndNumbersPrompts(t *testing.T) {
	svc := newAssessmentFixture(t)

	questions, err := svc.Generate(1, "Algebra", 5)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	for i, q := range questions {
		assert.Equal(t, i, q.Index)
		assert.Equal(t, "Algebra", q.Domain)
		expected := fmt.Sprintf("Q%d: Practice item %d (%s) – expected difficulty b=%.2f",
			i+1, q.ItemID, q.Domain, q.Difficulty)
		assert.Equal(t, expected, q.Prompt)
	}
}

func TestGenerateClampsQuestionCount(t *testing.T) {
	svc := newAssessmentFixture(t)

	// n<1 回落到默认3，但该领域只有2道题
	questions, err := svc.Generate(1, "Algebra", 0)
	require.NoError(t, err)
	assert.Len(t, questions, 2)

	questions, err = svc.Generate(1, "Algebra", 1)
	require.NoError(t, err)
	assert.Len(t, questions, 1)

	questions, err = svc.Generate(1, "Algebra", 50)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestGenerateUnknownLearner(t *testing.T) {
	svc := newAssessmentFixture(t)
	_, err := svc.Generate(42, "Algebra", 3)
	assert.ErrorIs(t, err, util.ErrLearnerNotFound)
}

func TestScoreSkipsUnanswered(t *testing.T) {
	svc := newAssessmentFixture(t)

	one, zero := 1, 0
	result := svc.Score([]*int{&one, nil, &zero, &one})
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 3, result.Answered)
	assert.InDelta(t, 2.0/3.0, result.Accuracy, 1e-9)
}

func TestScoreAllUnansweredIsNotAnError(t *testing.T) {
	svc := newAssessmentFixture(t)

	result := svc.Score([]*int{nil, nil, nil})
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 0, result.Answered)
	assert.Zero(t, result.Accuracy)
}
