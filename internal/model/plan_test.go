package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriorityTolerantOfUnknownValues(t *testing.T) {
	assert.Equal(t, PriorityWeak, ParsePriority("weak"))
	assert.Equal(t, PriorityStrong, ParsePriority("strong"))
	assert.Equal(t, PriorityBalanced, ParsePriority("balanced"))
	assert.Equal(t, PriorityBalanced, ParsePriority(""))
	assert.Equal(t, PriorityBalanced, ParsePriority("aggressive"))
}

func TestTotalHoursSumsCells(t *testing.T) {
	plan := WeeklyPlan{Cells: []PlanCell{
		{Domain: "Algebra", Day: "Mon", Hours: 1.5},
		{Domain: "Algebra", Day: "Tue", Hours: 0.5},
		{Domain: "Calculus", Day: "Mon", Hours: 2.0},
	}}
	assert.InDelta(t, 4.0, plan.TotalHours(), 1e-12)
}
