package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaultsFillsMissingValues(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.EqualValues(t, 42, cfg.Engine.Seed)
	assert.Equal(t, 90, cfg.Engine.Students)
	assert.Equal(t, 120, cfg.Engine.Items)
	assert.Equal(t, 30, cfg.Engine.HorizonDays)
	assert.Equal(t, 7, cfg.Engine.LookbackDays)
	assert.Equal(t, DefaultDomains, cfg.Engine.Domains)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(t, 30, cfg.Mentor.LogCapacity)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{}
	cfg.Engine.Seed = 7
	cfg.Engine.Students = 10
	cfg.Engine.Domains = []string{"Algebra"}
	ApplyDefaults(&cfg)

	assert.EqualValues(t, 7, cfg.Engine.Seed)
	assert.Equal(t, 10, cfg.Engine.Students)
	assert.Equal(t, []string{"Algebra"}, cfg.Engine.Domains)
}
