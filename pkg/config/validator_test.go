package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAll_DefaultConfigPasses(t *testing.T) {
	err := NewValidator(DefaultConfig()).ValidateAll()
	require.NoError(t, err)
}

func TestValidateAll_RejectsEmptyPrimaryModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.PrimaryModel = ""
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.primary_model")
}

func TestValidateAll_RejectsNonIncreasingLadder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pool.Ladder = []int{80, 80, 320}
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool.ladder")
}

func TestValidateAll_RejectsRelaxedCapBelowStrict(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Planner.MaxPerSubcategoryRelaxed = 1
	cfg.Planner.MaxPerSubcategoryStrict = 3
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_per_subcategory_relaxed")
}

func TestValidateAll_RejectsPhaseBBelowPhaseA(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Planner.PhaseACutoff = 60
	cfg.Planner.PhaseBCutoff = 30
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phase_b_cutoff")
}
