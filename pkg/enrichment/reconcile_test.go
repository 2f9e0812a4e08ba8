package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptivecat/planner/pkg/store"
)

func TestReconcileBandScore_InRangeUnchanged(t *testing.T) {
	band, score, err := reconcileBandScore(store.Medium, 2.8)
	require.Nil(t, err)
	assert.Equal(t, store.Medium, band)
	assert.Equal(t, 2.8, score)
}

func TestReconcileBandScore_OutOfRangeClampedToMidpoint(t *testing.T) {
	band, score, err := reconcileBandScore(store.Easy, 4.9)
	require.Nil(t, err)
	assert.Equal(t, store.Easy, band)
	assert.Equal(t, bandMidpoints[store.Easy], score)
}

func TestReconcileBandScore_MediumLowerBoundExclusive(t *testing.T) {
	// Medium is (2.0, 3.5] — a score of exactly 2.0 is out of range.
	band, score, err := reconcileBandScore(store.Medium, 2.0)
	require.Nil(t, err)
	assert.Equal(t, store.Medium, band)
	assert.Equal(t, bandMidpoints[store.Medium], score)
}

func TestReconcileBandScore_InvalidBandFails(t *testing.T) {
	_, _, err := reconcileBandScore(store.DifficultyBand("Extreme"), 3.0)
	require.NotNil(t, err)
	assert.Equal(t, KindBandInvalid, err.Kind)
}

func TestRunPYQScoring_LowDifficultySkipsCall(t *testing.T) {
	score, err := runPYQScoring(nil, nil, nil, store.Question{}, 1.5)
	require.Nil(t, err)
	assert.Equal(t, lowDifficultyPYQScore, score)
}

func TestRunPYQScoring_EmptyPoolDefaultsToHalf(t *testing.T) {
	score, err := runPYQScoring(nil, nil, nil, store.Question{}, 2.0)
	require.Nil(t, err)
	assert.Equal(t, emptyPoolPYQScore, score)
}
