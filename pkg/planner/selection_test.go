package planner

import (
	"fmt"
	"math"
	"testing"

	"github.com/adaptivecat/planner/pkg/candidates"
	"github.com/adaptivecat/planner/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moderateWeakness(string) WeaknessPriority { return Moderate }

func candidatesOf(n int, band store.DifficultyBand, subcategory string, distinctSubs bool) []candidates.Candidate {
	out := make([]candidates.Candidate, 0, n)
	for i := 0; i < n; i++ {
		sub := subcategory
		if distinctSubs {
			sub = fmt.Sprintf("%s-%d", subcategory, i)
		}
		out = append(out, candidates.Candidate{
			Question: store.Question{
				ID:             fmt.Sprintf("%s-%s-%d", sub, band, i),
				Category:       "Arithmetic",
				Subcategory:    sub,
				TypeOfQuestion: "General",
				DifficultyBand: band,
			},
			CoverageNew: false,
		})
	}
	return out
}

func TestSelectPack_PhaseA_NoEasyOrHard_RespectsAllMedium(t *testing.T) {
	pool := candidatesOf(12, store.Medium, "M", true)
	quotas := map[string]int{"Arithmetic": PackSize}

	result := selectPack(pool, PhaseA, quotas, moderateWeakness, DefaultTuning().capLadder())

	require.Len(t, result.ids, PackSize)
	assert.True(t, result.llmAssessmentRespected)
	assert.Equal(t, DifficultyMix{Easy: 0, Medium: PackSize, Hard: 0}, result.actualMix)
}

func TestSelectPack_DiversityCapRelaxesLadderWhenSupplyIsConcentrated(t *testing.T) {
	var pool []candidates.Candidate
	pool = append(pool, candidatesOf(4, store.Hard, "H", true)...)  // 4 distinct subcategories
	pool = append(pool, candidatesOf(2, store.Easy, "E", true)...) // 2 distinct subcategories
	pool = append(pool, candidatesOf(9, store.Medium, "M", false)...) // all one subcategory

	quotas := map[string]int{"Arithmetic": PackSize}

	result := selectPack(pool, PhaseB, quotas, moderateWeakness, DefaultTuning().capLadder())

	require.Len(t, result.ids, PackSize)
	assert.Equal(t, DifficultyMix{Easy: 2, Medium: 6, Hard: 4}, result.actualMix)
	assert.Equal(t, math.MaxInt32, result.diversityCapUsed)
	assert.Contains(t, result.backfillNotes, relaxationNote(MaxPerSubcategoryRelaxed))
	assert.Contains(t, result.backfillNotes, relaxationNote(math.MaxInt32))
}

func TestSortCandidates_WeakAreaFirstThenPYQThenType(t *testing.T) {
	high, low := 1.8, 0.2
	pool := []candidates.Candidate{
		{Question: store.Question{ID: "strong-high", Subcategory: "Divisibility", TypeOfQuestion: "Basics", PYQFrequencyScore: &high}},
		{Question: store.Question{ID: "weak-low", Subcategory: "Percentages", TypeOfQuestion: "Basics", PYQFrequencyScore: &low}},
		{Question: store.Question{ID: "weak-high", Subcategory: "Percentages", TypeOfQuestion: "Percentage Change", PYQFrequencyScore: &high}},
	}
	weaknessOf := func(sub string) WeaknessPriority {
		if sub == "Percentages" {
			return Weak
		}
		return Strong
	}

	sortCandidates(pool, weaknessOf)

	// Weak-area candidates order first; among them, higher PYQ frequency
	// wins before the type-token tiebreak.
	assert.Equal(t, "weak-high", pool[0].Question.ID)
	assert.Equal(t, "weak-low", pool[1].Question.ID)
	assert.Equal(t, "strong-high", pool[2].Question.ID)
}

func TestSelectPack_StrictCapHoldsWhenSupplyIsDiverseEnough(t *testing.T) {
	var pool []candidates.Candidate
	pool = append(pool, candidatesOf(4, store.Hard, "H", true)...)
	pool = append(pool, candidatesOf(2, store.Easy, "E", true)...)
	pool = append(pool, candidatesOf(6, store.Medium, "M", true)...) // 6 distinct subcategories, no cap pressure

	quotas := map[string]int{"Arithmetic": PackSize}

	result := selectPack(pool, PhaseB, quotas, moderateWeakness, DefaultTuning().capLadder())

	require.Len(t, result.ids, PackSize)
	assert.Equal(t, MaxPerSubcategoryStrict, result.diversityCapUsed)
	assert.Empty(t, result.backfillNotes)
}
