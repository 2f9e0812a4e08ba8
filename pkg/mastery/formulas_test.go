package mastery

import (
	"testing"

	"github.com/adaptivecat/planner/pkg/store"
	"github.com/stretchr/testify/assert"
)

func TestClassifyReadiness(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want Readiness
	}{
		{"mastered floor", 0.85, Mastered},
		{"well mastered", 0.95, Mastered},
		{"on track floor", 0.60, OnTrack},
		{"on track ceiling", 0.84, OnTrack},
		{"needs focus", 0.59, NeedsFocus},
		{"zero", 0, NeedsFocus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyReadiness(tt.pct))
		})
	}
}

func TestEfficiencyPoint(t *testing.T) {
	tests := []struct {
		name    string
		band    store.DifficultyBand
		seconds int
		want    float64
		delta   float64
	}{
		{"at target", store.Easy, 90, 1.0, 1e-9},
		{"under target", store.Medium, 100, 1.0, 1e-9},
		{"no time recorded", store.Hard, 0, 0.5, 1e-9},
		{"over target decays", store.Easy, 180, 0.606531, 1e-4}, // exp(-0.5*1) at 2x target
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := efficiencyPoint(tt.band, tt.seconds)
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestApplyAttempt_EWMAUpdatesCorrectBand(t *testing.T) {
	row := store.MasteryRow{}
	row = applyAttempt(row, store.Medium, true, 100, Alpha)

	assert.Equal(t, 1, row.ExposureCount)
	assert.InDelta(t, 0.6, row.AccuracyMedium, 1e-9) // alpha*1 + (1-alpha)*0
	assert.Equal(t, 0.0, row.AccuracyEasy)
	assert.Equal(t, 0.0, row.AccuracyHard)

	row = applyAttempt(row, store.Medium, false, 100, Alpha)
	assert.Equal(t, 2, row.ExposureCount)
	assert.InDelta(t, 0.24, row.AccuracyMedium, 1e-9) // 0.6*0 + 0.4*0.6
}

func TestOverallMastery_ExposureFactorScales(t *testing.T) {
	row := store.MasteryRow{AccuracyMedium: 1.0, AccuracyHard: 1.0, ExposureCount: 5}
	got := overallMastery(row)
	assert.InDelta(t, 0.8*0.5, got, 1e-9) // weighted=0.8, exposure factor 0.5

	row.ExposureCount = 10
	got = overallMastery(row)
	assert.InDelta(t, 0.8, got, 1e-9)

	row.ExposureCount = 20 // clamped at 1.0
	got = overallMastery(row)
	assert.InDelta(t, 0.8, got, 1e-9)
}

func TestApplyDecay_NoOpOnSameDay(t *testing.T) {
	row := store.MasteryRow{AccuracyMedium: 0.8, MasteryPct: 0.5}
	decayed := applyDecay(row, 0, TimeDecayDaily)
	assert.Equal(t, row, decayed)
}

func TestApplyDecay_MultipliesByDaysPower(t *testing.T) {
	row := store.MasteryRow{AccuracyMedium: 1.0, ExposureCount: 10}
	decayed := applyDecay(row, 2, TimeDecayDaily)
	assert.InDelta(t, 0.9025, decayed.AccuracyMedium, 1e-9) // 0.95^2
}
