// Package mastery implements C6, the EWMA-based mastery tracker. It
// reads and writes through pkg/store and exposes no state of its own;
// every call recomputes a student's mastery row from its previous value
// plus one new observation.
package mastery

import (
	"math"

	"github.com/adaptivecat/planner/pkg/store"
)

// Alpha is the EWMA smoothing factor applied to both accuracy and
// efficiency updates, per spec.md §4.6.
const Alpha = 0.6

// TimeDecayDaily is the daily multiplicative decay applied to accuracy
// and efficiency by the nightly decay job, per spec.md §4.6.
const TimeDecayDaily = 0.95

// ExposureFullWeightAt is the attempt count at which the exposure
// factor reaches 1.0.
const ExposureFullWeightAt = 10.0

// targetTimeSeconds holds the expected time-to-solve per band, used by
// the efficiency component.
var targetTimeSeconds = map[store.DifficultyBand]float64{
	store.Easy:   90,
	store.Medium: 150,
	store.Hard:   210,
}

// Readiness is the coarse mastery band the planner consumes in Phase C.
type Readiness string

// Readiness bands, per spec.md §4.6.
const (
	Mastered   Readiness = "Mastered"
	OnTrack    Readiness = "On-track"
	NeedsFocus Readiness = "Needs-focus"
)

// ClassifyReadiness maps an overall mastery percentage to its band.
func ClassifyReadiness(masteryPct float64) Readiness {
	switch {
	case masteryPct >= 0.85:
		return Mastered
	case masteryPct >= 0.60:
		return OnTrack
	default:
		return NeedsFocus
	}
}

// efficiencyPoint scores a single attempt's response time against its
// band's target time: 1.0 at or under target, exponential decay past
// it, per spec.md §4.6.
func efficiencyPoint(band store.DifficultyBand, timeTakenSeconds int) float64 {
	target, ok := targetTimeSeconds[band]
	if !ok {
		target = 150
	}
	actual := float64(timeTakenSeconds)
	if actual <= 0 {
		return 0.5
	}
	if actual <= target {
		return 1.0
	}
	efficiency := math.Exp(-0.5 * (actual - target) / target)
	return math.Max(0.0, math.Min(1.0, efficiency))
}

// ewma applies the standard alpha-smoothed update.
func ewma(oldValue, point, alpha float64) float64 {
	return alpha*point + (1-alpha)*oldValue
}

// accuracyFor returns the accuracy field matching band.
func accuracyFor(row store.MasteryRow, band store.DifficultyBand) float64 {
	switch band {
	case store.Easy:
		return row.AccuracyEasy
	case store.Medium:
		return row.AccuracyMedium
	case store.Hard:
		return row.AccuracyHard
	default:
		return 0
	}
}

func setAccuracyFor(row *store.MasteryRow, band store.DifficultyBand, value float64) {
	value = math.Max(0.0, math.Min(1.0, value))
	switch band {
	case store.Easy:
		row.AccuracyEasy = value
	case store.Medium:
		row.AccuracyMedium = value
	case store.Hard:
		row.AccuracyHard = value
	}
}

// overallMastery computes the weighted-accuracy-plus-efficiency-bonus
// formula of spec.md §4.6, scaled by the exposure factor.
func overallMastery(row store.MasteryRow) float64 {
	weighted := 0.2*row.AccuracyEasy + 0.4*row.AccuracyMedium + 0.4*row.AccuracyHard
	efficiencyBonus := math.Min(0.1, row.EfficiencyScore*0.1)
	exposureFactor := math.Min(1.0, float64(row.ExposureCount)/ExposureFullWeightAt)
	pct := (weighted + efficiencyBonus) * exposureFactor
	return math.Max(0.0, math.Min(1.0, pct))
}

// applyAttempt folds one attempt into row and returns the updated row.
// row is passed by value; callers own persisting the result.
func applyAttempt(row store.MasteryRow, band store.DifficultyBand, correct bool, timeTakenSeconds int, alpha float64) store.MasteryRow {
	row.ExposureCount++

	point := 0.0
	if correct {
		point = 1.0
	}
	setAccuracyFor(&row, band, ewma(accuracyFor(row, band), point, alpha))

	row.EfficiencyScore = ewma(row.EfficiencyScore, efficiencyPoint(band, timeTakenSeconds), alpha)
	row.MasteryPct = overallMastery(row)
	return row
}

// applyDecay multiplies accuracy and efficiency by dailyDecay raised
// to daysSinceActivity and recomputes overall mastery, per spec.md §4.6.
// daysSinceActivity == 0 is a no-op, matching the original's same-day
// skip.
func applyDecay(row store.MasteryRow, daysSinceActivity int, dailyDecay float64) store.MasteryRow {
	if daysSinceActivity <= 0 {
		return row
	}
	decay := math.Pow(dailyDecay, float64(daysSinceActivity))
	row.AccuracyEasy *= decay
	row.AccuracyMedium *= decay
	row.AccuracyHard *= decay
	row.EfficiencyScore *= decay
	row.MasteryPct = overallMastery(row)
	return row
}
