package enrichment

import (
	"github.com/adaptivecat/planner/pkg/store"
)

// bandMidpoints are the default scores substituted for an out-of-range
// difficulty_score, per spec.md §4.4 stage 3 ("out-of-range values are
// replaced by the band's default midpoint").
var bandMidpoints = map[store.DifficultyBand]float64{
	store.Easy:   1.5,
	store.Medium: 2.75,
	store.Hard:   4.25,
}

// bandRange returns [lo, hi] for band per the band/score alignment
// invariant of spec.md §3: Easy [1.0,2.0], Medium (2.0,3.5], Hard
// (3.5,5.0].
func bandRange(band store.DifficultyBand) (lo, hi float64, ok bool) {
	switch band {
	case store.Easy:
		return 1.0, 2.0, true
	case store.Medium:
		return 2.0, 3.5, true
	case store.Hard:
		return 3.5, 5.0, true
	default:
		return 0, 0, false
	}
}

// reconcileBandScore clamps/cross-checks difficulty_band and
// difficulty_score against the band/score alignment invariant, per
// spec.md §4.4 stage 3. An invalid band fails the stage outright; an
// out-of-range score within a valid band is replaced by that band's
// midpoint rather than failing.
func reconcileBandScore(band store.DifficultyBand, score float64) (store.DifficultyBand, float64, *StageError) {
	lo, hi, ok := bandRange(band)
	if !ok {
		return "", 0, &StageError{Stage: "band_reconciliation", Kind: KindBandInvalid, Detail: string(band) + " is not a valid difficulty band"}
	}

	// Easy's range check is inclusive on both ends; Medium/Hard are
	// half-open on the low end per spec.md §3.
	inRange := score >= lo && score <= hi
	if band == store.Medium || band == store.Hard {
		inRange = score > lo && score <= hi
	}
	if !inRange {
		return band, bandMidpoints[band], nil
	}
	return band, score, nil
}
