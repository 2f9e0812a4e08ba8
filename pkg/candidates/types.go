package candidates

import "github.com/adaptivecat/planner/pkg/store"

// Candidate wraps a store.Question with the per-candidate metadata the
// planner needs without mutating the question itself, per the Design
// Note on hidden ambient state (spec.md §9) — the source's
// _forced_difficulty/_quota_telemetry attributes on Question instances
// become this explicit wrapper instead.
type Candidate struct {
	Question    store.Question
	RankKey     uint64
	CoverageNew bool // true if this student has never seen this (subcategory, type)
}

// Pool is a feasibility-checked, deterministically-ordered candidate
// set for one planning call.
type Pool struct {
	Candidates       []Candidate
	Rung             int  // the K multiplier used: 1, 2, or 4
	Feasible         bool
	ColdStart        bool
	CooldownsApplied []string // which bands had a cooldown actually exclude candidates
}

// CooldownDays holds the difficulty-specific cooldown windows, loaded
// from cfg.Pool.Cooldown{Easy,Medium,Hard} (COOLDOWN_*_DAYS, spec.md
// §6), that C8 enforces when assembling a pool. Zero disables the
// cooldown for that band.
type CooldownDays struct {
	Easy   int
	Medium int
	Hard   int
}

func (c CooldownDays) forBand(band store.DifficultyBand) int {
	switch band {
	case store.Easy:
		return c.Easy
	case store.Medium:
		return c.Medium
	case store.Hard:
		return c.Hard
	default:
		return 0
	}
}

// Feasibility thresholds, per spec.md §4.8.
const (
	MinEasy           = 3
	MinMedium         = 6
	MinHard           = 3
	MinPYQAtOrAbove10 = 2
	MinPYQAtOrAbove15 = 2
)

// BaseK is the base pool size per band before ladder expansion.
const BaseK = 80

// Rungs is the ladder of pool-size multipliers applied to BaseK when a
// preflight fails, per spec.md §4.8.
var Rungs = []int{1, 2, 4}

// RecentSessionWindow is how many of a student's most recent sessions
// feed the recent-question exclusion set, per spec.md §4.8.
const RecentSessionWindow = 3
