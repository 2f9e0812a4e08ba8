// Package planner implements C7, the adaptive planner: given a
// candidate pool from pkg/candidates and a student's mastery state from
// pkg/mastery, it selects exactly 12 questions respecting phase,
// difficulty mix, category quotas, diversity caps, and cooldowns.
package planner

import "math"

// Phase is one of the three stages of a student's journey, per
// spec.md §4.7.
type Phase string

// Phases, by session count n.
const (
	PhaseA Phase = "A" // Coverage & Calibration, n < PhaseACutoff
	PhaseB Phase = "B" // Strengthen & Stretch, PhaseACutoff <= n < PhaseBCutoff
	PhaseC Phase = "C" // Fully Adaptive, n >= PhaseBCutoff
)

// Phase cutoffs, per spec.md §6.
const (
	PhaseACutoff = 30
	PhaseBCutoff = 60
)

// DeterminePhase maps a student's served-or-completed session count to
// its phase under the default cutoffs, per spec.md §4.7 and the
// boundary behavior pinned in §8: n=29 is A, n=30 is B, n=59 is B,
// n=60 is C.
func DeterminePhase(n int) Phase {
	return DefaultTuning().phase(n)
}

// DifficultyMix is a target or actual count of questions per band.
type DifficultyMix struct {
	Easy   int
	Medium int
	Hard   int
}

// Total sums the mix.
func (m DifficultyMix) Total() int { return m.Easy + m.Medium + m.Hard }

// targetMix holds the per-phase difficulty distribution target over a
// 12-question pack, per spec.md §4.7's percentages rounded to whole
// questions.
var targetMix = map[Phase]DifficultyMix{
	PhaseA: {Easy: 2, Medium: 9, Hard: 1},  // 20% / 75% / 5%
	PhaseB: {Easy: 2, Medium: 6, Hard: 4},  // 20% / 50% / 30%
	PhaseC: {Easy: 2, Medium: 7, Hard: 3},  // 15% / 55% / 30%
}

// TargetMix returns the difficulty distribution target for phase.
func TargetMix(phase Phase) DifficultyMix {
	return targetMix[phase]
}

// PackSize is the fixed number of questions per session, per spec.md §1.
const PackSize = 12

// BaselineCategoryQuota is the baseline per-category quota, summing to
// PackSize, per spec.md §4.7.
var BaselineCategoryQuota = map[string]int{
	"Arithmetic":               4,
	"Algebra":                  3,
	"Geometry and Mensuration": 3,
	"Number System":            1,
	"Modern Math":              1,
}

// Diversity cap levels, relaxed in this order as a last resort to meet
// the 12-question guarantee, per spec.md §4.7.
const (
	MaxPerSubcategoryStrict  = 3
	MaxPerSubcategoryRelaxed = 5
)

// Per-(subcategory, type) cap levels, relaxed in lock-step with the
// subcategory caps. The original pins no separate relaxation ladder for
// M_TYPE, so each level simply trails its subcategory counterpart.
const (
	MaxPerTypeStrict  = 2
	MaxPerTypeRelaxed = 4
)

// Tuning carries C7's configurable knobs, per spec.md §6
// (MAX_PER_SUBCATEGORY_STRICT|RELAXED|CEILING, PHASE_A_CUTOFF,
// PHASE_B_CUTOFF). The zero value is not usable; start from
// DefaultTuning and override.
type Tuning struct {
	MaxPerSubcategoryStrict  int
	MaxPerSubcategoryRelaxed int
	MaxPerSubcategoryCeiling int // 0 means unlimited
	MaxPerTypeStrict         int
	MaxPerTypeRelaxed        int
	PhaseACutoff             int
	PhaseBCutoff             int
}

// DefaultTuning returns the production defaults pinned by spec.md §6.
func DefaultTuning() Tuning {
	return Tuning{
		MaxPerSubcategoryStrict:  MaxPerSubcategoryStrict,
		MaxPerSubcategoryRelaxed: MaxPerSubcategoryRelaxed,
		MaxPerSubcategoryCeiling: 0,
		MaxPerTypeStrict:         MaxPerTypeStrict,
		MaxPerTypeRelaxed:        MaxPerTypeRelaxed,
		PhaseACutoff:             PhaseACutoff,
		PhaseBCutoff:             PhaseBCutoff,
	}
}

func (t Tuning) phase(n int) Phase {
	switch {
	case n < t.PhaseACutoff:
		return PhaseA
	case n < t.PhaseBCutoff:
		return PhaseB
	default:
		return PhaseC
	}
}

// capLevel is one rung of the diversity-cap relaxation ladder.
type capLevel struct {
	sub int
	typ int
}

// capLadder expands the tuning into the strict -> relaxed -> ceiling
// relaxation ladder of spec.md §4.7.
func (t Tuning) capLadder() []capLevel {
	ceiling := t.MaxPerSubcategoryCeiling
	if ceiling <= 0 {
		ceiling = math.MaxInt32
	}
	return []capLevel{
		{sub: t.MaxPerSubcategoryStrict, typ: t.MaxPerTypeStrict},
		{sub: t.MaxPerSubcategoryRelaxed, typ: t.MaxPerTypeRelaxed},
		{sub: ceiling, typ: math.MaxInt32},
	}
}

// WeaknessPriority orders tie-breaks among otherwise-equal candidates:
// 0 = weak, 1 = moderate, 2 = strong, per spec.md §4.7 step 4.
type WeaknessPriority int

const (
	Weak     WeaknessPriority = 0
	Moderate WeaknessPriority = 1
	Strong   WeaknessPriority = 2
)

// WeaknessPriorityFor classifies a subcategory's priority from its
// readiness band.
func WeaknessPriorityFor(readiness string) WeaknessPriority {
	switch readiness {
	case "Needs-focus":
		return Weak
	case "On-track":
		return Moderate
	default:
		return Strong
	}
}

// Telemetry is the constraint_report returned alongside every pack,
// per spec.md §4.7's Output clause and §6's API contract.
type Telemetry struct {
	Phase                   Phase             `json:"phase"`
	TargetMix               DifficultyMix     `json:"target_mix"`
	ActualMix               DifficultyMix     `json:"actual_mix"`
	CategoryDistribution    map[string]int    `json:"category_distribution"`
	SubcategoryDistribution map[string]int    `json:"subcategory_distribution"`
	TypeDistribution        map[string]int    `json:"type_distribution"`
	CoverageNewCount        int               `json:"coverage_new_count"`
	CoverageSeenCount       int               `json:"coverage_seen_count"`
	BackfillNotes           []string          `json:"backfill_notes,omitempty"`
	CooldownsApplied        []string          `json:"cooldowns_applied,omitempty"`
	LLMAssessmentRespected  bool              `json:"llm_assessment_respected"`
	PoolRung                int               `json:"pool_rung"`
	PoolFeasible            bool              `json:"pool_feasible"`
	SessionType             string            `json:"session_type"` // "standard", "cold_start" or "simple_random"
	LearningStage           string            `json:"learning_stage,omitempty"`
	DiversityCapUsed        int               `json:"diversity_cap_used"`
}

// Pack is the final planned session: 12 question IDs in presentation
// order plus the telemetry describing how they were chosen.
type Pack struct {
	QuestionIDs []string
	Telemetry   Telemetry
}
