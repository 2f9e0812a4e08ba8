package planner

// LearningStage is a documented, logging-only heuristic supplementing
// C7's phase-driven quotas (spec.md §4.7). It never overrides the
// phase-derived difficulty mix or category quotas — it exists only to
// populate Telemetry.LearningStage for downstream analysis, per
// SPEC_FULL.md §5.
type LearningStage string

// Learning stages, grounded on original_source's
// determine_learning_stage thresholds.
const (
	StageBeginner     LearningStage = "beginner"
	StageIntermediate LearningStage = "intermediate"
	StageAdvanced     LearningStage = "advanced"
)

// DetermineLearningStage classifies a student's overall standing from
// recent accuracy (0-100 scale) and its count of weak subcategories.
// Thresholds are carried unchanged from the source: accuracy < 40 or
// weakCount > 20 is beginner; accuracy < 70 or weakCount > 10 is
// intermediate; otherwise advanced.
func DetermineLearningStage(accuracyPct float64, weakCount int) LearningStage {
	switch {
	case accuracyPct < 40 || weakCount > 20:
		return StageBeginner
	case accuracyPct < 70 || weakCount > 10:
		return StageIntermediate
	default:
		return StageAdvanced
	}
}

// DifficultyPreferences returns the hinted difficulty distribution for
// a learning stage. This is telemetry-only context logged alongside the
// phase-driven target mix — it is never substituted for TargetMix.
func DifficultyPreferences(stage LearningStage) DifficultyMix {
	switch stage {
	case StageBeginner:
		return DifficultyMix{Easy: 6, Medium: 4, Hard: 2}
	case StageIntermediate:
		return DifficultyMix{Easy: 3, Medium: 6, Hard: 3}
	default:
		return DifficultyMix{Easy: 2, Medium: 4, Hard: 6}
	}
}
