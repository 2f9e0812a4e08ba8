package planner

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/adaptivecat/planner/pkg/candidates"
	"github.com/adaptivecat/planner/pkg/store"
)

// recentAccuracyWindowDays is the window fed to DetermineLearningStage's
// accuracy input, per the supplemented learning-stage heuristic.
const recentAccuracyWindowDays = 14

// CandidateProvider is what the planner needs from C8.
type CandidateProvider interface {
	BuildPool(ctx context.Context, studentID string, sessSeq int, priorSessionCount int) (candidates.Pool, error)
}

// MasteryTracker is what the planner needs from C6.
type MasteryTracker interface {
	Readiness(ctx context.Context, studentID, subcategory string) (readiness string, pct float64, err error)
	RecentAccuracy(ctx context.Context, studentID, subcategory string, days int) (float64, int, error)
}

// TaxonomyRegistry is the subset of pkg/taxonomy.Registry the planner
// needs. The planner depends only on this narrow interface so it never
// imports pkg/mastery's concrete Readiness type — MasteryTracker above
// already returns readiness as a plain string for the same reason.
type TaxonomyRegistry interface {
	Categories() []string
	CategoryOf(subcategory string) string
}

// MasteryStore is the subset of pkg/store the planner needs directly
// (mastery rows, for category-average aggregation).
type MasteryStore interface {
	AllMasteryForStudent(ctx context.Context, studentID string) ([]store.MasteryRow, error)
}

// Planner is C7: it assembles a candidate pool, derives phase and
// quotas, and selects a 12-question pack.
type Planner struct {
	candidates CandidateProvider
	mastery    MasteryTracker
	masteryDB  MasteryStore
	taxonomy   TaxonomyRegistry
	tuning     Tuning
	rng        func(seed string) *rand.Rand
}

// Option configures a Planner at construction time.
type Option func(*Planner)

// WithTuning overrides DefaultTuning (MAX_PER_SUBCATEGORY_*,
// PHASE_A_CUTOFF, PHASE_B_CUTOFF).
func WithTuning(t Tuning) Option {
	return func(p *Planner) { p.tuning = t }
}

// New builds a Planner wiring C8's candidate provider, C6's mastery
// tracker, and the taxonomy registry for category aggregation.
func New(cp CandidateProvider, mt MasteryTracker, ms MasteryStore, tax TaxonomyRegistry, opts ...Option) *Planner {
	p := &Planner{
		candidates: cp,
		mastery:    mt,
		masteryDB:  ms,
		taxonomy:   tax,
		tuning:     DefaultTuning(),
		rng:        seededRand,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func seededRand(seed string) *rand.Rand {
	return rand.New(rand.NewSource(int64(fnvHashSeed(seed))))
}

// Plan produces the next session pack for studentID, per spec.md §4.7.
// If any sub-step fails or the pool cannot be made feasible, Plan falls
// back to a seeded-random pack rather than returning an error to the
// caller, per the Fallback clause — the error return is reserved for
// conditions even the fallback cannot recover from (no active
// questions at all).
func (p *Planner) Plan(ctx context.Context, studentID string, sessSeq int, priorSessionCount int) (Pack, error) {
	pack, err := p.plan(ctx, studentID, sessSeq, priorSessionCount)
	if err != nil {
		return p.fallback(ctx, studentID, sessSeq, priorSessionCount, err)
	}
	return pack, nil
}

func (p *Planner) plan(ctx context.Context, studentID string, sessSeq int, priorSessionCount int) (Pack, error) {
	pool, err := p.candidates.BuildPool(ctx, studentID, sessSeq, priorSessionCount)
	if err != nil {
		return Pack{}, fmt.Errorf("planner: build pool: %w", err)
	}
	if len(pool.Candidates) == 0 {
		return Pack{}, fmt.Errorf("planner: empty candidate pool for %s", studentID)
	}

	phase := p.tuning.phase(priorSessionCount)

	averages, rows, err := p.categoryAverages(ctx, studentID)
	if err != nil {
		return Pack{}, fmt.Errorf("planner: category averages: %w", err)
	}
	quotas := CategoryQuotas(phase, averages)

	weaknessOf := p.weaknessFunc(ctx, studentID)

	result := selectPack(pool.Candidates, phase, quotas, weaknessOf, p.tuning.capLadder())

	stage := p.learningStage(ctx, studentID, rows)

	sessionType := "standard"
	if pool.ColdStart {
		sessionType = "cold_start"
	}

	telemetry := Telemetry{
		Phase:                   phase,
		TargetMix:               TargetMix(phase),
		ActualMix:               result.actualMix,
		CategoryDistribution:    result.categoryDist,
		SubcategoryDistribution: result.subcategoryDist,
		TypeDistribution:        result.typeDist,
		CoverageNewCount:        result.coverageNew,
		CoverageSeenCount:       result.coverageSeen,
		BackfillNotes:           result.backfillNotes,
		CooldownsApplied:        pool.CooldownsApplied,
		LLMAssessmentRespected:  result.llmAssessmentRespected,
		PoolRung:                pool.Rung,
		PoolFeasible:            pool.Feasible,
		SessionType:             sessionType,
		LearningStage:           string(stage),
		DiversityCapUsed:        result.diversityCapUsed,
	}

	if len(result.ids) < PackSize {
		return Pack{}, fmt.Errorf("planner: selection produced %d of %d questions", len(result.ids), PackSize)
	}

	return Pack{QuestionIDs: result.ids, Telemetry: telemetry}, nil
}

// fallback returns a deterministic seeded-random 12-question pack when
// the primary selection path fails for any reason, per spec.md §4.7's
// Fallback clause. It calls BuildPool once more with the same arguments
// and draws from whatever pool that returns; if that call fails or
// yields no candidates, it gives up with an error.
func (p *Planner) fallback(ctx context.Context, studentID string, sessSeq int, priorSessionCount int, cause error) (Pack, error) {
	pool, err := p.candidates.BuildPool(ctx, studentID, sessSeq, priorSessionCount)
	if err != nil || len(pool.Candidates) == 0 {
		return Pack{}, fmt.Errorf("planner: fallback pool unavailable after %v: %w", cause, err)
	}

	shuffled := append([]candidates.Candidate(nil), pool.Candidates...)
	r := p.rng(candidates.Seed(studentID, sessSeq))
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	n := PackSize
	if n > len(shuffled) {
		n = len(shuffled)
	}
	chosen := shuffled[:n]

	ids := make([]string, 0, n)
	categoryDist := map[string]int{}
	subcategoryDist := map[string]int{}
	typeDist := map[string]int{}
	mix := DifficultyMix{}
	for _, c := range chosen {
		ids = append(ids, c.Question.ID)
		categoryDist[c.Question.Category]++
		subcategoryDist[c.Question.Subcategory]++
		typeDist[c.Question.Subcategory+"::"+c.Question.TypeOfQuestion]++
		switch c.Question.DifficultyBand {
		case store.Easy:
			mix.Easy++
		case store.Medium:
			mix.Medium++
		case store.Hard:
			mix.Hard++
		}
	}

	return Pack{
		QuestionIDs: ids,
		Telemetry: Telemetry{
			Phase:                   p.tuning.phase(priorSessionCount),
			ActualMix:               mix,
			CategoryDistribution:    categoryDist,
			SubcategoryDistribution: subcategoryDist,
			TypeDistribution:        typeDist,
			PoolRung:                pool.Rung,
			PoolFeasible:            pool.Feasible,
			SessionType:             "simple_random",
			BackfillNotes:           []string{fmt.Sprintf("fallback triggered: %v", cause)},
		},
	}, nil
}

// categoryAverages aggregates a student's per-subcategory mastery rows
// into per-category averages, using the taxonomy registry to map each
// subcategory to its owning category. Subcategory-level rows (type_of_
// question == "") are used; per-type rows are skipped to avoid
// double-counting a subcategory multiple times in one average. The raw
// rows are returned alongside the averages so learningStage can reuse
// them without a second store round-trip.
func (p *Planner) categoryAverages(ctx context.Context, studentID string) ([]CategoryMastery, []store.MasteryRow, error) {
	rows, err := p.masteryDB.AllMasteryForStudent(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}

	sums := map[string]float64{}
	counts := map[string]int{}
	for _, row := range rows {
		if row.TypeOfQuestion != "" {
			continue
		}
		cat := p.taxonomy.CategoryOf(row.Subcategory)
		if cat == "" {
			continue
		}
		sums[cat] += row.MasteryPct
		counts[cat]++
	}

	var averages []CategoryMastery
	for _, cat := range p.taxonomy.Categories() {
		if counts[cat] == 0 {
			continue
		}
		averages = append(averages, CategoryMastery{Category: cat, Average: sums[cat] / float64(counts[cat])})
	}
	sort.Slice(averages, func(i, j int) bool { return averages[i].Category < averages[j].Category })
	return averages, rows, nil
}

// weaknessFunc builds a WeaknessFunc backed by C6's readiness
// classification, defaulting to Moderate for a subcategory with no
// readiness data yet (cold start).
func (p *Planner) weaknessFunc(ctx context.Context, studentID string) WeaknessFunc {
	cache := map[string]WeaknessPriority{}
	return func(subcategory string) WeaknessPriority {
		if wp, ok := cache[subcategory]; ok {
			return wp
		}
		readiness, _, err := p.mastery.Readiness(ctx, studentID, subcategory)
		wp := Moderate
		if err == nil {
			wp = WeaknessPriorityFor(readiness)
		}
		cache[subcategory] = wp
		return wp
	}
}

// learningStage computes the supplemented learning-stage telemetry
// field: recent accuracy over the last recentAccuracyWindowDays days,
// attempt-weighted across the student's tracked subcategories, plus
// the count of weak subcategories (mastery below the needs-focus
// threshold).
func (p *Planner) learningStage(ctx context.Context, studentID string, rows []store.MasteryRow) LearningStage {
	if len(rows) == 0 {
		return StageBeginner
	}

	weak := 0
	var weightedCorrect float64
	attempts := 0
	for _, row := range rows {
		if row.TypeOfQuestion != "" {
			continue
		}
		if row.MasteryPct < 0.60 {
			weak++
		}
		acc, n, err := p.mastery.RecentAccuracy(ctx, studentID, row.Subcategory, recentAccuracyWindowDays)
		if err != nil || n == 0 {
			continue
		}
		weightedCorrect += acc * float64(n)
		attempts += n
	}
	if attempts == 0 {
		return StageBeginner
	}
	accuracyPct := weightedCorrect / float64(attempts) * 100
	return DetermineLearningStage(accuracyPct, weak)
}

// fnvHashSeed gives the fallback path a deterministic numeric seed
// derived the same way C8 derives its rank keys, so repeated fallback
// calls for the same (student, session) are reproducible.
func fnvHashSeed(seed string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(seed); i++ {
		h ^= uint64(seed[i])
		h *= 1099511628211
	}
	return h
}
