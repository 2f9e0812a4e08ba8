package planner

import (
	"context"
	"fmt"
	"testing"

	"github.com/adaptivecat/planner/pkg/candidates"
	"github.com/adaptivecat/planner/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCandidateProvider struct {
	pool candidates.Pool
	err  error
}

func (f *fakeCandidateProvider) BuildPool(_ context.Context, _ string, _ int, _ int) (candidates.Pool, error) {
	return f.pool, f.err
}

type fakeMasteryTracker struct {
	readiness map[string]string
}

func (f *fakeMasteryTracker) Readiness(_ context.Context, _, subcategory string) (string, float64, error) {
	if r, ok := f.readiness[subcategory]; ok {
		return r, 0.5, nil
	}
	return "On-track", 0.5, nil
}

func (f *fakeMasteryTracker) RecentAccuracy(_ context.Context, _, _ string, _ int) (float64, int, error) {
	return 0, 0, nil
}

type fakeMasteryStore struct {
	rows []store.MasteryRow
}

func (f *fakeMasteryStore) AllMasteryForStudent(_ context.Context, _ string) ([]store.MasteryRow, error) {
	return f.rows, nil
}

type fakeTaxonomyRegistry struct {
	categories []string
	categoryOf map[string]string
}

func (f *fakeTaxonomyRegistry) Categories() []string { return f.categories }

func (f *fakeTaxonomyRegistry) CategoryOf(subcategory string) string { return f.categoryOf[subcategory] }

// abundantPool builds a pool with far more candidates than any category
// quota or band target could ever need, spanning every (category, band)
// pair across distinct subcategories so diversity caps never bind and
// category quotas are the only constraint in play.
func abundantPool(categories []string) candidates.Pool {
	var out []candidates.Candidate
	bands := []store.DifficultyBand{store.Easy, store.Medium, store.Hard}
	for _, cat := range categories {
		for _, band := range bands {
			for i := 0; i < 10; i++ {
				sub := fmt.Sprintf("%s-%s-%d", cat, band, i)
				out = append(out, candidates.Candidate{
					Question: store.Question{
						ID:             sub,
						Category:       cat,
						Subcategory:    sub,
						TypeOfQuestion: "General",
						DifficultyBand: band,
					},
				})
			}
		}
	}
	return candidates.Pool{Candidates: out, Rung: 1, Feasible: true}
}

func categoriesOf(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for cat := range m {
		out = append(out, cat)
	}
	return out
}

func TestPlan_PhaseB_TargetsTheConfiguredDifficultyMix(t *testing.T) {
	pool := abundantPool(categoriesOf(BaselineCategoryQuota))
	p := New(
		&fakeCandidateProvider{pool: pool},
		&fakeMasteryTracker{},
		&fakeMasteryStore{},
		&fakeTaxonomyRegistry{},
	)

	pack, err := p.Plan(context.Background(), "student-1", 31, 31) // n=31 -> Phase B
	require.NoError(t, err)

	require.Len(t, pack.QuestionIDs, PackSize)
	assert.Equal(t, PhaseB, pack.Telemetry.Phase)
	assert.Equal(t, TargetMix(PhaseB), pack.Telemetry.TargetMix)
	assert.Equal(t, TargetMix(PhaseB), pack.Telemetry.ActualMix)
	assert.Equal(t, BaselineCategoryQuota, pack.Telemetry.CategoryDistribution)
}

func TestPlan_PhaseC_ShiftsQuotaTowardWeakestCategory(t *testing.T) {
	pool := abundantPool(categoriesOf(BaselineCategoryQuota))
	masteryStore := &fakeMasteryStore{rows: []store.MasteryRow{
		{StudentID: "student-1", Subcategory: "Arithmetic-sub", MasteryPct: 0.95},
		{StudentID: "student-1", Subcategory: "Algebra-sub", MasteryPct: 0.50},
		{StudentID: "student-1", Subcategory: "Geometry-sub", MasteryPct: 0.55},
		{StudentID: "student-1", Subcategory: "NumberSystem-sub", MasteryPct: 0.60},
		{StudentID: "student-1", Subcategory: "ModernMath-sub", MasteryPct: 0.10},
	}}
	taxonomy := &fakeTaxonomyRegistry{
		categories: []string{"Arithmetic", "Algebra", "Geometry and Mensuration", "Number System", "Modern Math"},
		categoryOf: map[string]string{
			"Arithmetic-sub":    "Arithmetic",
			"Algebra-sub":       "Algebra",
			"Geometry-sub":      "Geometry and Mensuration",
			"NumberSystem-sub":  "Number System",
			"ModernMath-sub":    "Modern Math",
		},
	}

	p := New(
		&fakeCandidateProvider{pool: pool},
		&fakeMasteryTracker{},
		masteryStore,
		taxonomy,
	)

	pack, err := p.Plan(context.Background(), "student-1", 61, 61) // n=61 -> Phase C
	require.NoError(t, err)

	require.Len(t, pack.QuestionIDs, PackSize)
	assert.Equal(t, PhaseC, pack.Telemetry.Phase)
	assert.Equal(t, BaselineCategoryQuota["Arithmetic"]-1, pack.Telemetry.CategoryDistribution["Arithmetic"])
	assert.Equal(t, BaselineCategoryQuota["Modern Math"]+1, pack.Telemetry.CategoryDistribution["Modern Math"])
	assert.Equal(t, BaselineCategoryQuota["Algebra"], pack.Telemetry.CategoryDistribution["Algebra"])
}

func TestPlan_IsDeterministicForAFixedStudentSessionAndPool(t *testing.T) {
	pool := abundantPool(categoriesOf(BaselineCategoryQuota))
	newPlanner := func() *Planner {
		return New(
			&fakeCandidateProvider{pool: pool},
			&fakeMasteryTracker{readiness: map[string]string{"Arithmetic-Medium-0": "Needs-focus"}},
			&fakeMasteryStore{},
			&fakeTaxonomyRegistry{},
		)
	}

	first, err := newPlanner().Plan(context.Background(), "student-42", 7, 7)
	require.NoError(t, err)
	second, err := newPlanner().Plan(context.Background(), "student-42", 7, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlan_EmptyPoolErrorsEvenAfterFallback(t *testing.T) {
	p := New(
		&fakeCandidateProvider{pool: candidates.Pool{}},
		&fakeMasteryTracker{},
		&fakeMasteryStore{},
		&fakeTaxonomyRegistry{},
	)

	_, err := p.Plan(context.Background(), "student-1", 1, 1)
	require.Error(t, err, "an empty pool even after the fallback retry must surface an error")
}
