package taxonomy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPath(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		category string
		sub      string
		typ      string
		valid    bool
	}{
		{"valid triple", "Arithmetic", "Time-Speed-Distance", "Trains", true},
		{"wrong category for subcategory", "Algebra", "Time-Speed-Distance", "Trains", false},
		{"unknown subcategory", "Arithmetic", "Not A Subcategory", "Trains", false},
		{"unknown type", "Arithmetic", "Time-Speed-Distance", "Not A Type", false},
		{"modern math triple", "Modern Math", "Probability", "Bayes' Theorem", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, r.ValidPath(tt.category, tt.sub, tt.typ))
		})
	}
}

func TestLookupCategoryBy(t *testing.T) {
	r := New()

	cat := r.LookupCategoryBy("Percentages", "Basics")
	assert.Equal(t, "Arithmetic", cat)

	cat = r.LookupCategoryBy("Triangles", "Congruence & Similarity")
	assert.Equal(t, "Geometry and Mensuration", cat)

	assert.Empty(t, r.LookupCategoryBy("Not A Subcategory", "Basics"))
	assert.Empty(t, r.LookupCategoryBy("Percentages", "Not A Type"))
}

func TestNormalizeCaseMismatch(t *testing.T) {
	r := New()

	triple := r.Normalize("arithmetic", "percentages", "basics")
	assert.Equal(t, Triple{Category: "Arithmetic", Subcategory: "Percentages", TypeOfQuestion: "Basics"}, triple)

	triple = r.Normalize("arithmetic", "not a subcategory", "basics")
	assert.Empty(t, triple.Subcategory)
}

type stubMatcher struct {
	result Triple
	err    error
}

func (s stubMatcher) SemanticMatch(ctx context.Context, stem, freeCategory, freeSubcategory, freeType string) (Triple, error) {
	return s.result, s.err
}

func TestResolveAcceptsFullSemanticMatch(t *testing.T) {
	r := New()
	m := stubMatcher{result: Triple{Category: "Arithmetic", Subcategory: "Percentages", TypeOfQuestion: "Basics"}}

	got, err := r.Resolve(context.Background(), m, "stem", "arith", "pct", "basic")
	require.NoError(t, err)
	assert.Equal(t, m.result, got)
}

func TestResolveFallsBackToIndependentMatchAndReverseLookup(t *testing.T) {
	r := New()
	// Matcher returns an invalid/partial triple (bad category, correct sub/type).
	m := stubMatcher{result: Triple{Category: "Wrong Category", Subcategory: "percentages", TypeOfQuestion: "basics"}}

	got, err := r.Resolve(context.Background(), m, "stem", "wrong", "pct", "basic")
	require.NoError(t, err)
	assert.Equal(t, Triple{Category: "Arithmetic", Subcategory: "Percentages", TypeOfQuestion: "Basics"}, got)
}

func TestResolveUnresolvedWhenNoMatchPossible(t *testing.T) {
	r := New()
	m := stubMatcher{result: Triple{}}

	_, err := r.Resolve(context.Background(), m, "stem", "gibberish", "gibberish", "gibberish")
	assert.ErrorIs(t, err, ErrUnresolved)
}

func TestResolveWithoutMatcherUsesReverseLookupOnly(t *testing.T) {
	r := New()

	got, err := r.Resolve(context.Background(), nil, "stem", "", "Time-Speed-Distance", "Trains")
	require.NoError(t, err)
	assert.Equal(t, Triple{Category: "Arithmetic", Subcategory: "Time-Speed-Distance", TypeOfQuestion: "Trains"}, got)
}
