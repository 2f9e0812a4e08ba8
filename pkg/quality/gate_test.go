package quality

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptivecat/planner/pkg/taxonomy"
)

type fakeMatcher struct {
	match bool
	err   error
}

func (f *fakeMatcher) AnswersMatch(ctx context.Context, stem, adminAnswer, rightAnswer string) (bool, error) {
	return f.match, f.err
}

func TestVerifier_Verify_Passes(t *testing.T) {
	v := New(taxonomy.New(), &fakeMatcher{match: true})
	q := validQuestion()
	q.IsActive = false
	q.QualityVerified = false

	result := v.Verify(context.Background(), q)
	require.True(t, result.Passed)
	assert.Empty(t, result.FailingCriteria)
}

func TestVerifier_Verify_FailsOnSemanticMismatch(t *testing.T) {
	v := New(taxonomy.New(), &fakeMatcher{match: false})
	q := validQuestion()

	result := v.Verify(context.Background(), q)
	assert.False(t, result.Passed)
	assert.Contains(t, result.FailingCriteria, "semantic_answer_match")
}

func TestVerifier_Verify_FailsOnIncompleteExtraction(t *testing.T) {
	v := New(taxonomy.New(), &fakeMatcher{match: true})
	q := validQuestion()
	q.ConceptExtractionStatus = "pending"

	result := v.Verify(context.Background(), q)
	assert.False(t, result.Passed)
	assert.Contains(t, result.FailingCriteria, "concept_extraction_status")
}

func TestVerifier_Verify_NilMatcherSkipsSemanticCheck(t *testing.T) {
	v := New(taxonomy.New(), nil)
	q := validQuestion()

	result := v.Verify(context.Background(), q)
	assert.True(t, result.Passed)
}
