package enrichment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptivecat/planner/pkg/llmgateway"
	"github.com/adaptivecat/planner/pkg/quality"
	"github.com/adaptivecat/planner/pkg/store"
	"github.com/adaptivecat/planner/pkg/taxonomy"
)

type fakeStore struct {
	questions map[string]store.Question
	saved     []store.Question
	pool      []store.PYQQuestion
}

func (f *fakeStore) GetQuestion(ctx context.Context, id string) (store.Question, error) {
	return f.questions[id], nil
}

func (f *fakeStore) UpsertQuestion(ctx context.Context, rec store.Question) error {
	f.saved = append(f.saved, rec)
	f.questions[rec.ID] = rec
	return nil
}

func (f *fakeStore) QualifyingPYQPool(ctx context.Context, category, subcategory string) ([]store.PYQQuestion, error) {
	return f.pool, nil
}

type fakeVerifier struct {
	result quality.Result
}

func (f *fakeVerifier) Verify(ctx context.Context, q store.Question) quality.Result {
	return f.result
}

// scriptedProvider returns a canned response keyed by a substring of
// the system prompt, letting one fake Provider stand in for every
// stage's LLM call in one test.
type scriptedProvider struct {
	responses map[string]string
}

func (s *scriptedProvider) Name() string { return "scripted" }

func (s *scriptedProvider) Complete(ctx context.Context, req llmgateway.Request) (llmgateway.Response, error) {
	for marker, text := range s.responses {
		if strings.Contains(req.System, marker) {
			return llmgateway.Response{Text: text, Model: "scripted"}, nil
		}
	}
	return llmgateway.Response{}, assertNever("no scripted response matched request")
}

type scriptErr string

func (e scriptErr) Error() string { return string(e) }

func assertNever(msg string) error { return scriptErr(msg) }

func TestPipeline_Enrich_ActivatesOnFullPass(t *testing.T) {
	q := store.Question{ID: "q1", Stem: "A train travels at constant speed...", AdminAnswer: "30 km/h"}
	fs := &fakeStore{questions: map[string]store.Question{"q1": q}}
	reg := taxonomy.New()

	provider := &scriptedProvider{responses: map[string]string{
		"analyzing a quantitative-aptitude": `{"right_answer":"30 km/h","category":"Arithmetic","subcategory":"Time-Speed-Distance","type_of_question":"Basics","difficulty_band":"Medium","difficulty_score":2.5,"core_concepts":["speed","distance","time"],"solution_method":"divide distance by time","concept_difficulty":{"prerequisites":["arithmetic"],"cognitive_barriers":["units"],"mastery_indicators":["correct unit"]},"operations_required":["division"],"problem_structure":"direct_computation","concept_keywords":["speed","distance"]}`,
	}}
	gw := llmgateway.New(provider, provider)

	matcher := stubMatcherAlwaysValid{}
	verifier := &fakeVerifier{result: quality.Result{Passed: true}}

	p := New(fs, gw, reg, matcher, verifier)
	outcome, err := p.Enrich(context.Background(), "q1")
	require.NoError(t, err)
	assert.True(t, outcome.Activated)
	assert.Equal(t, store.ExtractionCompleted, fs.questions["q1"].ConceptExtractionStatus)
	assert.True(t, fs.questions["q1"].IsActive)
}

type stubMatcherAlwaysValid struct{}

func (stubMatcherAlwaysValid) SemanticMatch(ctx context.Context, stem, freeCategory, freeSubcategory, freeType string) (taxonomy.Triple, error) {
	return taxonomy.Triple{Category: freeCategory, Subcategory: freeSubcategory, TypeOfQuestion: freeType}, nil
}

func TestPipeline_Enrich_PersistsPartialOnAnalysisFailure(t *testing.T) {
	q := store.Question{ID: "q2", Stem: "broken question"}
	fs := &fakeStore{questions: map[string]store.Question{"q2": q}}
	reg := taxonomy.New()

	// Provider returns unparseable text for every call. The retry
	// ladder is emptied so the exhaustion path resolves immediately.
	provider := &scriptedProvider{responses: map[string]string{}}
	gw := llmgateway.New(provider, provider, llmgateway.WithRetryDelays(nil))
	verifier := &fakeVerifier{result: quality.Result{Passed: true}}

	p := New(fs, gw, reg, stubMatcherAlwaysValid{}, verifier)
	outcome, err := p.Enrich(context.Background(), "q2")
	require.Error(t, err)
	assert.False(t, outcome.Activated)
	assert.Equal(t, "analysis", outcome.FailedStage)
	assert.False(t, fs.questions["q2"].IsActive)
}
