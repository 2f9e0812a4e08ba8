package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptivecat/planner/pkg/store"
	"github.com/adaptivecat/planner/pkg/taxonomy"
)

func validQuestion() store.Question {
	return store.Question{
		ID:                  "q1",
		Stem:                "A train travels 60km in 2 hours. Find its speed.",
		AdminAnswer:         "30 km/h",
		AdminSolution:       "Speed = distance / time = 60 / 2 = 30 km/h.",
		PrincipleToRemember: "Speed is distance covered per unit time.",
		Category:            "Arithmetic",
		Subcategory:         "Time-Speed-Distance",
		TypeOfQuestion:      "Basics",
		DifficultyBand:      store.Medium,
		DifficultyScore:     2.5,
		RightAnswer:         "30 km/h",
		CoreConcepts:        []string{"speed formula", "unit conversion", "distance-time relation"},
		SolutionMethod:      "Apply speed = distance / time",
		OperationsRequired:  []string{"division"},
		ProblemStructure:    "direct_computation",
		ConceptKeywords:     []string{"speed", "distance"},
		ConceptDifficulty: store.ConceptDifficulty{
			Prerequisites:     []string{"basic arithmetic"},
			CognitiveBarriers: []string{"unit confusion"},
			MasteryIndicators: []string{"correct unit usage"},
		},
		ConceptExtractionStatus: store.ExtractionCompleted,
	}
}

func TestStructuralChecks_AllPass(t *testing.T) {
	reg := taxonomy.New()
	q := validQuestion()
	require.True(t, reg.ValidPath(q.Category, q.Subcategory, q.TypeOfQuestion))
	failing := StructuralChecks(q, reg)
	assert.Empty(t, failing)
}

func TestStructuralChecks_PlaceholderField(t *testing.T) {
	reg := taxonomy.New()
	q := validQuestion()
	q.SolutionMethod = "N/A"
	failing := StructuralChecks(q, reg)
	assert.Contains(t, failing, "required_field:solution_method")
}

func TestStructuralChecks_ForbiddenGenericTerm(t *testing.T) {
	reg := taxonomy.New()
	q := validQuestion()
	q.CoreConcepts = []string{"basic", "unit conversion", "distance-time relation"}
	failing := StructuralChecks(q, reg)
	found := false
	for _, f := range failing {
		if f == "core_concepts_forbidden_term:basic" {
			found = true
		}
	}
	assert.True(t, found, "expected forbidden-term failure, got %v", failing)
}

func TestStructuralChecks_TooFewCoreConcepts(t *testing.T) {
	reg := taxonomy.New()
	q := validQuestion()
	q.CoreConcepts = []string{"speed formula"}
	failing := StructuralChecks(q, reg)
	assert.Contains(t, failing, "core_concepts_min_count")
}

func TestStructuralChecks_InvalidCanonicalPath(t *testing.T) {
	reg := taxonomy.New()
	q := validQuestion()
	q.Subcategory = "Not A Real Subcategory"
	failing := StructuralChecks(q, reg)
	assert.Contains(t, failing, "canonical_path")
}

func TestStructuralChecks_BandScoreMisalignment(t *testing.T) {
	reg := taxonomy.New()
	q := validQuestion()
	q.DifficultyBand = store.Easy // score 2.5 is not in Easy's [1.0,2.0]
	failing := StructuralChecks(q, reg)
	assert.Contains(t, failing, "difficulty_band_score_alignment")
}

func TestStructuralChecks_ConceptDifficultyIncomplete(t *testing.T) {
	reg := taxonomy.New()
	q := validQuestion()
	q.ConceptDifficulty.MasteryIndicators = nil
	failing := StructuralChecks(q, reg)
	assert.Contains(t, failing, "concept_difficulty_mastery_indicators")
}
