package enrichment

import (
	"context"
	"fmt"
	"strings"

	"github.com/adaptivecat/planner/pkg/llmgateway"
	"github.com/adaptivecat/planner/pkg/store"
)

// analysisTemperature is the fixed temperature for all enrichment and
// matching calls, per spec.md §6.
const analysisTemperature = 0.1

// analysisResponse is the JSON shape stage 1's prompt is asked to
// return, per spec.md §4.4 stage 1.
type analysisResponse struct {
	RightAnswer        string                  `json:"right_answer"`
	Category           string                  `json:"category"`
	Subcategory        string                  `json:"subcategory"`
	TypeOfQuestion     string                  `json:"type_of_question"`
	DifficultyBand     string                  `json:"difficulty_band"`
	DifficultyScore    float64                 `json:"difficulty_score"`
	CoreConcepts       []string                `json:"core_concepts"`
	SolutionMethod     string                  `json:"solution_method"`
	ConceptDifficulty  store.ConceptDifficulty `json:"concept_difficulty"`
	OperationsRequired []string                `json:"operations_required"`
	ProblemStructure   string                  `json:"problem_structure"`
	ConceptKeywords    []string                `json:"concept_keywords"`
}

// requiredAnalysisFields validates the minimal schema a stage-1
// response must satisfy before the pipeline accepts it, per spec.md
// §7's "Schema violation" failure kind.
func (r analysisResponse) validate() error {
	if strings.TrimSpace(r.RightAnswer) == "" {
		return fmt.Errorf("missing right_answer")
	}
	if strings.TrimSpace(r.Category) == "" || strings.TrimSpace(r.Subcategory) == "" || strings.TrimSpace(r.TypeOfQuestion) == "" {
		return fmt.Errorf("missing classification fields")
	}
	if strings.TrimSpace(r.DifficultyBand) == "" {
		return fmt.Errorf("missing difficulty_band")
	}
	if r.DifficultyScore < 1.0 || r.DifficultyScore > 5.0 {
		return fmt.Errorf("difficulty_score %v out of [1.0, 5.0] range", r.DifficultyScore)
	}
	return nil
}

const analysisSystemPrompt = `You are analyzing a quantitative-aptitude (CAT exam) question. Given the ` +
	`canonical taxonomy as context and the question stem, return a single JSON object with keys: ` +
	`right_answer, category, subcategory, type_of_question, difficulty_band (Easy/Medium/Hard), ` +
	`difficulty_score (1.0-5.0), core_concepts (array), solution_method (string), concept_difficulty ` +
	`(object with prerequisites, cognitive_barriers, mastery_indicators arrays), operations_required ` +
	`(array), problem_structure (short token string), concept_keywords (array). Return JSON only, no prose.`

// runAnalysis issues stage 1's consolidated-analysis call, per spec.md
// §4.4. The gateway's retry ladder covers failed calls; a response that
// fails to parse or validate() re-issues the call, up to
// schemaAttempts calls in all, and the last schema violation is the
// terminal outcome for this stage.
func runAnalysis(ctx context.Context, gw *llmgateway.Gateway, taxonomyContext, stem string) (analysisResponse, *StageError) {
	const schemaAttempts = 4
	req := llmgateway.Request{
		System: analysisSystemPrompt,
		Messages: []llmgateway.Message{
			{
				Role:    llmgateway.RoleUser,
				Content: fmt.Sprintf("Canonical taxonomy:\n%s\n\nQuestion:\n%s", taxonomyContext, stem),
			},
		},
		MaxTokens:   1200,
		Temperature: analysisTemperature,
	}

	var lastErr *StageError
	for attempt := 0; attempt < schemaAttempts; attempt++ {
		resp, err := gw.Complete(ctx, req)
		if err != nil {
			return analysisResponse{}, &StageError{Stage: "analysis", Kind: KindUpstream, Detail: err.Error()}
		}

		var parsed analysisResponse
		if err := llmgateway.ParseJSON(resp.Text, &parsed); err != nil {
			lastErr = &StageError{Stage: "analysis", Kind: KindSchemaViolation, Detail: err.Error()}
			continue
		}
		if err := parsed.validate(); err != nil {
			lastErr = &StageError{Stage: "analysis", Kind: KindSchemaViolation, Detail: err.Error()}
			continue
		}
		return parsed, nil
	}
	return analysisResponse{}, lastErr
}
