package enrichment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/adaptivecat/planner/pkg/llmgateway"
	"github.com/adaptivecat/planner/pkg/store"
)

// pyqTemperature is the fixed temperature for all enrichment and
// matching calls, per spec.md §6.
const pyqTemperature = 0.1

// lowDifficultyPYQThreshold is the difficulty_score at or below which
// PYQ frequency scoring is skipped entirely, per spec.md §4.4 stage 4
// and the boundary behavior pinned in §8: at exactly 1.5 no PYQ call
// is made (scoring requires a strictly greater score).
const lowDifficultyPYQThreshold = 1.5

// lowDifficultyPYQScore is the default score substituted when stage 1's
// difficulty_score is at or below lowDifficultyPYQThreshold.
const lowDifficultyPYQScore = 0.5

// emptyPoolPYQScore is the default score substituted when the
// qualifying PYQ pool for (category, subcategory) is empty, per
// spec.md §8's boundary behavior.
const emptyPoolPYQScore = 0.5

const pyqSystemPrompt = `You compare a target question against a pool of historical exam questions in ` +
	`the same (category, subcategory), scoring how frequently questions like the target have appeared ` +
	`historically. Compare on problem_structure and concept_keywords overlap across the full pool. ` +
	`Return a single JSON object: {"pyq_frequency_score": <number>}. Return JSON only, no prose.`

type pyqResponse struct {
	PYQFrequencyScore float64 `json:"pyq_frequency_score"`
}

// runPYQScoring computes stage 4's PYQ frequency score, per spec.md
// §4.4. If difficultyScore is at or below lowDifficultyPYQThreshold, no
// PYQ call is made at all — the threshold is strict ">", per §8.
func runPYQScoring(ctx context.Context, gw *llmgateway.Gateway, pool []store.PYQQuestion, target store.Question, difficultyScore float64) (float64, *StageError) {
	if difficultyScore <= lowDifficultyPYQThreshold {
		return lowDifficultyPYQScore, nil
	}
	if len(pool) == 0 {
		return emptyPoolPYQScore, nil
	}

	var b strings.Builder
	for i, p := range pool {
		fmt.Fprintf(&b, "%d. problem_structure=%q concept_keywords=%s\n", i+1, p.ProblemStructure, strings.Join(p.ConceptKeywords, ","))
	}

	req := llmgateway.Request{
		System: pyqSystemPrompt,
		Messages: []llmgateway.Message{
			{
				Role: llmgateway.RoleUser,
				Content: fmt.Sprintf(
					"Target question:\nproblem_structure=%q\nconcept_keywords=%s\n\nHistorical pool (%d questions):\n%s",
					target.ProblemStructure, strings.Join(target.ConceptKeywords, ","), len(pool), b.String(),
				),
			},
		},
		MaxTokens:   64,
		Temperature: pyqTemperature,
	}

	resp, err := gw.Complete(ctx, req)
	if err != nil {
		return 0, &StageError{Stage: "pyq_scoring", Kind: KindUpstream, Detail: err.Error()}
	}

	var parsed pyqResponse
	if perr := llmgateway.ParseJSON(resp.Text, &parsed); perr != nil {
		// Tolerate a bare numeric completion alongside the JSON-object
		// contract — the gateway's fence-stripping already ran.
		if v, verr := strconv.ParseFloat(strings.TrimSpace(llmgateway.StripFence(resp.Text)), 64); verr == nil {
			return v, nil
		}
		return 0, &StageError{Stage: "pyq_scoring", Kind: KindSchemaViolation, Detail: perr.Error()}
	}

	// The raw score is stored as-is, per spec.md §4.4 — no clamping.
	return parsed.PYQFrequencyScore, nil
}
