package quality

import (
	"context"
	"fmt"
	"strings"

	"github.com/adaptivecat/planner/pkg/llmgateway"
)

// answerMatchTemperature is the fixed temperature for all enrichment
// and matching calls, per spec.md §6.
const answerMatchTemperature = 0.1

// LLMAnswerMatcher implements SemanticAnswerMatcher over C3's gateway,
// per spec.md §4.5's 22nd criterion.
type LLMAnswerMatcher struct {
	gateway *llmgateway.Gateway
}

// NewLLMAnswerMatcher builds a matcher over gw.
func NewLLMAnswerMatcher(gw *llmgateway.Gateway) *LLMAnswerMatcher {
	return &LLMAnswerMatcher{gateway: gw}
}

const answerMatchSystemPrompt = `You judge whether two answers to a quantitative-aptitude question denote the ` +
	`same mathematical value. Tolerate unit-label differences, formatting differences, and equivalent ` +
	`fractions/decimals/percentages. Respond with exactly one word: MATCH or NO_MATCH.`

// AnswersMatch asks the gateway whether adminAnswer and rightAnswer
// denote the same value.
func (m *LLMAnswerMatcher) AnswersMatch(ctx context.Context, stem, adminAnswer, rightAnswer string) (bool, error) {
	req := llmgateway.Request{
		System: answerMatchSystemPrompt,
		Messages: []llmgateway.Message{
			{
				Role: llmgateway.RoleUser,
				Content: fmt.Sprintf(
					"Question: %s\n\nAdmin-provided answer: %s\nPipeline right_answer: %s\n\nMATCH or NO_MATCH?",
					stem, adminAnswer, rightAnswer,
				),
			},
		},
		MaxTokens:   16,
		Temperature: answerMatchTemperature,
	}

	resp, err := m.gateway.Complete(ctx, req)
	if err != nil {
		return false, fmt.Errorf("quality: semantic answer match call: %w", err)
	}

	verdict := strings.ToUpper(strings.TrimSpace(llmgateway.StripFence(resp.Text)))
	return strings.Contains(verdict, "MATCH") && !strings.Contains(verdict, "NO_MATCH"), nil
}
