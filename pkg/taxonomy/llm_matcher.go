package taxonomy

import (
	"context"
	"fmt"

	"github.com/adaptivecat/planner/pkg/llmgateway"
)

// matchTemperature is the fixed temperature for all enrichment and
// matching calls, per spec.md §6.
const matchTemperature = 0.1

// matchResponse is the JSON shape the matching prompt is asked to
// return.
type matchResponse struct {
	Category       string `json:"category"`
	Subcategory    string `json:"subcategory"`
	TypeOfQuestion string `json:"type_of_question"`
}

// LLMMatcher implements Matcher over C3's gateway, carrying the
// canonical taxonomy as prompt context alongside the original question
// stem, per spec.md §4.1.
type LLMMatcher struct {
	gateway  *llmgateway.Gateway
	registry *Registry
}

// NewLLMMatcher builds a matcher over gw, using reg to render the
// canonical taxonomy as prompt context.
func NewLLMMatcher(gw *llmgateway.Gateway, reg *Registry) *LLMMatcher {
	return &LLMMatcher{gateway: gw, registry: reg}
}

func (m *LLMMatcher) taxonomyContext() string {
	return m.registry.RenderContext()
}

const matchSystemPrompt = `You map free-text question classifications onto a closed canonical ` +
	`taxonomy of Category > Subcategory > {Type_of_Question}. Given the canonical taxonomy, the ` +
	`original question, and the free-text classification terms a prior step produced, return the ` +
	`best-matching canonical triple as JSON: {"category": "...", "subcategory": "...", ` +
	`"type_of_question": "..."}. If a leg cannot be confidently placed in the canonical set, return ` +
	`an empty string for that leg rather than guessing. Return JSON only, no prose.`

// SemanticMatch implements taxonomy.Matcher.
func (m *LLMMatcher) SemanticMatch(ctx context.Context, stem, freeCategory, freeSubcategory, freeType string) (Triple, error) {
	req := llmgateway.Request{
		System: matchSystemPrompt,
		Messages: []llmgateway.Message{
			{
				Role: llmgateway.RoleUser,
				Content: fmt.Sprintf(
					"Canonical taxonomy:\n%s\nOriginal question:\n%s\n\nFree-text classification:\ncategory=%s\nsubcategory=%s\ntype_of_question=%s",
					m.taxonomyContext(), stem, freeCategory, freeSubcategory, freeType,
				),
			},
		},
		MaxTokens:   200,
		Temperature: matchTemperature,
	}

	resp, err := m.gateway.Complete(ctx, req)
	if err != nil {
		return Triple{}, fmt.Errorf("taxonomy: semantic match call: %w", err)
	}

	var parsed matchResponse
	if err := llmgateway.ParseJSON(resp.Text, &parsed); err != nil {
		return Triple{}, fmt.Errorf("taxonomy: parse semantic match response: %w", err)
	}

	normalized := m.registry.Normalize(parsed.Category, parsed.Subcategory, parsed.TypeOfQuestion)
	return normalized, nil
}
