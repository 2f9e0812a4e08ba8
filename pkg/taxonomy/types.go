// Package taxonomy implements C1, the canonical classification hierarchy
// (Category → Subcategory → Type) and the semantic matching used to
// normalize free-text LLM classifications onto it.
package taxonomy

import "context"

// Triple is a fully-qualified canonical classification.
type Triple struct {
	Category       string
	Subcategory    string
	TypeOfQuestion string
}

// IsZero reports whether any leg of the triple is unresolved.
func (t Triple) IsZero() bool {
	return t.Category == "" || t.Subcategory == "" || t.TypeOfQuestion == ""
}

// Matcher resolves free-text LLM output to a canonical Triple.
//
// Implementations call out to an LLM with the canonical taxonomy as
// context and the original question stem alongside the generated terms,
// per spec.md §4.1.
type Matcher interface {
	// SemanticMatch attempts a context-aware match. It returns the best
	// canonical triple the matcher could resolve; any leg it could not
	// place is left empty. stem is the original question text, included
	// so the matcher can disambiguate free_type against the question's
	// actual content rather than the free-text label alone.
	SemanticMatch(ctx context.Context, stem, freeCategory, freeSubcategory, freeType string) (Triple, error)
}
