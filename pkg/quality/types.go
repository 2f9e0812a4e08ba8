// Package quality implements C5, the quality verifier: 21 binary
// structural checks plus a semantic answer-match cross-validation that
// together gate a question's activation.
package quality

import "context"

// ForbiddenGenericTerms is the shared forbidden-generic-term list
// applied to core_concepts, solution_method, and operations_required,
// per spec.md §4.5.
var ForbiddenGenericTerms = map[string]bool{
	"calculation":        true,
	"basic":              true,
	"mathematics":        true,
	"basic_problem":      true,
	"standard_problem":   true,
	"general_approach":   true,
	"standard_method":    true,
	"basic_math":         true,
	"simple_calculation": true,
}

// placeholderStrings are values a required field must not equal,
// per spec.md §4.5 ("N/A", empty, "To be classified", etc.).
var placeholderStrings = map[string]bool{
	"":                 true,
	"n/a":              true,
	"na":               true,
	"to be classified": true,
	"tbd":              true,
	"unknown":          true,
	"none":             true,
}

// Result is the outcome of one gate evaluation, per spec.md §9's
// explicit result-type design note — no try/except ladder.
type Result struct {
	Passed          bool
	FailingCriteria []string
	SemanticMatch   bool // only meaningful when a semantic check ran
}

// SemanticAnswerMatcher judges whether two answer strings denote the
// same mathematical value, per spec.md §4.5's 22nd criterion.
type SemanticAnswerMatcher interface {
	// AnswersMatch asks an LLM whether adminAnswer and rightAnswer
	// denote the same value, tolerating unit labels, format changes,
	// and equivalent fractions. Returns true on MATCH.
	AnswersMatch(ctx context.Context, stem, adminAnswer, rightAnswer string) (bool, error)
}
