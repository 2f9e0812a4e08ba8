package quality

import (
	"context"
	"log/slog"

	"github.com/adaptivecat/planner/pkg/store"
	"github.com/adaptivecat/planner/pkg/taxonomy"
)

// Verifier is C5: it runs the binary structural checks and the
// semantic answer-match cross-validation, and decides activation.
type Verifier struct {
	taxonomy *taxonomy.Registry
	matcher  SemanticAnswerMatcher
}

// New builds a Verifier over the canonical taxonomy registry and a
// semantic answer matcher (an LLM-backed implementation in production).
func New(reg *taxonomy.Registry, matcher SemanticAnswerMatcher) *Verifier {
	return &Verifier{taxonomy: reg, matcher: matcher}
}

// Verify runs the full quality gate against q, per spec.md §4.5's
// Completion criterion: all 21 structural checks pass AND (for regular
// questions) the semantic match returns MATCH AND
// concept_extraction_status == completed. On pass, the caller is
// expected to set quality_verified=true, is_active=true; on fail, both
// stay false and FailingCriteria is recorded for later re-processing.
func (v *Verifier) Verify(ctx context.Context, q store.Question) Result {
	failing := StructuralChecks(q, v.taxonomy)

	if q.ConceptExtractionStatus != store.ExtractionCompleted {
		failing = append(failing, "concept_extraction_status")
	}

	semanticMatch := true
	if isRegularQuestion(q) && v.matcher != nil {
		matched, err := v.matcher.AnswersMatch(ctx, q.Stem, q.AdminAnswer, q.RightAnswer)
		if err != nil {
			slog.Warn("quality: semantic answer match call failed, treating as no-match",
				"question_id", q.ID, "error", err)
			matched = false
		}
		semanticMatch = matched
		if !matched {
			failing = append(failing, "semantic_answer_match")
		}
	}

	if len(failing) > 0 {
		slog.Info("quality: gate rejected question", "question_id", q.ID, "failing_criteria", failing)
		return Result{Passed: false, FailingCriteria: failing, SemanticMatch: semanticMatch}
	}

	slog.Info("quality: gate passed question", "question_id", q.ID)
	return Result{Passed: true, SemanticMatch: semanticMatch}
}
