package quality

import (
	"fmt"
	"strings"

	"github.com/adaptivecat/planner/pkg/store"
	"github.com/adaptivecat/planner/pkg/taxonomy"
)

// isPlaceholder reports whether v is empty or one of the known
// placeholder strings (case-insensitive), per spec.md §4.5.
func isPlaceholder(v string) bool {
	return placeholderStrings[strings.ToLower(strings.TrimSpace(v))]
}

// containsForbidden reports whether any entry of terms matches the
// forbidden-generic-term list, case-insensitively, ignoring spaces vs
// underscores.
func containsForbidden(terms ...string) string {
	for _, t := range terms {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(t), " ", "_"))
		if ForbiddenGenericTerms[key] {
			return t
		}
	}
	return ""
}

// StructuralChecks runs the 21 binary structural checks of spec.md
// §4.5 against q. It returns every failing criterion name; an empty
// slice means all 21 passed.
func StructuralChecks(q store.Question, reg *taxonomy.Registry) []string {
	var failing []string

	fail := func(name string) { failing = append(failing, name) }

	// Required-field presence: the eleven string fields and three list
	// fields below must be non-empty and not a placeholder string.
	// difficulty_score and concept_difficulty are covered by the alignment
	// and key checks further down; image_ref and pyq_frequency_score are
	// not checked for presence.
	required := map[string]string{
		"stem":                  q.Stem,
		"admin_answer":          q.AdminAnswer,
		"admin_solution":        q.AdminSolution,
		"principle_to_remember": q.PrincipleToRemember,
		"category":              q.Category,
		"subcategory":           q.Subcategory,
		"type_of_question":      q.TypeOfQuestion,
		"right_answer":          q.RightAnswer,
		"solution_method":       q.SolutionMethod,
		"problem_structure":     q.ProblemStructure,
		"difficulty_band":       string(q.DifficultyBand),
	}
	for field, v := range required {
		if isPlaceholder(v) {
			fail("required_field:" + field)
		}
	}
	if len(q.CoreConcepts) == 0 {
		fail("required_field:core_concepts")
	}
	if len(q.OperationsRequired) == 0 {
		fail("required_field:operations_required")
	}
	if len(q.ConceptKeywords) == 0 {
		fail("required_field:concept_keywords")
	}

	// difficulty_band enum + band/score alignment (spec.md §3).
	switch q.DifficultyBand {
	case store.Easy, store.Medium, store.Hard:
	default:
		fail("difficulty_band_enum")
	}
	if !q.BandAligned() {
		fail("difficulty_band_score_alignment")
	}

	// Canonical path.
	if reg == nil || !reg.ValidPath(q.Category, q.Subcategory, q.TypeOfQuestion) {
		fail("canonical_path")
	}

	// core_concepts: >= 3 entries, none forbidden.
	if len(q.CoreConcepts) < 3 {
		fail("core_concepts_min_count")
	}
	if term := containsForbidden(q.CoreConcepts...); term != "" {
		fail(fmt.Sprintf("core_concepts_forbidden_term:%s", term))
	}

	// solution_method: not forbidden.
	if term := containsForbidden(q.SolutionMethod); term != "" {
		fail(fmt.Sprintf("solution_method_forbidden_term:%s", term))
	}

	// operations_required: none forbidden.
	if term := containsForbidden(q.OperationsRequired...); term != "" {
		fail(fmt.Sprintf("operations_required_forbidden_term:%s", term))
	}

	// concept_keywords: >= 2 entries.
	if len(q.ConceptKeywords) < 2 {
		fail("concept_keywords_min_count")
	}

	// concept_difficulty: all three keys present.
	cd := q.ConceptDifficulty
	if len(cd.Prerequisites) == 0 {
		fail("concept_difficulty_prerequisites")
	}
	if len(cd.CognitiveBarriers) == 0 {
		fail("concept_difficulty_cognitive_barriers")
	}
	if len(cd.MasteryIndicators) == 0 {
		fail("concept_difficulty_mastery_indicators")
	}

	return failing
}

// isRegularQuestion reports whether q is subject to the semantic
// answer-match criterion (22nd criterion, "only for regular
// questions" per spec.md §4.5). Every Question in this system is a
// regular question — PYQQuestion is the only non-regular shape, and it
// never passes through the quality gate (read-only in planning,
// per spec.md §3) — so the check always applies here. The predicate is
// kept explicit (rather than inlined as "always true") so a future
// question variant that is exempt has a single place to extend.
func isRegularQuestion(q store.Question) bool {
	return true
}
