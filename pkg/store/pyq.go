package store

import (
	"context"
	"fmt"

	"github.com/adaptivecat/planner/ent/pyqquestion"
)

// QualifyingPYQPool returns the PYQ questions eligible to back a
// frequency-scoring prompt for (category, subcategory): active,
// quality-verified, and carrying non-null problem_structure and
// concept_keywords, per spec.md §4.4 stage 4. The pool is returned in
// full — no down-sampling, per the same clause.
func (c *Client) QualifyingPYQPool(ctx context.Context, category, subcategory string) ([]PYQQuestion, error) {
	rows, err := c.PYQQuestion.Query().
		Where(
			pyqquestion.Category(category),
			pyqquestion.Subcategory(subcategory),
			pyqquestion.IsActive(true),
			pyqquestion.QualityVerified(true),
			pyqquestion.ProblemStructureNotNil(),
			pyqquestion.ConceptKeywordsNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: qualifying pyq pool for %s/%s: %w", category, subcategory, err)
	}

	out := make([]PYQQuestion, 0, len(rows))
	for _, r := range rows {
		out = append(out, pyqFromEnt(r))
	}
	return out, nil
}
