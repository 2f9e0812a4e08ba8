package store

import (
	"context"
	"fmt"

	"github.com/adaptivecat/planner/ent/studentcoverage"
	"github.com/google/uuid"
)

// UpsertCoverage records that student saw combination during sess_seq,
// incrementing sessions_seen and advancing last_seen_session, per
// spec.md §4.2's upsert_coverage(student, combination, session_seq) —
// increment semantics keyed on (student, combination).
func (c *Client) UpsertCoverage(ctx context.Context, studentID string, combo Combination, sessSeq int) error {
	row, err := c.StudentCoverage.Query().
		Where(
			studentcoverage.StudentID(studentID),
			studentcoverage.Subcategory(combo.Subcategory),
			studentcoverage.TypeOfQuestion(combo.TypeOfQuestion),
		).
		Only(ctx)

	if isNotFound(err) {
		_, createErr := c.StudentCoverage.Create().
			SetID(uuid.NewString()).
			SetStudentID(studentID).
			SetSubcategory(combo.Subcategory).
			SetTypeOfQuestion(combo.TypeOfQuestion).
			SetSessionsSeen(1).
			SetFirstSeenSession(sessSeq).
			SetLastSeenSession(sessSeq).
			Save(ctx)
		if createErr != nil {
			return fmt.Errorf("store: create coverage for %s/%s/%s: %w", studentID, combo.Subcategory, combo.TypeOfQuestion, createErr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: query coverage for %s/%s/%s: %w", studentID, combo.Subcategory, combo.TypeOfQuestion, err)
	}

	_, err = row.Update().
		SetSessionsSeen(row.SessionsSeen + 1).
		SetLastSeenSession(sessSeq).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("store: increment coverage for %s/%s/%s: %w", studentID, combo.Subcategory, combo.TypeOfQuestion, err)
	}
	return nil
}

// GetSeenCombinations returns every (subcategory, type_of_question) pair
// the student has ever been served, keyed for O(1) membership checks by
// C7's coverage-new vs coverage-seen partition.
func (c *Client) GetSeenCombinations(ctx context.Context, studentID string) (map[Combination]Coverage, error) {
	rows, err := c.StudentCoverage.Query().
		Where(studentcoverage.StudentID(studentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: seen combinations for %s: %w", studentID, err)
	}

	out := make(map[Combination]Coverage, len(rows))
	for _, r := range rows {
		cov := coverageFromEnt(r)
		out[cov.Combination] = cov
	}
	return out, nil
}
