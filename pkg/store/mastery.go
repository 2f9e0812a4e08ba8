package store

import (
	"context"
	"fmt"

	"github.com/adaptivecat/planner/ent/mastery"
	"github.com/google/uuid"
)

// GetMastery fetches a student's mastery row for (subcategory,
// type_of_question); typeOfQuestion == "" addresses the
// subcategory-level row. Returns the zero row (ExposureCount 0) if
// none exists yet — new students and new combinations are not errors.
func (c *Client) GetMastery(ctx context.Context, studentID, subcategory, typeOfQuestion string) (MasteryRow, error) {
	row, err := c.Mastery.Query().
		Where(
			mastery.StudentID(studentID),
			mastery.Subcategory(subcategory),
			mastery.TypeOfQuestion(typeOfQuestion),
		).
		Only(ctx)
	if isNotFound(err) {
		return MasteryRow{StudentID: studentID, Subcategory: subcategory, TypeOfQuestion: typeOfQuestion}, nil
	}
	if err != nil {
		return MasteryRow{}, fmt.Errorf("store: get mastery for %s/%s/%s: %w", studentID, subcategory, typeOfQuestion, err)
	}
	return masteryFromEnt(row), nil
}

// UpsertMastery writes a student's recomputed EWMA mastery state for one
// (subcategory[, type_of_question]) row. Mastery updates are applied
// one attempt at a time by C6, so this is a plain upsert rather than a
// row-locked increment — unlike UpsertCoverage, there is no concurrent
// increment to race against within a single session's serial attempt
// stream.
func (c *Client) UpsertMastery(ctx context.Context, row MasteryRow) error {
	existing, err := c.Mastery.Query().
		Where(
			mastery.StudentID(row.StudentID),
			mastery.Subcategory(row.Subcategory),
			mastery.TypeOfQuestion(row.TypeOfQuestion),
		).
		Only(ctx)

	if isNotFound(err) {
		_, createErr := c.Mastery.Create().
			SetID(uuid.NewString()).
			SetStudentID(row.StudentID).
			SetSubcategory(row.Subcategory).
			SetTypeOfQuestion(row.TypeOfQuestion).
			SetAccuracyEasy(row.AccuracyEasy).
			SetAccuracyMedium(row.AccuracyMedium).
			SetAccuracyHard(row.AccuracyHard).
			SetEfficiencyScore(row.EfficiencyScore).
			SetExposureCount(row.ExposureCount).
			SetMasteryPct(row.MasteryPct).
			SetLastActivityAt(row.LastActivityAt).
			Save(ctx)
		if createErr != nil {
			return fmt.Errorf("store: create mastery for %s/%s/%s: %w", row.StudentID, row.Subcategory, row.TypeOfQuestion, createErr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: query mastery for %s/%s/%s: %w", row.StudentID, row.Subcategory, row.TypeOfQuestion, err)
	}

	_, err = existing.Update().
		SetAccuracyEasy(row.AccuracyEasy).
		SetAccuracyMedium(row.AccuracyMedium).
		SetAccuracyHard(row.AccuracyHard).
		SetEfficiencyScore(row.EfficiencyScore).
		SetExposureCount(row.ExposureCount).
		SetMasteryPct(row.MasteryPct).
		SetLastActivityAt(row.LastActivityAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("store: update mastery for %s/%s/%s: %w", row.StudentID, row.Subcategory, row.TypeOfQuestion, err)
	}
	return nil
}

// StudentIDsWithMastery returns the distinct set of students carrying
// at least one mastery row, for the nightly decay sweep.
func (c *Client) StudentIDsWithMastery(ctx context.Context) ([]string, error) {
	ids, err := c.Mastery.Query().
		GroupBy(mastery.FieldStudentID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: students with mastery: %w", err)
	}
	return ids, nil
}

// AllMasteryForStudent returns every mastery row the student has
// accrued, for C7's category quota-shift decision (weakest/strongest
// category lookup).
func (c *Client) AllMasteryForStudent(ctx context.Context, studentID string) ([]MasteryRow, error) {
	rows, err := c.Mastery.Query().
		Where(mastery.StudentID(studentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: all mastery for %s: %w", studentID, err)
	}
	out := make([]MasteryRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, masteryFromEnt(r))
	}
	return out, nil
}
