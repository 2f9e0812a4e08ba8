package store

import (
	"context"
	"fmt"
	"time"

	"github.com/adaptivecat/planner/ent"
	"github.com/adaptivecat/planner/ent/attempt"
	"github.com/adaptivecat/planner/ent/predicate"
	"github.com/adaptivecat/planner/ent/question"
	"github.com/google/uuid"
)

func questionInSubcategory(subcategory, typeOfQuestion string) predicate.Question {
	if typeOfQuestion == "" {
		return question.Subcategory(subcategory)
	}
	return question.And(question.Subcategory(subcategory), question.TypeOfQuestion(typeOfQuestion))
}

// RecordAttempt appends a student's response, per spec.md §4.2. Attempts
// are append-only; the caller is responsible for idempotent dedup on
// attempt identity before calling (spec.md §4.6).
func (c *Client) RecordAttempt(ctx context.Context, a Attempt) error {
	id := a.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := c.Attempt.Create().
		SetID(id).
		SetStudentID(a.StudentID).
		SetQuestionID(a.QuestionID).
		SetCorrect(a.Correct).
		SetTimeTakenSeconds(a.TimeTakenSeconds).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("store: record attempt for %s/%s: %w", a.StudentID, a.QuestionID, err)
	}
	return nil
}

// RecentAttempts returns a student's most recent attempts, newest
// first, bounded by limit.
func (c *Client) RecentAttempts(ctx context.Context, studentID string, limit int) ([]Attempt, error) {
	rows, err := c.Attempt.Query().
		Where(attempt.StudentID(studentID)).
		Order(ent.Desc(attempt.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: recent attempts for %s: %w", studentID, err)
	}

	out := make([]Attempt, 0, len(rows))
	for _, r := range rows {
		out = append(out, attemptFromEnt(r))
	}
	return out, nil
}

// LastAttemptTimes returns, for every question the student has
// attempted on or after since, the timestamp of its most recent
// attempt. Used by C8 to apply C7's difficulty-specific cooldown
// filter without scanning a student's entire attempt history.
func (c *Client) LastAttemptTimes(ctx context.Context, studentID string, since time.Time) (map[string]time.Time, error) {
	rows, err := c.Attempt.Query().
		Where(attempt.StudentID(studentID), attempt.CreatedAtGTE(since)).
		Order(ent.Asc(attempt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: last attempt times for %s: %w", studentID, err)
	}

	out := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		out[r.QuestionID] = r.CreatedAt
	}
	return out, nil
}

// AttemptsForSubcategory returns a student's attempts against questions
// in subcategory (optionally narrowed to type_of_question), ordered
// oldest first, for C6's EWMA replay.
func (c *Client) AttemptsForSubcategory(ctx context.Context, studentID, subcategory, typeOfQuestion string) ([]Attempt, error) {
	q := c.Attempt.Query().
		Where(attempt.StudentID(studentID)).
		Order(ent.Asc(attempt.FieldCreatedAt))

	ids, err := c.Question.Query().
		Where(questionInSubcategory(subcategory, typeOfQuestion)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: questions for %s/%s: %w", subcategory, typeOfQuestion, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	q = q.Where(attempt.QuestionIDIn(ids...))

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: attempts for %s/%s/%s: %w", studentID, subcategory, typeOfQuestion, err)
	}

	out := make([]Attempt, 0, len(rows))
	for _, r := range rows {
		out = append(out, attemptFromEnt(r))
	}
	return out, nil
}
