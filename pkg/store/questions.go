package store

import (
	"context"
	"fmt"

	"github.com/adaptivecat/planner/ent"
	"github.com/adaptivecat/planner/ent/question"
	"github.com/adaptivecat/planner/ent/session"
)

// QuestionFilter narrows ActiveQuestions per spec.md §4.2. Zero-value
// fields are not applied as predicates; use the PYQ* pointers to express
// >=/</range comparisons.
type QuestionFilter struct {
	Category       string
	Subcategory    string
	DifficultyBand DifficultyBand
	IsActive       *bool

	PYQFrequencyGTE *float64
	PYQFrequencyLT  *float64

	ExcludeIDs []string
}

// ActiveQuestions returns the bank questions matching filters, per
// spec.md §4.2's active_questions(filters) contract. The "stream of
// Question" language in the contract is realized as a materialized
// slice — the pool sizes C7/C8 work with (a few hundred at most per
// category) never warrant a cursor-based stream, and a slice keeps
// parity with how the teacher's query layer returns finder results.
func (c *Client) ActiveQuestions(ctx context.Context, f QuestionFilter) ([]Question, error) {
	q := c.Question.Query()

	if f.Category != "" {
		q = q.Where(question.Category(f.Category))
	}
	if f.Subcategory != "" {
		q = q.Where(question.Subcategory(f.Subcategory))
	}
	if f.DifficultyBand != "" {
		q = q.Where(question.DifficultyBandEQ(question.DifficultyBand(f.DifficultyBand)))
	}
	if f.IsActive != nil {
		q = q.Where(question.IsActive(*f.IsActive))
	}
	if f.PYQFrequencyGTE != nil {
		q = q.Where(question.PyqFrequencyScoreGTE(*f.PYQFrequencyGTE))
	}
	if f.PYQFrequencyLT != nil {
		q = q.Where(question.PyqFrequencyScoreLT(*f.PYQFrequencyLT))
	}
	if len(f.ExcludeIDs) > 0 {
		q = q.Where(question.IDNotIn(f.ExcludeIDs...))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: active questions: %w", err)
	}

	out := make([]Question, 0, len(rows))
	for _, r := range rows {
		out = append(out, questionFromEnt(r))
	}
	return out, nil
}

// GetQuestion fetches a single question by id.
func (c *Client) GetQuestion(ctx context.Context, id string) (Question, error) {
	r, err := c.Question.Get(ctx, id)
	if err != nil {
		return Question{}, fmt.Errorf("store: get question %s: %w", id, err)
	}
	return questionFromEnt(r), nil
}

// UpsertQuestion writes the enrichment pipeline's output for a question.
// Admin-owned content fields are set only on first insert; re-enrichment
// (an existing id) never touches them, per spec.md §4.4's ordering
// guarantee.
func (c *Client) UpsertQuestion(ctx context.Context, rec Question) error {
	exists, err := c.Question.Query().Where(question.ID(rec.ID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("store: check question exists: %w", err)
	}

	failingCriteria := marshalStrings(rec.FailingCriteria)

	if !exists {
		create := c.Question.Create().
			SetID(rec.ID).
			SetStem(rec.Stem).
			SetAdminAnswer(rec.AdminAnswer).
			SetAdminSolution(rec.AdminSolution).
			SetPrincipleToRemember(rec.PrincipleToRemember).
			SetImageRef(rec.ImageRef).
			SetCategory(rec.Category).
			SetSubcategory(rec.Subcategory).
			SetTypeOfQuestion(rec.TypeOfQuestion).
			SetDifficultyScore(rec.DifficultyScore).
			SetRightAnswer(rec.RightAnswer).
			SetCoreConcepts(marshalStrings(rec.CoreConcepts)).
			SetSolutionMethod(rec.SolutionMethod).
			SetConceptDifficulty(marshalConceptDifficulty(rec.ConceptDifficulty)).
			SetOperationsRequired(marshalStrings(rec.OperationsRequired)).
			SetConceptKeywords(marshalStrings(rec.ConceptKeywords)).
			SetIsActive(rec.IsActive).
			SetQualityVerified(rec.QualityVerified).
			SetConceptExtractionStatus(question.ConceptExtractionStatus(rec.ConceptExtractionStatus))
		if rec.DifficultyBand != "" {
			create = create.SetDifficultyBand(question.DifficultyBand(rec.DifficultyBand))
		}
		if rec.ProblemStructure != "" {
			create = create.SetProblemStructure(rec.ProblemStructure)
		}
		if rec.PYQFrequencyScore != nil {
			create = create.SetPyqFrequencyScore(*rec.PYQFrequencyScore)
		}
		if len(rec.FailingCriteria) > 0 {
			create = create.SetFailingCriteria(failingCriteria)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("store: create question %s: %w", rec.ID, err)
		}
		return nil
	}

	update := c.Question.UpdateOneID(rec.ID).
		SetCategory(rec.Category).
		SetSubcategory(rec.Subcategory).
		SetTypeOfQuestion(rec.TypeOfQuestion).
		SetDifficultyScore(rec.DifficultyScore).
		SetRightAnswer(rec.RightAnswer).
		SetCoreConcepts(marshalStrings(rec.CoreConcepts)).
		SetSolutionMethod(rec.SolutionMethod).
		SetConceptDifficulty(marshalConceptDifficulty(rec.ConceptDifficulty)).
		SetOperationsRequired(marshalStrings(rec.OperationsRequired)).
		SetConceptKeywords(marshalStrings(rec.ConceptKeywords)).
		SetIsActive(rec.IsActive).
		SetQualityVerified(rec.QualityVerified).
		SetConceptExtractionStatus(question.ConceptExtractionStatus(rec.ConceptExtractionStatus))
	if rec.DifficultyBand != "" {
		update = update.SetDifficultyBand(question.DifficultyBand(rec.DifficultyBand))
	}
	if rec.ProblemStructure != "" {
		update = update.SetProblemStructure(rec.ProblemStructure)
	} else {
		update = update.ClearProblemStructure()
	}
	if rec.PYQFrequencyScore != nil {
		update = update.SetPyqFrequencyScore(*rec.PYQFrequencyScore)
	}
	if len(rec.FailingCriteria) > 0 {
		update = update.SetFailingCriteria(failingCriteria)
	} else {
		update = update.ClearFailingCriteria()
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("store: update question %s: %w", rec.ID, err)
	}
	return nil
}

// RecentQuestionsFor returns the set of question IDs served to the
// student in its last_k_sessions most recent sessions, per spec.md
// §4.2's recent_questions_for contract. Used by C8 to exclude
// recently-seen questions from a fresh pool.
func (c *Client) RecentQuestionsFor(ctx context.Context, studentID string, lastK int) (map[string]bool, error) {
	sessions, err := c.Session.Query().
		Where(session.StudentID(studentID)).
		Order(ent.Desc(session.FieldSessSeq)).
		Limit(lastK).
		WithPack().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: recent sessions for %s: %w", studentID, err)
	}

	out := make(map[string]bool)
	for _, s := range sessions {
		if s.Edges.Pack == nil {
			continue
		}
		for _, id := range unmarshalStrings(s.Edges.Pack.QuestionIds) {
			out[id] = true
		}
	}
	return out, nil
}
