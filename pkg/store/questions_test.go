package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestion(id string) Question {
	return Question{
		ID:             id,
		Stem:           "What is 2+2?",
		AdminAnswer:    "4",
		Category:       "Arithmetic",
		Subcategory:    "Number Systems",
		TypeOfQuestion: "Basic Operations",
		DifficultyBand: Easy,
		DifficultyScore: 1.5,
		RightAnswer:     "4",
		CoreConcepts:    []string{"addition"},
		ConceptKeywords: []string{"sum"},
		IsActive:        true,
		QualityVerified: true,
		ConceptExtractionStatus: ExtractionCompleted,
	}
}

func TestClient_UpsertQuestion_CreateThenUpdate(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	q := sampleQuestion("q-1")
	require.NoError(t, client.UpsertQuestion(ctx, q))

	got, err := client.GetQuestion(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, "What is 2+2?", got.Stem)
	assert.Equal(t, "4", got.AdminAnswer)
	assert.True(t, got.IsActive)
	assert.Equal(t, []string{"addition"}, got.CoreConcepts)

	// Re-enrichment must not touch admin-owned content.
	q.Stem = "this must not be persisted"
	q.AdminAnswer = "neither must this"
	q.CoreConcepts = []string{"addition", "subtraction"}
	require.NoError(t, client.UpsertQuestion(ctx, q))

	got, err = client.GetQuestion(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, "What is 2+2?", got.Stem)
	assert.Equal(t, "4", got.AdminAnswer)
	assert.Equal(t, []string{"addition", "subtraction"}, got.CoreConcepts)
}

func TestClient_ActiveQuestions_Filters(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	active := sampleQuestion("q-active")
	require.NoError(t, client.UpsertQuestion(ctx, active))

	inactive := sampleQuestion("q-inactive")
	inactive.IsActive = false
	require.NoError(t, client.UpsertQuestion(ctx, inactive))

	hard := sampleQuestion("q-hard")
	hard.DifficultyBand = Hard
	hard.DifficultyScore = 4.0
	require.NoError(t, client.UpsertQuestion(ctx, hard))

	onlyActive := true
	rows, err := client.ActiveQuestions(ctx, QuestionFilter{IsActive: &onlyActive})
	require.NoError(t, err)
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, "q-active")
	assert.Contains(t, ids, "q-hard")
	assert.NotContains(t, ids, "q-inactive")

	rows, err = client.ActiveQuestions(ctx, QuestionFilter{DifficultyBand: Hard})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "q-hard", rows[0].ID)
}
