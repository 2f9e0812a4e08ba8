package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RecordAttempt_And_RecentAttempts(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.UpsertQuestion(ctx, sampleQuestion("q-1")))

	require.NoError(t, client.RecordAttempt(ctx, Attempt{
		StudentID: "student-1", QuestionID: "q-1", Correct: true, TimeTakenSeconds: 42,
	}))
	require.NoError(t, client.RecordAttempt(ctx, Attempt{
		StudentID: "student-1", QuestionID: "q-1", Correct: false, TimeTakenSeconds: 90,
	}))

	recent, err := client.RecentAttempts(ctx, "student-1", 10)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	bySub, err := client.AttemptsForSubcategory(ctx, "student-1", "Number Systems", "")
	require.NoError(t, err)
	assert.Len(t, bySub, 2)

	byMissing, err := client.AttemptsForSubcategory(ctx, "student-1", "Geometry", "")
	require.NoError(t, err)
	assert.Empty(t, byMissing)
}

func TestClient_LastAttemptTimes(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.UpsertQuestion(ctx, sampleQuestion("q-1")))
	require.NoError(t, client.UpsertQuestion(ctx, sampleQuestion("q-2")))

	require.NoError(t, client.RecordAttempt(ctx, Attempt{
		StudentID: "student-1", QuestionID: "q-1", Correct: true, TimeTakenSeconds: 10,
	}))
	require.NoError(t, client.RecordAttempt(ctx, Attempt{
		StudentID: "student-1", QuestionID: "q-1", Correct: false, TimeTakenSeconds: 20,
	}))

	times, err := client.LastAttemptTimes(ctx, "student-1", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Contains(t, times, "q-1")
	assert.NotContains(t, times, "q-2", "a question never attempted must not appear")

	none, err := client.LastAttemptTimes(ctx, "student-1", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none, "a cutoff in the future must exclude every attempt")
}
