package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateSession_AssignsDenseSequence(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	s1, err := client.CreateSession(ctx, "student-1", "", "{}")
	require.NoError(t, err)
	assert.Equal(t, 1, s1.SessSeq)

	s2, err := client.CreateSession(ctx, "student-1", "", "{}")
	require.NoError(t, err)
	assert.Equal(t, 2, s2.SessSeq)

	// A second student's sequence is independent.
	other, err := client.CreateSession(ctx, "student-2", "", "{}")
	require.NoError(t, err)
	assert.Equal(t, 1, other.SessSeq)
}

func TestClient_CreateSession_IdempotentReplay(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	first, err := client.CreateSession(ctx, "student-1", "student-1:s0:s1", "{}")
	require.NoError(t, err)

	replay, err := client.CreateSession(ctx, "student-1", "student-1:s0:s1", "{}")
	assert.ErrorIs(t, err, ErrIdempotentReplay)
	assert.Equal(t, first.ID, replay.ID)
}

func TestClient_SessionCount_CountsOnlyServedOrCompleted(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	planned, err := client.CreateSession(ctx, "student-1", "", "{}")
	require.NoError(t, err)

	count, err := client.SessionCount(ctx, "student-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count, "a planned session does not advance the phase count")

	require.NoError(t, client.MarkServed(ctx, planned.ID))
	count, err = client.SessionCount(ctx, "student-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, client.CompleteSession(ctx, planned.ID))
	count, err = client.SessionCount(ctx, "student-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestClient_CreateSession_ConcurrentAssignsUniqueSequences(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	seqs := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := client.CreateSession(ctx, "student-race", "", "{}")
			require.NoError(t, err)
			seqs[i] = s.SessSeq
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool, n)
	for _, s := range seqs {
		assert.False(t, seen[s], "sequence %d assigned more than once", s)
		seen[s] = true
	}
	assert.Len(t, seen, n)
}

func TestClient_CreateSessionPack_LeavesSessionPlanned(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	s, err := client.CreateSession(ctx, "student-1", "", "{}")
	require.NoError(t, err)

	pack, err := client.CreateSessionPack(ctx, s.ID, []string{"q1", "q2"}, `{"strategy":"standard"}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2"}, pack.QuestionIDs)

	got, err := client.GetSessionPack(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, pack.QuestionIDs, got.QuestionIDs)

	latest, err := client.LatestSession(ctx, "student-1")
	require.NoError(t, err)
	assert.Equal(t, SessionPlanned, latest.Status)
}

func TestClient_MarkServed_TransitionsPlannedToServed(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	s, err := client.CreateSession(ctx, "student-1", "", "{}")
	require.NoError(t, err)

	require.NoError(t, client.MarkServed(ctx, s.ID))

	latest, err := client.LatestSession(ctx, "student-1")
	require.NoError(t, err)
	assert.Equal(t, SessionServed, latest.Status)
	require.NotNil(t, latest.StartedAt)

	// Idempotent: calling again on an already-served session is a no-op.
	require.NoError(t, client.MarkServed(ctx, s.ID))
}
