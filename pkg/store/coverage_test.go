package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_UpsertCoverage_IncrementSemantics(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	combo := Combination{Subcategory: "Number Systems", TypeOfQuestion: "Basic Operations"}

	require.NoError(t, client.UpsertCoverage(ctx, "student-1", combo, 1))
	seen, err := client.GetSeenCombinations(ctx, "student-1")
	require.NoError(t, err)
	row := seen[combo]
	assert.Equal(t, 1, row.SessionsSeen)
	assert.Equal(t, 1, row.FirstSeenSession)
	assert.Equal(t, 1, row.LastSeenSession)

	require.NoError(t, client.UpsertCoverage(ctx, "student-1", combo, 3))
	seen, err = client.GetSeenCombinations(ctx, "student-1")
	require.NoError(t, err)
	row = seen[combo]
	assert.Equal(t, 2, row.SessionsSeen)
	assert.Equal(t, 1, row.FirstSeenSession)
	assert.Equal(t, 3, row.LastSeenSession)
}

func TestClient_GetSeenCombinations_Empty(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	seen, err := client.GetSeenCombinations(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, seen)
}
