package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetMastery_DefaultsToZeroRow(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	row, err := client.GetMastery(ctx, "student-1", "Number Systems", "")
	require.NoError(t, err)
	assert.Equal(t, 0, row.ExposureCount)
	assert.Equal(t, "student-1", row.StudentID)
}

func TestClient_UpsertMastery_CreateThenUpdate(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	row := MasteryRow{
		StudentID:       "student-1",
		Subcategory:     "Number Systems",
		AccuracyMedium:  0.6,
		ExposureCount:   3,
		MasteryPct:      0.4,
		LastActivityAt:  time.Now(),
	}
	require.NoError(t, client.UpsertMastery(ctx, row))

	got, err := client.GetMastery(ctx, "student-1", "Number Systems", "")
	require.NoError(t, err)
	assert.Equal(t, 3, got.ExposureCount)
	assert.InDelta(t, 0.4, got.MasteryPct, 1e-9)

	row.ExposureCount = 4
	row.MasteryPct = 0.55
	require.NoError(t, client.UpsertMastery(ctx, row))

	got, err = client.GetMastery(ctx, "student-1", "Number Systems", "")
	require.NoError(t, err)
	assert.Equal(t, 4, got.ExposureCount)
	assert.InDelta(t, 0.55, got.MasteryPct, 1e-9)

	all, err := client.AllMasteryForStudent(ctx, "student-1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
