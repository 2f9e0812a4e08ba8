package store

import (
	"context"
	"testing"

	"github.com/adaptivecat/planner/ent/pyqquestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_QualifyingPYQPool_FiltersOnEligibility(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	qualified := PYQQuestion{
		ID: "pyq-1", Stem: "...", Category: "Arithmetic", Subcategory: "Number Systems",
		DifficultyBand: Medium, IsActive: true, QualityVerified: true,
		ProblemStructure: "ratio-based", ConceptKeywords: []string{"hcf"},
	}
	notVerified := qualified
	notVerified.ID = "pyq-2"
	notVerified.QualityVerified = false

	missingStructure := qualified
	missingStructure.ID = "pyq-3"
	missingStructure.ProblemStructure = ""

	for _, p := range []PYQQuestion{qualified, notVerified, missingStructure} {
		require.NoError(t, upsertPYQForTest(ctx, client, p))
	}

	pool, err := client.QualifyingPYQPool(ctx, "Arithmetic", "Number Systems")
	require.NoError(t, err)
	require.Len(t, pool, 1)
	assert.Equal(t, "pyq-1", pool[0].ID)
}

// upsertPYQForTest writes a PYQQuestion row directly through Ent for
// test fixtures; production code never needs to write PYQ rows (they
// are ingested out of band), so the store package exposes no public
// upsert for this type.
func upsertPYQForTest(ctx context.Context, c *Client, p PYQQuestion) error {
	create := c.PYQQuestion.Create().
		SetID(p.ID).
		SetStem(p.Stem).
		SetCategory(p.Category).
		SetSubcategory(p.Subcategory).
		SetIsActive(p.IsActive).
		SetQualityVerified(p.QualityVerified)
	if p.DifficultyBand != "" {
		create = create.SetDifficultyBand(pyqquestion.DifficultyBand(p.DifficultyBand))
	}
	if p.ProblemStructure != "" {
		create = create.SetProblemStructure(p.ProblemStructure)
	}
	if len(p.ConceptKeywords) > 0 {
		create = create.SetConceptKeywords(marshalStrings(p.ConceptKeywords))
	}
	_, err := create.Save(ctx)
	return err
}
