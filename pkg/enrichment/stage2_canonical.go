package enrichment

import (
	"context"

	"github.com/adaptivecat/planner/pkg/taxonomy"
)

// runCanonicalMatch resolves the stage-1 free-text classification onto
// the canonical taxonomy, per spec.md §4.4 stage 2 / §4.1's three-step
// resolution policy. A canonical miss is the "Canonical miss" failure
// kind of §7: the record is left without a resolved triple and the
// pipeline still persists whatever stage 1 produced.
func runCanonicalMatch(ctx context.Context, reg *taxonomy.Registry, matcher taxonomy.Matcher, stem string, a analysisResponse) (taxonomy.Triple, *StageError) {
	triple, err := reg.Resolve(ctx, matcher, stem, a.Category, a.Subcategory, a.TypeOfQuestion)
	if err != nil {
		return taxonomy.Triple{}, &StageError{Stage: "canonical_matching", Kind: KindCanonicalMiss, Detail: err.Error()}
	}
	return triple, nil
}
