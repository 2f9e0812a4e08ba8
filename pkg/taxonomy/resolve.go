package taxonomy

import (
	"context"
	"fmt"
)

// ErrUnresolved is returned by Resolve when none of the three resolution
// steps could place the classification.
var ErrUnresolved = fmt.Errorf("taxonomy: could not resolve canonical classification")

// Resolve implements the three-step resolution policy of spec.md §4.1:
//
//  1. Try a context-aware semantic match via m.
//  2. If it returns a full triple, accept it.
//  3. Otherwise, match subcategory and type independently and derive the
//     category deterministically from the (sub, type) pair.
func (r *Registry) Resolve(ctx context.Context, m Matcher, stem, freeCategory, freeSubcategory, freeType string) (Triple, error) {
	if m != nil {
		matched, err := m.SemanticMatch(ctx, stem, freeCategory, freeSubcategory, freeType)
		if err != nil {
			return Triple{}, fmt.Errorf("semantic match: %w", err)
		}
		if !matched.IsZero() && r.ValidPath(matched.Category, matched.Subcategory, matched.TypeOfQuestion) {
			return matched, nil
		}
		// A partial match from the matcher still seeds step 3 below.
		if matched.Subcategory != "" {
			freeSubcategory = matched.Subcategory
		}
		if matched.TypeOfQuestion != "" {
			freeType = matched.TypeOfQuestion
		}
	}

	normalized := r.Normalize(freeCategory, freeSubcategory, freeType)
	if normalized.Subcategory == "" || normalized.TypeOfQuestion == "" {
		return Triple{}, ErrUnresolved
	}

	category := r.LookupCategoryBy(normalized.Subcategory, normalized.TypeOfQuestion)
	if category == "" {
		return Triple{}, ErrUnresolved
	}

	return Triple{Category: category, Subcategory: normalized.Subcategory, TypeOfQuestion: normalized.TypeOfQuestion}, nil
}
