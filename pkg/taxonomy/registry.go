package taxonomy

import (
	"fmt"
	"strings"
	"sync"
)

// Registry is the authoritative closed set of classifications. It is
// loaded once and cached, per spec.md §3 ("Ownership: the application;
// loaded once and cached").
type Registry struct {
	mu sync.RWMutex

	categories        []string
	subcategories     map[string][]string // category -> subcategories
	types             map[string][]string // subcategory -> types
	categoryOf        map[string]string   // lowercase subcategory -> category
	subcategoryByName map[string]string   // lowercase subcategory -> canonical subcategory
	typeByName        map[string]string   // lowercase "subcategory|type" -> canonical type
	categoryByName    map[string]string   // lowercase category -> canonical category
}

// New builds a Registry from the embedded canonical taxonomy data.
func New() *Registry {
	r := &Registry{
		categories:        append([]string(nil), categoryOrder...),
		subcategories:     make(map[string][]string, len(subcategoriesByCategory)),
		types:             make(map[string][]string, len(typesBySubcategory)),
		categoryOf:        make(map[string]string),
		subcategoryByName: make(map[string]string),
		typeByName:        make(map[string]string),
		categoryByName:    make(map[string]string),
	}

	for cat, subs := range subcategoriesByCategory {
		r.subcategories[cat] = append([]string(nil), subs...)
		r.categoryByName[strings.ToLower(cat)] = cat
		for _, sub := range subs {
			r.categoryOf[strings.ToLower(sub)] = cat
			r.subcategoryByName[strings.ToLower(sub)] = sub
		}
	}
	for sub, types := range typesBySubcategory {
		r.types[sub] = append([]string(nil), types...)
		for _, t := range types {
			r.typeByName[strings.ToLower(sub)+"|"+strings.ToLower(t)] = t
		}
	}

	return r
}

// Categories returns the canonical category list in fixed order.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.categories...)
}

// Subcategories returns the canonical subcategories of a category.
func (r *Registry) Subcategories(category string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.subcategories[category]...)
}

// RenderContext flattens the closed set into "Category > Subcategory >
// {Type, Type, ...}" lines, the taxonomy-as-prompt-context shape both
// C1's semantic matcher and C4's consolidated-analysis stage embed in
// their LLM calls (spec.md §4.1, §4.4 stage 1).
func (r *Registry) RenderContext() string {
	var b strings.Builder
	for _, cat := range r.Categories() {
		for _, sub := range r.Subcategories(cat) {
			fmt.Fprintf(&b, "%s > %s > {%s}\n", cat, sub, strings.Join(r.Types(sub), ", "))
		}
	}
	return b.String()
}

// Types returns the canonical types of a subcategory.
func (r *Registry) Types(subcategory string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.types[subcategory]...)
}

// ValidPath reports whether (category, subcategory, type) resolves to a
// valid path in the canonical taxonomy. Comparison is exact (canonical
// names, not free text) — callers should normalize first via Normalize.
func (r *Registry) ValidPath(category, subcategory, typeOfQuestion string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs, ok := r.subcategories[category]
	if !ok {
		return false
	}
	found := false
	for _, s := range subs {
		if s == subcategory {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, t := range r.types[subcategory] {
		if t == typeOfQuestion {
			return true
		}
	}
	return false
}

// CategoryOf returns the category owning subcategory, or "" if
// subcategory is not in the canonical set. Unlike LookupCategoryBy it
// does not require a type_of_question to also match — callers that
// already trust a stored subcategory (e.g. the planner's category
// quota aggregation) use this instead.
func (r *Registry) CategoryOf(subcategory string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.categoryOf[strings.ToLower(subcategory)]
}

// LookupCategoryBy is the deterministic reverse lookup: given a
// subcategory and type, derive the category. Returns "" if no such
// subcategory exists in the canonical set (spec.md §4.1).
func (r *Registry) LookupCategoryBy(subcategory, typeOfQuestion string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cat, ok := r.categoryOf[strings.ToLower(subcategory)]
	if !ok {
		return ""
	}
	// The type must also belong to the subcategory to accept the pair.
	canonicalSub := r.subcategoryByName[strings.ToLower(subcategory)]
	for _, t := range r.types[canonicalSub] {
		if strings.EqualFold(t, typeOfQuestion) {
			return cat
		}
	}
	return ""
}

// Normalize case-corrects free-text legs against the stored canonical
// names, per spec.md §4.1 ("Case mismatches are normalized post-hoc
// against the stored canonical names"). A leg normalizes to "" if it
// does not match any canonical name.
func (r *Registry) Normalize(category, subcategory, typeOfQuestion string) Triple {
	r.mu.RLock()
	defer r.mu.RUnlock()

	canonicalCategory := r.categoryByName[strings.ToLower(category)]
	canonicalSub := r.subcategoryByName[strings.ToLower(subcategory)]
	canonicalType := ""
	if canonicalSub != "" {
		canonicalType = r.typeByName[strings.ToLower(canonicalSub)+"|"+strings.ToLower(typeOfQuestion)]
	}
	return Triple{Category: canonicalCategory, Subcategory: canonicalSub, TypeOfQuestion: canonicalType}
}
