package planner

// CategoryMastery is a category's average mastery across its
// subcategories, used only by the Phase C quota-shift rule.
type CategoryMastery struct {
	Category string
	Average  float64
}

// categoryQuotaShiftThreshold gates the strongest-category quota
// reduction, per spec.md §4.7.
const categoryQuotaShiftThreshold = 0.70

// CategoryQuotas returns the per-category quota for phase, applying the
// Phase C ±1 shift: +1 to the single weakest category, -1 from the
// strongest category when its average mastery exceeds
// categoryQuotaShiftThreshold and its baseline quota is at least 2,
// per spec.md §4.7.
func CategoryQuotas(phase Phase, averages []CategoryMastery) map[string]int {
	quotas := make(map[string]int, len(BaselineCategoryQuota))
	for cat, q := range BaselineCategoryQuota {
		quotas[cat] = q
	}
	if phase != PhaseC || len(averages) == 0 {
		return quotas
	}

	weakest, strongest := averages[0], averages[0]
	for _, a := range averages {
		if a.Average < weakest.Average {
			weakest = a
		}
		if a.Average > strongest.Average {
			strongest = a
		}
	}

	if strongest.Average > categoryQuotaShiftThreshold && BaselineCategoryQuota[strongest.Category] >= 2 && strongest.Category != weakest.Category {
		quotas[weakest.Category]++
		quotas[strongest.Category]--
	}
	return quotas
}
