package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryQuotas_PhaseAAndBNeverShift(t *testing.T) {
	averages := []CategoryMastery{
		{Category: "Arithmetic", Average: 0.95},
		{Category: "Modern Math", Average: 0.10},
	}
	for _, phase := range []Phase{PhaseA, PhaseB} {
		got := CategoryQuotas(phase, averages)
		assert.Equal(t, BaselineCategoryQuota, got, "phase %s must never shift quotas", phase)
	}
}

func TestCategoryQuotas_PhaseCShiftsWeakestUpStrongestDown(t *testing.T) {
	averages := []CategoryMastery{
		{Category: "Arithmetic", Average: 0.95}, // baseline 4, strongest
		{Category: "Algebra", Average: 0.50},
		{Category: "Geometry and Mensuration", Average: 0.55},
		{Category: "Number System", Average: 0.60},
		{Category: "Modern Math", Average: 0.10}, // weakest
	}

	got := CategoryQuotas(PhaseC, averages)

	assert.Equal(t, BaselineCategoryQuota["Arithmetic"]-1, got["Arithmetic"])
	assert.Equal(t, BaselineCategoryQuota["Modern Math"]+1, got["Modern Math"])
	assert.Equal(t, BaselineCategoryQuota["Algebra"], got["Algebra"])
	assert.Equal(t, BaselineCategoryQuota["Geometry and Mensuration"], got["Geometry and Mensuration"])
	assert.Equal(t, BaselineCategoryQuota["Number System"], got["Number System"])

	var total int
	for _, q := range got {
		total += q
	}
	assert.Equal(t, PackSize, total, "the +1/-1 shift must keep the pack size total unchanged")
}

func TestCategoryQuotas_NoShiftWhenStrongestAtOrBelowThreshold(t *testing.T) {
	averages := []CategoryMastery{
		{Category: "Arithmetic", Average: 0.70}, // exactly at threshold, not above it
		{Category: "Modern Math", Average: 0.10},
	}

	got := CategoryQuotas(PhaseC, averages)
	assert.Equal(t, BaselineCategoryQuota, got)
}

func TestCategoryQuotas_NoShiftWhenStrongestBaselineQuotaBelowTwo(t *testing.T) {
	averages := []CategoryMastery{
		{Category: "Modern Math", Average: 0.95}, // baseline 1, can't absorb a -1
		{Category: "Algebra", Average: 0.10},
	}

	got := CategoryQuotas(PhaseC, averages)
	assert.Equal(t, BaselineCategoryQuota, got)
}

func TestCategoryQuotas_NoShiftWhenWeakestAndStrongestAreSameCategory(t *testing.T) {
	averages := []CategoryMastery{
		{Category: "Arithmetic", Average: 0.80},
	}

	got := CategoryQuotas(PhaseC, averages)
	assert.Equal(t, BaselineCategoryQuota, got)
}

func TestCategoryQuotas_EmptyAveragesReturnsBaseline(t *testing.T) {
	got := CategoryQuotas(PhaseC, nil)
	assert.Equal(t, BaselineCategoryQuota, got)
}
