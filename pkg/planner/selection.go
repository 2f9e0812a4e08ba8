package planner

import (
	"fmt"
	"math"
	"sort"

	"github.com/adaptivecat/planner/pkg/candidates"
	"github.com/adaptivecat/planner/pkg/store"
)

// bandOrder is the order bands are filled in during the primary
// selection pass, per spec.md §4.7 step 4.
var bandOrder = []store.DifficultyBand{store.Hard, store.Easy, store.Medium}

// backfillOrder is the order bands are pulled from during backfill,
// per spec.md §4.7 step 5.
var backfillOrder = []store.DifficultyBand{store.Medium, store.Easy, store.Hard}

// WeaknessFunc classifies a subcategory's weakness priority, backed by
// C6's mastery readiness.
type WeaknessFunc func(subcategory string) WeaknessPriority

// selectionResult carries the selection outcome plus every piece of
// telemetry spec.md §4.7 requires.
type selectionResult struct {
	ids                     []string
	actualMix               DifficultyMix
	categoryDist            map[string]int
	subcategoryDist         map[string]int
	typeDist                map[string]int
	coverageNew             int
	coverageSeen            int
	backfillNotes           []string
	diversityCapUsed        int
	llmAssessmentRespected  bool
}

// selectState tracks running counters during selection.
type selectState struct {
	selected     map[string]candidates.Candidate
	order        []string
	categoryUsed map[string]int
	subUsed      map[string]int
	typeUsed     map[string]int
}

func newSelectState() *selectState {
	return &selectState{
		selected:     map[string]candidates.Candidate{},
		categoryUsed: map[string]int{},
		subUsed:      map[string]int{},
		typeUsed:     map[string]int{},
	}
}

func (s *selectState) typeKey(c candidates.Candidate) string {
	return c.Question.Subcategory + "::" + c.Question.TypeOfQuestion
}

func (s *selectState) add(c candidates.Candidate) {
	s.selected[c.Question.ID] = c
	s.order = append(s.order, c.Question.ID)
	s.categoryUsed[c.Question.Category]++
	s.subUsed[c.Question.Subcategory]++
	s.typeUsed[s.typeKey(c)]++
}

func (s *selectState) has(id string) bool {
	_, ok := s.selected[id]
	return ok
}

func (s *selectState) categoryFull(category string, quotas map[string]int) bool {
	quota, ok := quotas[category]
	if !ok {
		return true
	}
	return s.categoryUsed[category] >= quota
}

func (s *selectState) withinDiversityCap(c candidates.Candidate, level capLevel) bool {
	return s.subUsed[c.Question.Subcategory] < level.sub && s.typeUsed[s.typeKey(c)] < level.typ
}

// selectPack runs the full phase-aware selection algorithm of spec.md
// §4.7 steps 3-6 over pool, returning the final 12-question pack and
// its telemetry. quotas is the already-shifted per-category quota map
// (see CategoryQuotas). weaknessOf classifies a subcategory's priority
// for tie-breaking. ladder is the diversity-cap relaxation ladder,
// strict first.
func selectPack(pool []candidates.Candidate, phase Phase, quotas map[string]int, weaknessOf WeaknessFunc, ladder []capLevel) selectionResult {
	target := TargetMix(phase)
	llmRespected := false

	if phase == PhaseA {
		var hasEasy, hasHard bool
		for _, c := range pool {
			switch c.Question.DifficultyBand {
			case store.Easy:
				hasEasy = true
			case store.Hard:
				hasHard = true
			}
		}
		if !hasEasy && !hasHard {
			// Quota-respect policy: the planner never forges a
			// classification to meet a quota (spec.md §4.7).
			target = DifficultyMix{Easy: 0, Medium: PackSize, Hard: 0}
			llmRespected = true
		}
	}

	byBand := map[store.DifficultyBand][]candidates.Candidate{}
	for _, c := range pool {
		byBand[c.Question.DifficultyBand] = append(byBand[c.Question.DifficultyBand], c)
	}
	for band := range byBand {
		sortCandidates(byBand[band], weaknessOf)
		if phase == PhaseB {
			// Phase B tie-break: weak-area first, then coverage-new
			// before coverage-seen within the same weakness priority.
			cs := byBand[band]
			sort.SliceStable(cs, func(i, j int) bool {
				wi, wj := weaknessOf(cs[i].Question.Subcategory), weaknessOf(cs[j].Question.Subcategory)
				if wi != wj {
					return wi < wj
				}
				return cs[i].CoverageNew && !cs[j].CoverageNew
			})
		}
	}

	state := newSelectState()
	capUsed := ladder[0]

	bandTargets := map[store.DifficultyBand]int{store.Easy: target.Easy, store.Medium: target.Medium, store.Hard: target.Hard}

	for _, band := range bandOrder {
		need := bandTargets[band]
		fillBand(state, byBand[band], need, quotas, capUsed, phase)
	}

	// Backfill: relax caps monotonically 3 -> 5 -> unlimited only if
	// the pack is still short of PackSize, per spec.md §4.7 step 5.
	var backfillNotes []string
	for _, relaxedCap := range ladder {
		if len(state.order) >= PackSize {
			break
		}
		if relaxedCap != capUsed {
			capUsed = relaxedCap
			backfillNotes = append(backfillNotes, relaxationNote(relaxedCap.sub))
		}
		for _, band := range backfillOrder {
			if len(state.order) >= PackSize {
				break
			}
			remaining := PackSize - len(state.order)
			fillBand(state, byBand[band], remaining, quotas, capUsed, phase)
		}
	}

	final := make([]candidates.Candidate, 0, len(state.order))
	for _, id := range state.order {
		final = append(final, state.selected[id])
	}
	if len(final) > PackSize {
		final = final[:PackSize]
	}

	orderFinalPresentation(final)

	result := selectionResult{
		categoryDist:           map[string]int{},
		subcategoryDist:        map[string]int{},
		typeDist:               map[string]int{},
		backfillNotes:          backfillNotes,
		diversityCapUsed:       capUsed.sub,
		llmAssessmentRespected: llmRespected,
	}
	for _, c := range final {
		result.ids = append(result.ids, c.Question.ID)
		switch c.Question.DifficultyBand {
		case store.Easy:
			result.actualMix.Easy++
		case store.Medium:
			result.actualMix.Medium++
		case store.Hard:
			result.actualMix.Hard++
		}
		result.categoryDist[c.Question.Category]++
		result.subcategoryDist[c.Question.Subcategory]++
		result.typeDist[state.typeKey(c)]++
		if c.CoverageNew {
			result.coverageNew++
		} else {
			result.coverageSeen++
		}
	}
	return result
}

// fillBand greedily selects up to need more candidates from band's
// sorted list, skipping full category quotas and diversity-cap
// violations, preferring coverage-new candidates (Phase A only) before
// coverage-seen ones.
func fillBand(state *selectState, band []candidates.Candidate, need int, quotas map[string]int, level capLevel, phase Phase) {
	if need <= 0 {
		return
	}
	var coverageNew, coverageSeen []candidates.Candidate
	for _, c := range band {
		if state.has(c.Question.ID) {
			continue
		}
		if phase == PhaseA && c.CoverageNew {
			coverageNew = append(coverageNew, c)
		} else {
			coverageSeen = append(coverageSeen, c)
		}
	}

	taken := 0
	for _, group := range [][]candidates.Candidate{coverageNew, coverageSeen} {
		for _, c := range group {
			if taken >= need {
				return
			}
			if state.has(c.Question.ID) {
				continue
			}
			if state.categoryFull(c.Question.Category, quotas) {
				continue
			}
			if !state.withinDiversityCap(c, level) {
				continue
			}
			state.add(c)
			taken++
		}
	}
}

// sortCandidates orders a band's candidates by the tie-break rule of
// spec.md §4.7 step 4: (weakness_priority, -pyq_frequency_score,
// type_token), with RankKey as the final deterministic tiebreak.
func sortCandidates(cs []candidates.Candidate, weaknessOf WeaknessFunc) {
	sort.SliceStable(cs, func(i, j int) bool {
		wi := weaknessOf(cs[i].Question.Subcategory)
		wj := weaknessOf(cs[j].Question.Subcategory)
		if wi != wj {
			return wi < wj
		}
		pi, pj := pyqOrZero(cs[i].Question), pyqOrZero(cs[j].Question)
		if pi != pj {
			return pi > pj
		}
		ti, tj := cs[i].Question.TypeOfQuestion, cs[j].Question.TypeOfQuestion
		if ti != tj {
			return ti < tj
		}
		return cs[i].RankKey < cs[j].RankKey
	})
}

func pyqOrZero(q store.Question) float64 {
	if q.PYQFrequencyScore == nil {
		return 0
	}
	return *q.PYQFrequencyScore
}

// orderFinalPresentation applies spec.md §4.7 step 6: order the final
// 12 by (difficulty_order [Easy, Medium, Hard], subcategory,
// pyq_frequency_score descending). Questions sharing a band and a
// subcategory therefore sit next to each other; the sort is stable, so
// full ties keep their selection order.
func orderFinalPresentation(cs []candidates.Candidate) {
	order := map[store.DifficultyBand]int{store.Easy: 0, store.Medium: 1, store.Hard: 2}
	sort.SliceStable(cs, func(i, j int) bool {
		oi, oj := order[cs[i].Question.DifficultyBand], order[cs[j].Question.DifficultyBand]
		if oi != oj {
			return oi < oj
		}
		if cs[i].Question.Subcategory != cs[j].Question.Subcategory {
			return cs[i].Question.Subcategory < cs[j].Question.Subcategory
		}
		return pyqOrZero(cs[i].Question) > pyqOrZero(cs[j].Question)
	})
}

func relaxationNote(subCap int) string {
	switch subCap {
	case MaxPerSubcategoryRelaxed:
		return "diversity cap relaxed 3 -> 5"
	case math.MaxInt32:
		return "diversity cap relaxed to unlimited"
	default:
		return fmt.Sprintf("diversity cap relaxed to %d", subCap)
	}
}
