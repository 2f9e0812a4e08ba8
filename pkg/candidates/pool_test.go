package candidates

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/adaptivecat/planner/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	questions   []store.Question
	recent      map[string]bool
	seen        map[store.Combination]store.Coverage
	lastAttempt map[string]time.Time
}

func (f *fakeStore) ActiveQuestions(_ context.Context, filt store.QuestionFilter) ([]store.Question, error) {
	var out []store.Question
	for _, q := range f.questions {
		if filt.DifficultyBand != "" && q.DifficultyBand != filt.DifficultyBand {
			continue
		}
		if filt.IsActive != nil && q.IsActive != *filt.IsActive {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeStore) RecentQuestionsFor(_ context.Context, _ string, _ int) (map[string]bool, error) {
	return f.recent, nil
}

func (f *fakeStore) GetSeenCombinations(_ context.Context, _ string) (map[store.Combination]store.Coverage, error) {
	return f.seen, nil
}

func (f *fakeStore) LastAttemptTimes(_ context.Context, _ string, _ time.Time) (map[string]time.Time, error) {
	return f.lastAttempt, nil
}

func ptr(f float64) *float64 { return &f }

func makeQuestions(n int, band store.DifficultyBand, pyq *float64, subPrefix string) []store.Question {
	out := make([]store.Question, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, store.Question{
			ID:                fmt.Sprintf("%s-%s-%d", subPrefix, string(band), i),
			IsActive:          true,
			DifficultyBand:    band,
			Subcategory:       subPrefix,
			TypeOfQuestion:    "General",
			PYQFrequencyScore: pyq,
		})
	}
	return out
}

func TestBuildPool_FeasibleAtBaseRung(t *testing.T) {
	high := ptr(1.5)
	low := ptr(0.3)
	var qs []store.Question
	qs = append(qs, makeQuestions(10, store.Easy, low, "A")...)
	qs = append(qs, makeQuestions(10, store.Medium, low, "A")...)
	qs = append(qs, makeQuestions(10, store.Hard, low, "A")...)
	qs[0].PYQFrequencyScore = high
	qs[1].PYQFrequencyScore = high

	fs := &fakeStore{questions: qs, recent: map[string]bool{}, seen: map[store.Combination]store.Coverage{}}
	p := New(fs, CooldownDays{})

	pool, err := p.BuildPool(context.Background(), "student-1", 5, 3)
	require.NoError(t, err)
	assert.True(t, pool.Feasible)
	assert.Equal(t, 1, pool.Rung)
}

func TestBuildPool_ExpandsLadderWhenBandThin(t *testing.T) {
	high := ptr(1.5)
	var qs []store.Question
	qs = append(qs, makeQuestions(2, store.Easy, high, "A")...) // below MinEasy at any rung
	qs = append(qs, makeQuestions(10, store.Medium, high, "A")...)
	qs = append(qs, makeQuestions(10, store.Hard, high, "A")...)

	fs := &fakeStore{questions: qs, recent: map[string]bool{}, seen: map[store.Combination]store.Coverage{}}
	p := New(fs, CooldownDays{})

	pool, err := p.BuildPool(context.Background(), "student-1", 5, 3)
	require.NoError(t, err)
	assert.False(t, pool.Feasible) // 2 Easy is never enough regardless of rung
	assert.Equal(t, Rungs[len(Rungs)-1], pool.Rung)
}

func TestBuildPool_ColdStartIsDiversityFirst(t *testing.T) {
	high := ptr(1.5)
	var qs []store.Question
	for i := 0; i < 5; i++ {
		qs = append(qs, makeQuestions(1, store.Medium, high, fmt.Sprintf("sub%d", i))...)
	}

	fs := &fakeStore{questions: qs, recent: map[string]bool{}, seen: map[store.Combination]store.Coverage{}}
	p := New(fs, CooldownDays{})

	pool, err := p.BuildPool(context.Background(), "student-new", 1, 0)
	require.NoError(t, err)
	assert.True(t, pool.ColdStart)
	assert.Len(t, pool.Candidates, 5)
}

func TestBuildPool_ExcludesCooledQuestionsWhenPoolStaysFeasible(t *testing.T) {
	high := ptr(1.5)
	var qs []store.Question
	qs = append(qs, makeQuestions(10, store.Easy, high, "A")...)
	qs = append(qs, makeQuestions(10, store.Medium, high, "A")...)
	qs = append(qs, makeQuestions(10, store.Hard, high, "A")...)
	cooledID := qs[len(qs)-1].ID // last Hard question

	fs := &fakeStore{
		questions:   qs,
		recent:      map[string]bool{},
		seen:        map[store.Combination]store.Coverage{},
		lastAttempt: map[string]time.Time{cooledID: time.Now().Add(-1 * 24 * time.Hour)},
	}
	p := New(fs, CooldownDays{Hard: 7})

	pool, err := p.BuildPool(context.Background(), "student-1", 5, 3)
	require.NoError(t, err)
	assert.True(t, pool.Feasible)
	assert.Contains(t, pool.CooldownsApplied, "Hard")
	for _, c := range pool.Candidates {
		assert.NotEqual(t, cooledID, c.Question.ID)
	}
}

func TestBuildPool_RelaxesCooldownWhenItWouldMakePoolInfeasible(t *testing.T) {
	high := ptr(1.5)
	var qs []store.Question
	qs = append(qs, makeQuestions(10, store.Easy, high, "A")...)
	qs = append(qs, makeQuestions(10, store.Medium, high, "A")...)
	qs = append(qs, makeQuestions(3, store.Hard, high, "A")...) // exactly MinHard

	lastAttempt := map[string]time.Time{}
	now := time.Now()
	for _, q := range qs {
		if q.DifficultyBand == store.Hard {
			lastAttempt[q.ID] = now.Add(-1 * 24 * time.Hour) // every Hard question cooled
		}
	}

	fs := &fakeStore{
		questions:   qs,
		recent:      map[string]bool{},
		seen:        map[store.Combination]store.Coverage{},
		lastAttempt: lastAttempt,
	}
	p := New(fs, CooldownDays{Hard: 7})

	pool, err := p.BuildPool(context.Background(), "student-1", 5, 3)
	require.NoError(t, err)
	assert.True(t, pool.Feasible, "cooldown must relax rather than leave the pool infeasible")

	var hardCount int
	for _, c := range pool.Candidates {
		if c.Question.DifficultyBand == store.Hard {
			hardCount++
		}
	}
	assert.Equal(t, 3, hardCount)
}

func TestDeterministicOrdering_SameSeedSameOrder(t *testing.T) {
	ids := []string{"q1", "q2", "q3", "q4", "q5"}
	seed := Seed("student-1", 7)

	var first, second []uint64
	for _, id := range ids {
		first = append(first, rankKey(id, seed))
	}
	for _, id := range ids {
		second = append(second, rankKey(id, seed))
	}
	assert.Equal(t, first, second)

	otherSeed := Seed("student-1", 8)
	var third []uint64
	for _, id := range ids {
		third = append(third, rankKey(id, otherSeed))
	}
	assert.NotEqual(t, first, third)
}
