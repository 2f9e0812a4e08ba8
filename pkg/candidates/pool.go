package candidates

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/adaptivecat/planner/pkg/store"
)

// Store is the subset of pkg/store the candidate provider depends on.
type Store interface {
	ActiveQuestions(ctx context.Context, f store.QuestionFilter) ([]store.Question, error)
	RecentQuestionsFor(ctx context.Context, studentID string, lastK int) (map[string]bool, error)
	GetSeenCombinations(ctx context.Context, studentID string) (map[store.Combination]store.Coverage, error)
	LastAttemptTimes(ctx context.Context, studentID string, since time.Time) (map[string]time.Time, error)
}

// Provider builds candidate pools for the planner.
type Provider struct {
	store     Store
	cooldowns CooldownDays
	baseK     int
	rungs     []int
	now       func() time.Time
}

// Option configures a Provider at construction time.
type Option func(*Provider)

// WithLadder overrides the per-band pool-size ladder (POOL_K_PER_BAND,
// POOL_LADDER, spec.md §6). sizes are the absolute per-band pool sizes
// of each rung; they are normalized to whole multiples of baseK.
func WithLadder(baseK int, sizes []int) Option {
	return func(p *Provider) {
		if baseK > 0 {
			p.baseK = baseK
		}
		if len(sizes) == 0 {
			return
		}
		rungs := make([]int, 0, len(sizes))
		for _, size := range sizes {
			r := size / p.baseK
			if r < 1 {
				r = 1
			}
			rungs = append(rungs, r)
		}
		p.rungs = rungs
	}
}

// New builds a Provider over store, applying cooldowns as the
// difficulty-specific exclusion window of spec.md §4.7/§6.
func New(s Store, cooldowns CooldownDays, opts ...Option) *Provider {
	p := &Provider{
		store:     s,
		cooldowns: cooldowns,
		baseK:     BaseK,
		rungs:     Rungs,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BuildPool returns a feasibility-checked, deterministically-ordered
// pool for (studentID, sessSeq), expanding the per-band ladder
// BaseK→2×BaseK→4×BaseK until the preflight passes or the ladder is
// exhausted, per spec.md §4.8.
func (p *Provider) BuildPool(ctx context.Context, studentID string, sessSeq int, priorSessionCount int) (Pool, error) {
	if priorSessionCount == 0 {
		return p.coldStartPool(ctx, studentID, sessSeq)
	}

	isActive := true
	seed := Seed(studentID, sessSeq)

	byBand := map[store.DifficultyBand][]store.Question{}
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, band := range []store.DifficultyBand{store.Easy, store.Medium, store.Hard} {
		band := band
		g.Go(func() error {
			rows, err := p.store.ActiveQuestions(gctx, store.QuestionFilter{DifficultyBand: band, IsActive: &isActive})
			if err != nil {
				return fmt.Errorf("candidates: active questions for band %s: %w", band, err)
			}
			sortByRank(rows, seed)
			mu.Lock()
			byBand[band] = rows
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Pool{}, err
	}

	recent, err := p.store.RecentQuestionsFor(ctx, studentID, RecentSessionWindow)
	if err != nil {
		return Pool{}, fmt.Errorf("candidates: recent questions for %s: %w", studentID, err)
	}
	seen, err := p.store.GetSeenCombinations(ctx, studentID)
	if err != nil {
		return Pool{}, fmt.Errorf("candidates: seen combinations for %s: %w", studentID, err)
	}
	lastAttempt, err := p.store.LastAttemptTimes(ctx, studentID, p.earliestCooldownCutoff())
	if err != nil {
		return Pool{}, fmt.Errorf("candidates: last attempt times for %s: %w", studentID, err)
	}
	now := p.now()

	for _, rung := range p.rungs {
		excludeRecent, excludeCooldown := true, true
		pool, applied := assemblePool(byBand, seed, rung*p.baseK, recent, seen, excludeRecent, lastAttempt, p.cooldowns, excludeCooldown, now)
		if feasible(pool) {
			return Pool{Candidates: pool, Rung: rung, Feasible: true, CooldownsApplied: applied}, nil
		}
	}

	// Last resort within the top ladder rung: stop excluding recently
	// served questions, per spec.md §4.8 ("unless their exclusion would
	// make the pool infeasible after full ladder expansion").
	topRung := p.rungs[len(p.rungs)-1]
	pool, applied := assemblePool(byBand, seed, topRung*p.baseK, recent, seen, false, lastAttempt, p.cooldowns, true, now)
	if feasible(pool) {
		return Pool{Candidates: pool, Rung: topRung, Feasible: true, CooldownsApplied: applied}, nil
	}

	// Further last resort: a cooldown exclusion would make the pool
	// infeasible even after the recent-session exclusion was dropped, so
	// stop excluding cooled questions too, per spec.md §4.7's cooldown
	// clause ("unless doing so would make the pool infeasible").
	pool, applied = assemblePool(byBand, seed, topRung*p.baseK, recent, seen, false, lastAttempt, p.cooldowns, false, now)
	return Pool{Candidates: pool, Rung: topRung, Feasible: feasible(pool), CooldownsApplied: applied}, nil
}

// earliestCooldownCutoff returns the furthest-back timestamp any
// configured cooldown could reach, bounding the attempt-history scan
// LastAttemptTimes performs. All-zero cooldowns make this p.now().
func (p *Provider) earliestCooldownCutoff() time.Time {
	maxDays := p.cooldowns.Easy
	if p.cooldowns.Medium > maxDays {
		maxDays = p.cooldowns.Medium
	}
	if p.cooldowns.Hard > maxDays {
		maxDays = p.cooldowns.Hard
	}
	return p.now().AddDate(0, 0, -maxDays)
}

func assemblePool(
	byBand map[store.DifficultyBand][]store.Question,
	seed string,
	bandCap int,
	recent map[string]bool,
	seen map[store.Combination]store.Coverage,
	excludeRecent bool,
	lastAttempt map[string]time.Time,
	cooldowns CooldownDays,
	excludeCooldown bool,
	now time.Time,
) ([]Candidate, []string) {
	var out []Candidate
	cooledBands := map[store.DifficultyBand]bool{}
	for _, band := range []store.DifficultyBand{store.Easy, store.Medium, store.Hard} {
		rows := byBand[band]
		taken := 0
		for _, q := range rows {
			if taken >= bandCap {
				break
			}
			if excludeRecent && recent[q.ID] {
				continue
			}
			if excludeCooldown && cooledOut(q, lastAttempt, cooldowns, now) {
				cooledBands[band] = true
				continue
			}
			combo := store.Combination{Subcategory: q.Subcategory, TypeOfQuestion: q.TypeOfQuestion}
			_, wasSeen := seen[combo]
			out = append(out, Candidate{
				Question:    q,
				RankKey:     rankKey(q.ID, seed),
				CoverageNew: !wasSeen,
			})
			taken++
		}
	}

	var applied []string
	for _, band := range []store.DifficultyBand{store.Easy, store.Medium, store.Hard} {
		if cooledBands[band] {
			applied = append(applied, string(band))
		}
	}
	return out, applied
}

// cooledOut reports whether q is still within its band's cooldown
// window for this student, per spec.md §4.7's differential-cooldown
// clause (grounded on the original's apply_differential_cooldown_filter).
// A band with a zero or unconfigured cooldown never excludes.
func cooledOut(q store.Question, lastAttempt map[string]time.Time, cooldowns CooldownDays, now time.Time) bool {
	days := cooldowns.forBand(q.DifficultyBand)
	if days <= 0 {
		return false
	}
	last, attempted := lastAttempt[q.ID]
	if !attempted {
		return false
	}
	return now.Sub(last) < time.Duration(days)*24*time.Hour
}

// coldStartPool builds a diversity-first pool of ~100 distinct
// questions spanning as many (subcategory, type) pairs as possible,
// guaranteeing the PYQ minima up front, per spec.md §4.8.
func (p *Provider) coldStartPool(ctx context.Context, studentID string, sessSeq int) (Pool, error) {
	isActive := true
	rows, err := p.store.ActiveQuestions(ctx, store.QuestionFilter{IsActive: &isActive})
	if err != nil {
		return Pool{}, fmt.Errorf("candidates: active questions for cold start: %w", err)
	}

	seed := Seed(studentID, sessSeq)
	sortByRank(rows, seed)

	const coldStartTarget = 100
	seenCombo := map[store.Combination]bool{}
	var diverse []store.Question
	var rest []store.Question
	for _, q := range rows {
		combo := store.Combination{Subcategory: q.Subcategory, TypeOfQuestion: q.TypeOfQuestion}
		if !seenCombo[combo] {
			seenCombo[combo] = true
			diverse = append(diverse, q)
		} else {
			rest = append(rest, q)
		}
	}

	pool := diverse
	if len(pool) < coldStartTarget {
		need := coldStartTarget - len(pool)
		if need > len(rest) {
			need = len(rest)
		}
		pool = append(pool, rest[:need]...)
	} else if len(pool) > coldStartTarget {
		pool = pool[:coldStartTarget]
	}

	// The PYQ minima are guaranteed up front, per spec.md §4.8's cold
	// start clause: if truncation dropped the high-frequency members,
	// swap them back in over the lowest-ranked non-PYQ slots.
	pool = ensurePYQMinima(pool, rows)

	out := make([]Candidate, 0, len(pool))
	for _, q := range pool {
		out = append(out, Candidate{Question: q, RankKey: rankKey(q.ID, seed), CoverageNew: true})
	}

	return Pool{Candidates: out, Rung: 1, Feasible: feasible(out), ColdStart: true}, nil
}

// ensurePYQMinima rewrites pool so it carries at least
// MinPYQAtOrAbove15 members scoring >= 1.5 and MinPYQAtOrAbove10
// scoring >= 1.0, pulling replacements from all (rank-ordered) when the
// bank has them. Members already in pool are counted first so nothing
// is displaced needlessly.
func ensurePYQMinima(pool, all []store.Question) []store.Question {
	count := func(qs []store.Question, threshold float64) int {
		n := 0
		for _, q := range qs {
			if q.PYQFrequencyScore != nil && *q.PYQFrequencyScore >= threshold {
				n++
			}
		}
		return n
	}

	inPool := make(map[string]bool, len(pool))
	for _, q := range pool {
		inPool[q.ID] = true
	}

	for _, rule := range []struct {
		threshold float64
		want      int
	}{
		{threshold: 1.5, want: MinPYQAtOrAbove15},
		{threshold: 1.0, want: MinPYQAtOrAbove10},
	} {
		for _, q := range all {
			if count(pool, rule.threshold) >= rule.want {
				break
			}
			if inPool[q.ID] || q.PYQFrequencyScore == nil || *q.PYQFrequencyScore < rule.threshold {
				continue
			}
			// Displace the last member without a qualifying score rather
			// than growing past the target size.
			replaced := false
			for i := len(pool) - 1; i >= 0; i-- {
				if pool[i].PYQFrequencyScore == nil || *pool[i].PYQFrequencyScore < rule.threshold {
					delete(inPool, pool[i].ID)
					pool[i] = q
					inPool[q.ID] = true
					replaced = true
					break
				}
			}
			if !replaced {
				pool = append(pool, q)
				inPool[q.ID] = true
			}
		}
	}
	return pool
}

func sortByRank(rows []store.Question, seed string) {
	sort.Slice(rows, func(i, j int) bool {
		ki, kj := rankKey(rows[i].ID, seed), rankKey(rows[j].ID, seed)
		if ki != kj {
			return ki < kj
		}
		return rows[i].ID < rows[j].ID
	})
}

// feasible reports whether pool satisfies every preflight minimum of
// spec.md §4.8.
func feasible(pool []Candidate) bool {
	var easy, medium, hard, pyq10, pyq15 int
	for _, c := range pool {
		switch c.Question.DifficultyBand {
		case store.Easy:
			easy++
		case store.Medium:
			medium++
		case store.Hard:
			hard++
		}
		if c.Question.PYQFrequencyScore != nil {
			if *c.Question.PYQFrequencyScore >= 1.0 {
				pyq10++
			}
			if *c.Question.PYQFrequencyScore >= 1.5 {
				pyq15++
			}
		}
	}
	return easy >= MinEasy && medium >= MinMedium && hard >= MinHard &&
		pyq10 >= MinPYQAtOrAbove10 && pyq15 >= MinPYQAtOrAbove15
}
