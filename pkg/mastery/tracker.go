package mastery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adaptivecat/planner/pkg/store"
)

// Store is the subset of pkg/store the tracker depends on — narrowed to
// ease testing with a fake.
type Store interface {
	GetQuestion(ctx context.Context, id string) (store.Question, error)
	GetMastery(ctx context.Context, studentID, subcategory, typeOfQuestion string) (store.MasteryRow, error)
	UpsertMastery(ctx context.Context, row store.MasteryRow) error
	AllMasteryForStudent(ctx context.Context, studentID string) ([]store.MasteryRow, error)
	AttemptsForSubcategory(ctx context.Context, studentID, subcategory, typeOfQuestion string) ([]store.Attempt, error)
}

// Tracker updates and reads student mastery state. Stateless aside from
// the store it wraps, mirroring the teacher's MaskingService shape.
type Tracker struct {
	store Store
	now   func() time.Time
	alpha float64
	decay float64
}

// Option configures a Tracker at construction time.
type Option func(*Tracker)

// WithAlpha overrides the EWMA smoothing factor (EWMA_ALPHA).
func WithAlpha(alpha float64) Option {
	return func(t *Tracker) {
		if alpha > 0 && alpha <= 1 {
			t.alpha = alpha
		}
	}
}

// WithTimeDecay overrides the daily decay multiplier (TIME_DECAY_DAILY).
func WithTimeDecay(decay float64) Option {
	return func(t *Tracker) {
		if decay > 0 && decay <= 1 {
			t.decay = decay
		}
	}
}

// New builds a Tracker over store.
func New(s Store, opts ...Option) *Tracker {
	t := &Tracker{store: s, now: time.Now, alpha: Alpha, decay: TimeDecayDaily}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// UpdateAfterAttempt folds a single attempt into both the
// subcategory-level and (subcategory, type) mastery rows for attempt's
// question, per spec.md §4.6. Both rows are updated so C7 can query
// mastery at whichever granularity a given decision needs.
func (t *Tracker) UpdateAfterAttempt(ctx context.Context, a store.Attempt) error {
	q, err := t.store.GetQuestion(ctx, a.QuestionID)
	if err != nil {
		return fmt.Errorf("mastery: load question %s: %w", a.QuestionID, err)
	}
	if q.Subcategory == "" {
		slog.Warn("mastery: question has no canonical subcategory, skipping update", "question_id", a.QuestionID)
		return nil
	}

	for _, typeOfQuestion := range []string{"", q.TypeOfQuestion} {
		if typeOfQuestion == "" && q.TypeOfQuestion == "" {
			continue // avoid writing the same empty-type row twice
		}
		row, err := t.store.GetMastery(ctx, a.StudentID, q.Subcategory, typeOfQuestion)
		if err != nil {
			return fmt.Errorf("mastery: load mastery %s/%s/%q: %w", a.StudentID, q.Subcategory, typeOfQuestion, err)
		}
		row.LastActivityAt = t.now()
		updated := applyAttempt(row, q.DifficultyBand, a.Correct, a.TimeTakenSeconds, t.alpha)
		if err := t.store.UpsertMastery(ctx, updated); err != nil {
			return fmt.Errorf("mastery: save mastery %s/%s/%q: %w", a.StudentID, q.Subcategory, typeOfQuestion, err)
		}
	}

	slog.Info("mastery updated", "student_id", a.StudentID, "subcategory", q.Subcategory, "correct", a.Correct)
	return nil
}

// ApplyTimeDecay recomputes every mastery row for studentID against the
// number of days elapsed since its own last_activity_at, per spec.md
// §4.6's nightly decay job.
func (t *Tracker) ApplyTimeDecay(ctx context.Context, studentID string) error {
	rows, err := t.store.AllMasteryForStudent(ctx, studentID)
	if err != nil {
		return fmt.Errorf("mastery: load rows for %s: %w", studentID, err)
	}

	now := t.now()
	for _, row := range rows {
		days := int(now.Sub(row.LastActivityAt).Hours() / 24)
		if days <= 0 {
			continue
		}
		decayed := applyDecay(row, days, t.decay)
		if err := t.store.UpsertMastery(ctx, decayed); err != nil {
			return fmt.Errorf("mastery: save decayed row %s/%s/%q: %w", studentID, row.Subcategory, row.TypeOfQuestion, err)
		}
	}
	return nil
}

// Readiness returns a student's readiness band for a subcategory,
// driving Phase C's weakest/strongest category logic in C7. The band is
// returned as a plain string so callers can depend on a narrow
// interface without importing this package's Readiness type.
func (t *Tracker) Readiness(ctx context.Context, studentID, subcategory string) (string, float64, error) {
	row, err := t.store.GetMastery(ctx, studentID, subcategory, "")
	if err != nil {
		return "", 0, fmt.Errorf("mastery: readiness for %s/%s: %w", studentID, subcategory, err)
	}
	return string(ClassifyReadiness(row.MasteryPct)), row.MasteryPct, nil
}

// RecentAccuracy computes a student's accuracy over the last `days` of
// attempts in subcategory — the supplemented recent-accuracy-window
// helper (original's calculate_recent_accuracy), consulted by the
// planner alongside EWMA mastery, never in place of it.
func (t *Tracker) RecentAccuracy(ctx context.Context, studentID, subcategory string, days int) (float64, int, error) {
	attempts, err := t.store.AttemptsForSubcategory(ctx, studentID, subcategory, "")
	if err != nil {
		return 0, 0, fmt.Errorf("mastery: recent accuracy for %s/%s: %w", studentID, subcategory, err)
	}

	cutoff := t.now().AddDate(0, 0, -days)
	correct, total := 0, 0
	for _, a := range attempts {
		if a.CreatedAt.Before(cutoff) {
			continue
		}
		total++
		if a.Correct {
			correct++
		}
	}
	if total == 0 {
		return 0, 0, nil
	}
	return float64(correct) / float64(total), total, nil
}
