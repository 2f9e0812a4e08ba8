package mastery

import (
	"context"
	"testing"
	"time"

	"github.com/adaptivecat/planner/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	questions map[string]store.Question
	rows      map[string]store.MasteryRow // key: studentID + "|" + subcategory + "|" + type
	attempts  map[string][]store.Attempt  // key: studentID + "|" + subcategory
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		questions: map[string]store.Question{},
		rows:      map[string]store.MasteryRow{},
		attempts:  map[string][]store.Attempt{},
	}
}

func (f *fakeStore) key(studentID, subcategory, typeOfQuestion string) string {
	return studentID + "|" + subcategory + "|" + typeOfQuestion
}

func (f *fakeStore) GetQuestion(_ context.Context, id string) (store.Question, error) {
	return f.questions[id], nil
}

func (f *fakeStore) GetMastery(_ context.Context, studentID, subcategory, typeOfQuestion string) (store.MasteryRow, error) {
	row, ok := f.rows[f.key(studentID, subcategory, typeOfQuestion)]
	if !ok {
		return store.MasteryRow{StudentID: studentID, Subcategory: subcategory, TypeOfQuestion: typeOfQuestion}, nil
	}
	return row, nil
}

func (f *fakeStore) UpsertMastery(_ context.Context, row store.MasteryRow) error {
	f.rows[f.key(row.StudentID, row.Subcategory, row.TypeOfQuestion)] = row
	return nil
}

func (f *fakeStore) AllMasteryForStudent(_ context.Context, studentID string) ([]store.MasteryRow, error) {
	var out []store.MasteryRow
	for _, row := range f.rows {
		if row.StudentID == studentID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) AttemptsForSubcategory(_ context.Context, studentID, subcategory, _ string) ([]store.Attempt, error) {
	return f.attempts[studentID+"|"+subcategory], nil
}

func TestTracker_UpdateAfterAttempt_UpdatesBothRows(t *testing.T) {
	fs := newFakeStore()
	fs.questions["q-1"] = store.Question{
		ID: "q-1", Subcategory: "HCF-LCM", TypeOfQuestion: "Basics", DifficultyBand: store.Medium,
	}
	tr := New(fs)
	tr.now = func() time.Time { return time.Date(2026, 7, 29, 0, 0, 0, 0, time.UTC) }

	err := tr.UpdateAfterAttempt(context.Background(), store.Attempt{
		StudentID: "student-1", QuestionID: "q-1", Correct: true, TimeTakenSeconds: 100,
	})
	require.NoError(t, err)

	subRow, err := tr.store.GetMastery(context.Background(), "student-1", "HCF-LCM", "")
	require.NoError(t, err)
	assert.Equal(t, 1, subRow.ExposureCount)

	typeRow, err := tr.store.GetMastery(context.Background(), "student-1", "HCF-LCM", "Basics")
	require.NoError(t, err)
	assert.Equal(t, 1, typeRow.ExposureCount)
}

func TestTracker_UpdateAfterAttempt_SkipsUnclassifiedQuestion(t *testing.T) {
	fs := newFakeStore()
	fs.questions["q-2"] = store.Question{ID: "q-2"}
	tr := New(fs)

	err := tr.UpdateAfterAttempt(context.Background(), store.Attempt{
		StudentID: "student-1", QuestionID: "q-2", Correct: true, TimeTakenSeconds: 100,
	})
	require.NoError(t, err)
	assert.Empty(t, fs.rows)
}

func TestTracker_Readiness(t *testing.T) {
	fs := newFakeStore()
	fs.rows[fs.key("student-1", "HCF-LCM", "")] = store.MasteryRow{MasteryPct: 0.9}
	tr := New(fs)

	band, pct, err := tr.Readiness(context.Background(), "student-1", "HCF-LCM")
	require.NoError(t, err)
	assert.Equal(t, string(Mastered), band)
	assert.InDelta(t, 0.9, pct, 1e-9)
}

func TestTracker_RecentAccuracy_FiltersOldAttempts(t *testing.T) {
	fs := newFakeStore()
	tr := New(fs)
	now := time.Date(2026, 7, 29, 0, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return now }

	fs.attempts["student-1|HCF-LCM"] = []store.Attempt{
		{Correct: true, CreatedAt: now.AddDate(0, 0, -1)},
		{Correct: false, CreatedAt: now.AddDate(0, 0, -2)},
		{Correct: true, CreatedAt: now.AddDate(0, 0, -30)}, // outside 7-day window
	}

	acc, n, err := tr.RecentAccuracy(context.Background(), "student-1", "HCF-LCM", 7)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 0.5, acc, 1e-9)
}

func TestTracker_ApplyTimeDecay(t *testing.T) {
	fs := newFakeStore()
	now := time.Date(2026, 7, 29, 0, 0, 0, 0, time.UTC)
	fs.rows[fs.key("student-1", "HCF-LCM", "")] = store.MasteryRow{
		StudentID: "student-1", Subcategory: "HCF-LCM",
		AccuracyMedium: 1.0, ExposureCount: 10,
		LastActivityAt: now.AddDate(0, 0, -3),
	}
	tr := New(fs)
	tr.now = func() time.Time { return now }

	require.NoError(t, tr.ApplyTimeDecay(context.Background(), "student-1"))

	row := fs.rows[fs.key("student-1", "HCF-LCM", "")]
	assert.Less(t, row.AccuracyMedium, 1.0)
}
