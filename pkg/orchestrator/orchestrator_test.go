package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptivecat/planner/pkg/planner"
	"github.com/adaptivecat/planner/pkg/store"
)

type fakeStore struct {
	sessions      map[string]store.Session
	packs         map[string]store.SessionPack
	questions     map[string]store.Question
	sessionCount  int
	byIdempotency map[string]string // idempotency key -> session id
	coverageCalls []store.Combination
	seq           int
	deleted       map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions:      map[string]store.Session{},
		packs:         map[string]store.SessionPack{},
		questions:     map[string]store.Question{},
		byIdempotency: map[string]string{},
		deleted:       map[string]bool{},
	}
}

func (f *fakeStore) SessionCount(ctx context.Context, studentID string) (int, error) {
	return f.sessionCount, nil
}

func (f *fakeStore) CreateSession(ctx context.Context, studentID, idempotencyKey, phaseInfo string) (store.Session, error) {
	if idempotencyKey != "" {
		if id, ok := f.byIdempotency[idempotencyKey]; ok {
			return f.sessions[id], store.ErrIdempotentReplay
		}
	}
	f.seq++
	id := "sess-" + studentID + "-" + string(rune('0'+f.seq))
	s := store.Session{ID: id, StudentID: studentID, SessSeq: f.seq, Status: store.SessionPlanned, IdempotencyKey: idempotencyKey, PhaseInfo: phaseInfo}
	f.sessions[id] = s
	if idempotencyKey != "" {
		f.byIdempotency[idempotencyKey] = id
	}
	return s, nil
}

func (f *fakeStore) DeleteSession(ctx context.Context, sessionID string) error {
	f.deleted[sessionID] = true
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeStore) GetSession(ctx context.Context, sessionID string) (store.Session, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeStore) CreateSessionPack(ctx context.Context, sessionID string, questionIDs []string, telemetry string) (store.SessionPack, error) {
	p := store.SessionPack{ID: "pack-" + sessionID, SessionID: sessionID, QuestionIDs: questionIDs, Telemetry: telemetry}
	f.packs[sessionID] = p
	return p, nil
}

func (f *fakeStore) GetSessionPack(ctx context.Context, sessionID string) (store.SessionPack, error) {
	return f.packs[sessionID], nil
}

func (f *fakeStore) MarkServed(ctx context.Context, sessionID string) error {
	s := f.sessions[sessionID]
	s.Status = store.SessionServed
	f.sessions[sessionID] = s
	return nil
}

func (f *fakeStore) CompleteSession(ctx context.Context, sessionID string) error {
	s := f.sessions[sessionID]
	s.Status = store.SessionCompleted
	f.sessions[sessionID] = s
	return nil
}

func (f *fakeStore) GetQuestion(ctx context.Context, id string) (store.Question, error) {
	return f.questions[id], nil
}

func (f *fakeStore) UpsertCoverage(ctx context.Context, studentID string, combo store.Combination, sessSeq int) error {
	f.coverageCalls = append(f.coverageCalls, combo)
	return nil
}

type fakePlanner struct {
	pack planner.Pack
	err  error
}

func (f *fakePlanner) Plan(ctx context.Context, studentID string, sessSeq int, priorSessionCount int) (planner.Pack, error) {
	return f.pack, f.err
}

func samplePack() planner.Pack {
	return planner.Pack{
		QuestionIDs: []string{"q1", "q2"},
		Telemetry:   planner.Telemetry{Phase: planner.PhaseA, SessionType: "standard"},
	}
}

func TestPlanNext_CreatesSessionAndPack(t *testing.T) {
	fs := newFakeStore()
	p := &fakePlanner{pack: samplePack()}
	o := New(fs, p)

	result, err := o.PlanNext(context.Background(), "student-1", "", "next-1")
	require.NoError(t, err)
	assert.Equal(t, "planned", result.Status)
	assert.False(t, result.Replayed)
	assert.Equal(t, planner.PhaseA, result.ConstraintReport.Phase)

	pack, ok := fs.packs[result.SessionID]
	require.True(t, ok)
	assert.Equal(t, []string{"q1", "q2"}, pack.QuestionIDs)
}

func TestPlanNext_IdempotentReplayReturnsOriginalPlan(t *testing.T) {
	fs := newFakeStore()
	p := &fakePlanner{pack: samplePack()}
	o := New(fs, p)

	first, err := o.PlanNext(context.Background(), "student-1", "last-0", "next-1")
	require.NoError(t, err)

	second, err := o.PlanNext(context.Background(), "student-1", "last-0", "next-1")
	require.NoError(t, err)

	assert.Equal(t, first.SessionID, second.SessionID)
	assert.True(t, second.Replayed)
}

func TestPlanNext_PlanFailureRollsBackSession(t *testing.T) {
	fs := newFakeStore()
	p := &fakePlanner{err: assertErr("no active questions anywhere")}
	o := New(fs, p)

	_, err := o.PlanNext(context.Background(), "student-1", "", "next-1")
	require.Error(t, err)
	assert.Empty(t, fs.sessions)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

func TestMarkServed_TransitionsAndIncrementsCoverage(t *testing.T) {
	fs := newFakeStore()
	fs.sessions["sess-1"] = store.Session{ID: "sess-1", StudentID: "student-1", SessSeq: 3, Status: store.SessionPlanned}
	fs.packs["sess-1"] = store.SessionPack{ID: "pack-1", SessionID: "sess-1", QuestionIDs: []string{"q1", "q2"}}
	fs.questions["q1"] = store.Question{ID: "q1", Subcategory: "Time-Speed-Distance", TypeOfQuestion: "Basics"}
	fs.questions["q2"] = store.Question{ID: "q2", Subcategory: "Percentages", TypeOfQuestion: "Basics"}

	o := New(fs, &fakePlanner{})
	err := o.MarkServed(context.Background(), "student-1", "sess-1")
	require.NoError(t, err)

	assert.Equal(t, store.SessionServed, fs.sessions["sess-1"].Status)
	assert.Len(t, fs.coverageCalls, 2)
}

func TestMarkServed_IdempotentNoOpWhenAlreadyServed(t *testing.T) {
	fs := newFakeStore()
	fs.sessions["sess-1"] = store.Session{ID: "sess-1", StudentID: "student-1", SessSeq: 1, Status: store.SessionServed}

	o := New(fs, &fakePlanner{})
	err := o.MarkServed(context.Background(), "student-1", "sess-1")
	require.NoError(t, err)
	assert.Empty(t, fs.coverageCalls)
}

func TestComplete_MarksSessionCompleted(t *testing.T) {
	fs := newFakeStore()
	fs.sessions["sess-1"] = store.Session{ID: "sess-1", Status: store.SessionServed}

	o := New(fs, &fakePlanner{})
	err := o.Complete(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, store.SessionCompleted, fs.sessions["sess-1"].Status)
}
