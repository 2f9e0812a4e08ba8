package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adaptivecat/planner/ent"
	entsession "github.com/adaptivecat/planner/ent/session"
	"github.com/google/uuid"
)

// ErrIdempotentReplay is returned by CreateSession when idempotencyKey
// already identifies a session — the caller should serve the existing
// session's pack instead of planning a new one, per spec.md §4.9.
var ErrIdempotentReplay = errors.New("store: session already exists for idempotency key")

// nextSessSeq assigns the next dense sess_seq for studentID, locking the
// per-student counter row for the duration of the transaction so two
// concurrent plan_next calls for the same student never receive the
// same sequence number. Grounded on the row-lock pattern spec.md §4.9
// requires; the counter lives in a side table (student_sequence_counters)
// rather than MAX(sess_seq)+1 over sessions, which would require locking
// an unbounded row range.
func nextSessSeq(ctx context.Context, tx *sql.Tx, studentID string) (int, error) {
	var seq int
	err := tx.QueryRowContext(ctx,
		`SELECT next_seq FROM student_sequence_counters WHERE student_id = $1 FOR UPDATE`,
		studentID,
	).Scan(&seq)

	if errors.Is(err, sql.ErrNoRows) {
		seq = 1
		_, err = tx.ExecContext(ctx,
			`INSERT INTO student_sequence_counters (student_id, next_seq) VALUES ($1, $2)`,
			studentID, seq+1,
		)
		if err != nil {
			return 0, fmt.Errorf("insert sequence counter: %w", err)
		}
		return seq, nil
	}
	if err != nil {
		return 0, fmt.Errorf("lock sequence counter: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE student_sequence_counters SET next_seq = $1 WHERE student_id = $2`,
		seq+1, studentID,
	); err != nil {
		return 0, fmt.Errorf("advance sequence counter: %w", err)
	}
	return seq, nil
}

// CreateSession assigns a sess_seq and persists a new planned session,
// atomically with the sequence-counter advance. If idempotencyKey is
// non-empty and already identifies a session, ErrIdempotentReplay is
// returned along with that existing session so plan_next can replay it
// instead of planning twice.
func (c *Client) CreateSession(ctx context.Context, studentID, idempotencyKey, phaseInfo string) (Session, error) {
	if idempotencyKey != "" {
		existing, err := c.Session.Query().
			Where(entsession.IdempotencyKey(idempotencyKey)).
			Only(ctx)
		if err == nil {
			return sessionFromEnt(existing), ErrIdempotentReplay
		}
		if !isNotFound(err) {
			return Session{}, fmt.Errorf("store: check idempotency key: %w", err)
		}
	}

	tx, err := c.DB().BeginTx(ctx, nil)
	if err != nil {
		return Session{}, fmt.Errorf("store: begin session tx: %w", err)
	}
	defer tx.Rollback()

	seq, err := nextSessSeq(ctx, tx, studentID)
	if err != nil {
		return Session{}, fmt.Errorf("store: assign sess_seq: %w", err)
	}

	id := uuid.NewString()
	now := time.Now()
	if idempotencyKey != "" {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO sessions (id, student_id, sess_seq, status, idempotency_key, phase_info, created_at)
			 VALUES ($1, $2, $3, 'planned', $4, $5, $6)`,
			id, studentID, seq, idempotencyKey, phaseInfo, now,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO sessions (id, student_id, sess_seq, status, phase_info, created_at)
			 VALUES ($1, $2, $3, 'planned', $4, $5)`,
			id, studentID, seq, phaseInfo, now,
		)
	}
	if err != nil {
		return Session{}, fmt.Errorf("store: insert session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Session{}, fmt.Errorf("store: commit session tx: %w", err)
	}

	return Session{
		ID:             id,
		StudentID:      studentID,
		SessSeq:        seq,
		Status:         SessionPlanned,
		IdempotencyKey: idempotencyKey,
		PhaseInfo:      phaseInfo,
		CreatedAt:      now,
	}, nil
}

// CreateSessionPack persists the planned pack for a session, the final
// step of C9's plan_next. The session remains in the "planned" status —
// the "served" transition is a distinct event (MarkServed) per spec.md
// §4.9's state machine, triggered by the student actually loading the
// pack rather than by the pack merely existing.
func (c *Client) CreateSessionPack(ctx context.Context, sessionID string, questionIDs []string, telemetry string) (SessionPack, error) {
	packID := uuid.NewString()
	_, err := c.SessionPack.Create().
		SetID(packID).
		SetSessionID(sessionID).
		SetQuestionIds(marshalStrings(questionIDs)).
		SetTelemetry(telemetry).
		Save(ctx)
	if err != nil {
		return SessionPack{}, fmt.Errorf("store: create session pack for %s: %w", sessionID, err)
	}

	return SessionPack{
		ID:          packID,
		SessionID:   sessionID,
		QuestionIDs: questionIDs,
		Telemetry:   telemetry,
	}, nil
}

// MarkServed transitions a planned session to served, setting started_at
// to the server-generated current time, per spec.md §4.9. It is a
// no-op (returns nil) if the session is already served or completed,
// satisfying the idempotency the POST /mark_served endpoint requires.
func (c *Client) MarkServed(ctx context.Context, sessionID string) error {
	s, err := c.Session.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("store: get session %s: %w", sessionID, err)
	}
	if s.Status != entsession.StatusPlanned {
		return nil
	}
	if _, err := c.Session.UpdateOneID(sessionID).
		SetStatus(entsession.StatusServed).
		SetStartedAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("store: mark session %s served: %w", sessionID, err)
	}
	return nil
}

// GetSession fetches a session by id, for C9's orchestration layer
// (e.g. to recover sess_seq when incrementing coverage on mark_served).
func (c *Client) GetSession(ctx context.Context, sessionID string) (Session, error) {
	s, err := c.Session.Get(ctx, sessionID)
	if err != nil {
		return Session{}, fmt.Errorf("store: get session %s: %w", sessionID, err)
	}
	return sessionFromEnt(s), nil
}

// DeleteSession removes a planned session that never reached a
// persisted pack, per spec.md §4.9's failure semantics ("if planning
// fails mid-transaction, nothing is persisted").
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	if err := c.Session.DeleteOneID(sessionID).Exec(ctx); err != nil {
		return fmt.Errorf("store: delete session %s: %w", sessionID, err)
	}
	return nil
}

// CompleteSession marks a served session completed.
func (c *Client) CompleteSession(ctx context.Context, sessionID string) error {
	if _, err := c.Session.UpdateOneID(sessionID).
		SetStatus(entsession.StatusCompleted).
		SetEndedAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("store: complete session %s: %w", sessionID, err)
	}
	return nil
}

// GetSessionPack fetches a session's persisted pack, for GET /pack.
func (c *Client) GetSessionPack(ctx context.Context, sessionID string) (SessionPack, error) {
	s, err := c.Session.Query().
		Where(entsession.ID(sessionID)).
		WithPack().
		Only(ctx)
	if err != nil {
		return SessionPack{}, fmt.Errorf("store: get session %s: %w", sessionID, err)
	}
	if s.Edges.Pack == nil {
		return SessionPack{}, fmt.Errorf("store: session %s has no pack yet", sessionID)
	}
	return packFromEnt(s.Edges.Pack), nil
}

// LatestSession returns a student's session with the highest sess_seq,
// or the zero Session if the student has none. plan_next's phase
// determination counts sessions with SessionCount instead.
func (c *Client) LatestSession(ctx context.Context, studentID string) (Session, error) {
	s, err := c.Session.Query().
		Where(entsession.StudentID(studentID)).
		Order(ent.Desc(entsession.FieldSessSeq)).
		First(ctx)
	if isNotFound(err) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("store: latest session for %s: %w", studentID, err)
	}
	return sessionFromEnt(s), nil
}

// SessionCount returns how many served-or-completed sessions the
// student has — the n used by C7's phase determination. Planned-but-
// never-served sessions do not advance a student's phase.
func (c *Client) SessionCount(ctx context.Context, studentID string) (int, error) {
	n, err := c.Session.Query().
		Where(
			entsession.StudentID(studentID),
			entsession.StatusIn(entsession.StatusServed, entsession.StatusCompleted),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("store: session count for %s: %w", studentID, err)
	}
	return n, nil
}
