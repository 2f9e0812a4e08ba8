// Package orchestrator implements C9: the session lifecycle state
// machine (planned -> served -> completed), idempotent planning, and
// the coverage side effects of marking a session served.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adaptivecat/planner/pkg/planner"
	"github.com/adaptivecat/planner/pkg/store"
)

// Store is the subset of pkg/store the orchestrator depends on.
type Store interface {
	SessionCount(ctx context.Context, studentID string) (int, error)
	CreateSession(ctx context.Context, studentID, idempotencyKey, phaseInfo string) (store.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetSession(ctx context.Context, sessionID string) (store.Session, error)
	CreateSessionPack(ctx context.Context, sessionID string, questionIDs []string, telemetry string) (store.SessionPack, error)
	GetSessionPack(ctx context.Context, sessionID string) (store.SessionPack, error)
	MarkServed(ctx context.Context, sessionID string) error
	CompleteSession(ctx context.Context, sessionID string) error
	GetQuestion(ctx context.Context, id string) (store.Question, error)
	UpsertCoverage(ctx context.Context, studentID string, combo store.Combination, sessSeq int) error
}

// Planner is the subset of pkg/planner the orchestrator depends on.
type Planner interface {
	Plan(ctx context.Context, studentID string, sessSeq int, priorSessionCount int) (planner.Pack, error)
}

// Orchestrator is C9.
type Orchestrator struct {
	store   Store
	planner Planner
}

// New builds an Orchestrator wiring C2's store and C7's planner.
func New(s Store, p Planner) *Orchestrator {
	return &Orchestrator{store: s, planner: p}
}

// PlanResult is the outcome of plan_next, shaped for the §6 API
// contract's {status, constraint_report} response.
type PlanResult struct {
	SessionID        string
	Status           string // "planned"
	ConstraintReport planner.Telemetry
	Replayed         bool // true if this replayed an existing idempotency key rather than planning anew
}

// phaseInfoRecord is the opaque JSON stored in sessions.phase_info at
// creation time, before the pack (and its full telemetry) exists.
type phaseInfoRecord struct {
	Phase string `json:"phase"`
}

// PlanNext implements plan_next, per spec.md §4.9. It assigns a
// sess_seq (row-locked by the store), asks C7 to plan a pack, and
// persists the pack atomically. A repeat call carrying the same
// (student, last_session_id, next_session_id) idempotency key returns
// the original plan rather than planning twice.
func (o *Orchestrator) PlanNext(ctx context.Context, studentID, lastSessionID, nextSessionID string) (PlanResult, error) {
	priorSessionCount, err := o.store.SessionCount(ctx, studentID)
	if err != nil {
		return PlanResult{}, fmt.Errorf("orchestrator: session count for %s: %w", studentID, err)
	}

	phase := planner.DeterminePhase(priorSessionCount)
	phaseInfo, err := json.Marshal(phaseInfoRecord{Phase: string(phase)})
	if err != nil {
		return PlanResult{}, fmt.Errorf("orchestrator: marshal phase info: %w", err)
	}

	idempotencyKey := fmt.Sprintf("%s:%s:%s", studentID, lastSessionID, nextSessionID)

	session, err := o.store.CreateSession(ctx, studentID, idempotencyKey, string(phaseInfo))
	if errors.Is(err, store.ErrIdempotentReplay) {
		return o.replay(ctx, session)
	}
	if err != nil {
		return PlanResult{}, fmt.Errorf("orchestrator: create session: %w", err)
	}

	pack, err := o.planner.Plan(ctx, studentID, session.SessSeq, priorSessionCount)
	if err != nil {
		// Even the planner's own seeded-random fallback could not produce
		// a pack — no active questions exist anywhere. Nothing is
		// persisted, per spec.md §4.9's failure semantics.
		if delErr := o.store.DeleteSession(ctx, session.ID); delErr != nil {
			slog.Error("orchestrator: failed to roll back orphaned session",
				"session_id", session.ID, "error", delErr)
		}
		return PlanResult{}, fmt.Errorf("orchestrator: plan: %w", err)
	}

	telemetryJSON, err := json.Marshal(pack.Telemetry)
	if err != nil {
		return PlanResult{}, fmt.Errorf("orchestrator: marshal telemetry: %w", err)
	}

	if _, err := o.store.CreateSessionPack(ctx, session.ID, pack.QuestionIDs, string(telemetryJSON)); err != nil {
		if delErr := o.store.DeleteSession(ctx, session.ID); delErr != nil {
			slog.Error("orchestrator: failed to roll back session after pack persist failure",
				"session_id", session.ID, "error", delErr)
		}
		return PlanResult{}, fmt.Errorf("orchestrator: create session pack: %w", err)
	}

	return PlanResult{SessionID: session.ID, Status: "planned", ConstraintReport: pack.Telemetry}, nil
}

// replay returns the pack already persisted under existing's
// idempotency key, per spec.md §7's "Orchestrator conflict" policy.
func (o *Orchestrator) replay(ctx context.Context, existing store.Session) (PlanResult, error) {
	pack, err := o.store.GetSessionPack(ctx, existing.ID)
	if err != nil {
		return PlanResult{}, fmt.Errorf("orchestrator: replay pack for %s: %w", existing.ID, err)
	}
	var telemetry planner.Telemetry
	if err := json.Unmarshal([]byte(pack.Telemetry), &telemetry); err != nil {
		return PlanResult{}, fmt.Errorf("orchestrator: unmarshal replayed telemetry: %w", err)
	}
	return PlanResult{SessionID: existing.ID, Status: "planned", ConstraintReport: telemetry, Replayed: true}, nil
}

// MarkServed implements mark_served: the planned -> served transition,
// plus the coverage-increment side effect for every (subcategory,
// type_of_question) in the pack, per spec.md §4.9. It is idempotent —
// a session already served or completed is left untouched and no
// coverage rows are incremented twice.
func (o *Orchestrator) MarkServed(ctx context.Context, studentID, sessionID string) error {
	session, err := o.store.GetSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("orchestrator: get session %s: %w", sessionID, err)
	}
	if session.Status != store.SessionPlanned {
		return nil
	}

	pack, err := o.store.GetSessionPack(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("orchestrator: get pack for %s: %w", sessionID, err)
	}

	if err := o.store.MarkServed(ctx, sessionID); err != nil {
		return fmt.Errorf("orchestrator: mark served %s: %w", sessionID, err)
	}

	for _, qid := range pack.QuestionIDs {
		q, err := o.store.GetQuestion(ctx, qid)
		if err != nil {
			slog.Error("orchestrator: skipping coverage increment, question lookup failed",
				"session_id", sessionID, "question_id", qid, "error", err)
			continue
		}
		combo := store.Combination{Subcategory: q.Subcategory, TypeOfQuestion: q.TypeOfQuestion}
		if err := o.store.UpsertCoverage(ctx, studentID, combo, session.SessSeq); err != nil {
			slog.Error("orchestrator: coverage increment failed",
				"session_id", sessionID, "question_id", qid, "error", err)
		}
	}

	return nil
}

// Complete implements the served -> completed transition.
func (o *Orchestrator) Complete(ctx context.Context, sessionID string) error {
	if err := o.store.CompleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("orchestrator: complete session %s: %w", sessionID, err)
	}
	return nil
}
