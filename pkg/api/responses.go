package api

import "github.com/adaptivecat/planner/pkg/planner"

// PlanNextRequest is the body of POST /plan_next.
type PlanNextRequest struct {
	StudentID     string `json:"student_id" binding:"required"`
	LastSessionID string `json:"last_session_id"`
	NextSessionID string `json:"next_session_id" binding:"required"`
}

// PlanNextResponse is returned by POST /plan_next, per spec.md §6.
type PlanNextResponse struct {
	Status           string            `json:"status"`
	SessionID        string            `json:"session_id"`
	ConstraintReport planner.Telemetry `json:"constraint_report"`
}

// PackResponse is returned by GET /pack.
type PackResponse struct {
	Status string               `json:"status"`
	Pack   []PackQuestionDetail `json:"pack"`
}

// PackQuestionDetail is one question's metadata inside a served pack.
type PackQuestionDetail struct {
	QuestionID     string `json:"question_id"`
	Category       string `json:"category"`
	Subcategory    string `json:"subcategory"`
	TypeOfQuestion string `json:"type_of_question"`
	DifficultyBand string `json:"difficulty_band"`
}

// MarkServedRequest is the body of POST /mark_served.
type MarkServedRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}

// MarkServedResponse is returned by POST /mark_served, per spec.md §6,
// and shared by the other acknowledgement-only endpoints.
type MarkServedResponse struct {
	OK bool `json:"ok"`
}

// CompleteRequest is the body of POST /complete.
type CompleteRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}

// AttemptRequest is the body of POST /attempt. AttemptID is the
// client-supplied identity used for idempotent dedup; an empty value
// lets the store mint one.
type AttemptRequest struct {
	AttemptID        string `json:"attempt_id"`
	StudentID        string `json:"student_id" binding:"required"`
	QuestionID       string `json:"question_id" binding:"required"`
	Correct          bool   `json:"correct"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// errorResponse is the generic error envelope for 4xx/5xx responses —
// callers never see a raw error, per spec.md §7's Surfacing clause.
type errorResponse struct {
	Error string `json:"error"`
}
