package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adaptivecat/planner/pkg/store"
)

// planTimeout is the hard outer bound on one plan_next call, per
// spec.md §5 (30s target, 60s hard). On expiry the store and planner
// calls, the planner's fallback included, see a cancelled context and
// the request ends with an error response; no fallback pack is served.
const planTimeout = 60 * time.Second

func (s *Server) planNextHandler(c *gin.Context) {
	var req PlanNextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	result, err := s.orchestrator.PlanNext(ctx, req.StudentID, req.LastSessionID, req.NextSessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlanNextResponse{
		Status:           result.Status,
		SessionID:        result.SessionID,
		ConstraintReport: result.ConstraintReport,
	})
}

func (s *Server) packHandler(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "session_id is required"})
		return
	}

	pack, err := s.store.GetSessionPack(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	details := make([]PackQuestionDetail, 0, len(pack.QuestionIDs))
	for _, qid := range pack.QuestionIDs {
		q, err := s.store.GetQuestion(c.Request.Context(), qid)
		if err != nil {
			respondError(c, err)
			return
		}
		details = append(details, PackQuestionDetail{
			QuestionID:     q.ID,
			Category:       q.Category,
			Subcategory:    q.Subcategory,
			TypeOfQuestion: q.TypeOfQuestion,
			DifficultyBand: string(q.DifficultyBand),
		})
	}

	c.JSON(http.StatusOK, PackResponse{Status: "ok", Pack: details})
}

func (s *Server) markServedHandler(c *gin.Context) {
	var req MarkServedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := s.orchestrator.MarkServed(c.Request.Context(), req.StudentID, req.SessionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MarkServedResponse{OK: true})
}

func (s *Server) completeHandler(c *gin.Context) {
	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := s.orchestrator.Complete(c.Request.Context(), req.SessionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MarkServedResponse{OK: true})
}

func (s *Server) attemptHandler(c *gin.Context) {
	var req AttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	attempt := store.Attempt{
		ID:               req.AttemptID,
		StudentID:        req.StudentID,
		QuestionID:       req.QuestionID,
		Correct:          req.Correct,
		TimeTakenSeconds: req.TimeTakenSeconds,
	}
	if err := s.store.RecordAttempt(c.Request.Context(), attempt); err != nil {
		respondError(c, err)
		return
	}
	if err := s.mastery.UpdateAfterAttempt(c.Request.Context(), attempt); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MarkServedResponse{OK: true})
}
