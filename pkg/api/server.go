// Package api implements the HTTP surface of §6: POST /plan_next,
// GET /pack, POST /mark_served, plus POST /complete, POST /attempt and
// GET /healthz.
package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adaptivecat/planner/pkg/orchestrator"
	"github.com/adaptivecat/planner/pkg/store"
)

// healthTimeout bounds the database ping GET /healthz performs.
const healthTimeout = 5 * time.Second

// Orchestrator is the subset of pkg/orchestrator the API depends on.
type Orchestrator interface {
	PlanNext(ctx context.Context, studentID, lastSessionID, nextSessionID string) (orchestrator.PlanResult, error)
	MarkServed(ctx context.Context, studentID, sessionID string) error
	Complete(ctx context.Context, sessionID string) error
}

// Store is the subset of pkg/store the API depends on directly, for
// GET /pack, POST /attempt, and the health check.
type Store interface {
	GetSessionPack(ctx context.Context, sessionID string) (store.SessionPack, error)
	GetQuestion(ctx context.Context, id string) (store.Question, error)
	RecordAttempt(ctx context.Context, a store.Attempt) error
	DB() *sql.DB
}

// Mastery is the subset of pkg/mastery the API depends on: folding a
// just-recorded attempt into the student's EWMA state (the per-attempt
// immediate-update choice spec.md §5 permits).
type Mastery interface {
	UpdateAfterAttempt(ctx context.Context, a store.Attempt) error
}

// Server wires the session-planning endpoints plus a health check over
// Gin.
type Server struct {
	engine       *gin.Engine
	httpServer   *http.Server
	orchestrator Orchestrator
	store        Store
	mastery      Mastery
}

// NewServer builds a Server wiring C9's orchestrator, C2's store, and
// C6's tracker.
func NewServer(orch Orchestrator, s Store, m Mastery) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	srv := &Server{engine: engine, orchestrator: orch, store: s, mastery: m}
	srv.setupRoutes()
	return srv
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", s.healthHandler)
	s.engine.POST("/plan_next", s.planNextHandler)
	s.engine.GET("/pack", s.packHandler)
	s.engine.POST("/mark_served", s.markServedHandler)
	s.engine.POST("/complete", s.completeHandler)
	s.engine.POST("/attempt", s.attemptHandler)
}

// Start runs the HTTP server on addr (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{Addr: addr, Handler: s.engine}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := s.store.DB().PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}
