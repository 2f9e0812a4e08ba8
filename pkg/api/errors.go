package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adaptivecat/planner/ent"
)

// respondError maps a service-layer error to an HTTP status and writes
// the JSON error envelope, logging anything that isn't an expected,
// client-facing condition.
func respondError(c *gin.Context, err error) {
	if ent.IsNotFound(err) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
		return
	}

	var valErr *ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: valErr.Error()})
		return
	}

	slog.Error("api: unexpected error", "error", err)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// ValidationError signals a client-supplied request was rejected before
// it reached the orchestrator.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Msg
}
