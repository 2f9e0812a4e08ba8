// Package enrichment implements C4, the multi-stage enrichment
// pipeline: a linear five-stage state machine that transforms a raw
// question into a quality-verified, fully-classified record, or
// refuses to activate it.
package enrichment

import (
	"fmt"

	"github.com/adaptivecat/planner/pkg/store"
)

// StageKind classifies why a stage failed, per spec.md §9's explicit
// result-type design note (no try/except ladder) and §7's failure
// taxonomy.
type StageKind string

// Stage failure kinds.
const (
	KindSchemaViolation StageKind = "schema_violation"
	KindCanonicalMiss   StageKind = "canonical_miss"
	KindBandInvalid     StageKind = "band_invalid"
	KindUpstream        StageKind = "upstream"
)

// StageError is the explicit {err: {stage, kind, detail}} result shape
// spec.md §9 asks for in place of exception-driven control flow.
type StageError struct {
	Stage  string
	Kind   StageKind
	Detail string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("enrichment: stage %s failed (%s): %s", e.Stage, e.Kind, e.Detail)
}

// Outcome is the result of one Enrich call: the (possibly partially)
// enriched record, the quality gate's verdict, and which stage (if
// any) failed outright.
type Outcome struct {
	Question        store.Question
	FailedStage     string
	FailingCriteria []string
	Activated       bool
}

