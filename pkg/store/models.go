// Package store implements C2, the persistent store of Questions, PYQ
// Questions, Attempts, Mastery, Sessions, and Student Coverage. It wraps
// an Ent client over PostgreSQL and exposes the narrow, domain-shaped
// contract the rest of the core depends on — callers never touch *ent.Client
// directly, mirroring the way the teacher's pkg/services layer sits in
// front of *ent.Client.
package store

import "time"

// DifficultyBand is one of the three bands a question can be rated at.
type DifficultyBand string

// Difficulty bands, per spec.md §3.
const (
	Easy   DifficultyBand = "Easy"
	Medium DifficultyBand = "Medium"
	Hard   DifficultyBand = "Hard"
)

// ConceptExtractionStatus tracks whether core_concepts has been populated.
type ConceptExtractionStatus string

// Concept extraction states, per spec.md §3.
const (
	ExtractionPending   ConceptExtractionStatus = "pending"
	ExtractionCompleted ConceptExtractionStatus = "completed"
)

// ConceptDifficulty is the structured record backing the
// concept_difficulty field (spec.md §3, keys per §4.5).
type ConceptDifficulty struct {
	Prerequisites     []string `json:"prerequisites"`
	CognitiveBarriers []string `json:"cognitive_barriers"`
	MasteryIndicators []string `json:"mastery_indicators"`
}

// Question is the domain representation of a bank question — the unit
// being served.
type Question struct {
	ID string

	// Admin-owned content. Never mutated by the pipeline (spec.md §3).
	Stem                string
	AdminAnswer         string
	AdminSolution       string
	PrincipleToRemember string
	ImageRef            string

	// Canonical classification (C1).
	Category       string
	Subcategory    string
	TypeOfQuestion string

	DifficultyBand  DifficultyBand
	DifficultyScore float64

	PYQFrequencyScore *float64 // nil = undefined, per spec.md §3

	RightAnswer        string
	CoreConcepts       []string
	SolutionMethod     string
	ConceptDifficulty  ConceptDifficulty
	OperationsRequired []string
	ProblemStructure   string
	ConceptKeywords    []string

	IsActive                bool
	QualityVerified         bool
	ConceptExtractionStatus ConceptExtractionStatus
	FailingCriteria         []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BandAligned reports whether DifficultyBand and DifficultyScore satisfy
// the invariant of spec.md §3: Easy [1.0,2.0], Medium (2.0,3.5], Hard
// (3.5,5.0].
func (q Question) BandAligned() bool {
	switch q.DifficultyBand {
	case Easy:
		return q.DifficultyScore >= 1.0 && q.DifficultyScore <= 2.0
	case Medium:
		return q.DifficultyScore > 2.0 && q.DifficultyScore <= 3.5
	case Hard:
		return q.DifficultyScore > 3.5 && q.DifficultyScore <= 5.0
	default:
		return false
	}
}

// PYQQuestion is the domain representation of a historical exam
// question. Read-only in planning.
type PYQQuestion struct {
	ID                 string
	Stem               string
	Category           string
	Subcategory        string
	TypeOfQuestion     string
	DifficultyBand     DifficultyBand
	DifficultyScore    float64
	PYQFrequencyScore  *float64
	CoreConcepts       []string
	SolutionMethod     string
	ConceptDifficulty  ConceptDifficulty
	OperationsRequired []string
	ProblemStructure   string
	ConceptKeywords    []string
	IsActive           bool
	QualityVerified    bool
	CreatedAt          time.Time
}

// Attempt is a single (student, question) response event. Append-only.
type Attempt struct {
	ID               string
	StudentID        string
	QuestionID       string
	Correct          bool
	TimeTakenSeconds int
	CreatedAt        time.Time
}

// Combination is a (subcategory, type_of_question) pair — the unit of
// coverage tracking and diversity-cap accounting.
type Combination struct {
	Subcategory    string
	TypeOfQuestion string
}

// Coverage is a student's exposure record for one Combination.
type Coverage struct {
	StudentID        string
	Combination      Combination
	SessionsSeen     int
	FirstSeenSession int
	LastSeenSession  int
}

// SessionStatus is the lifecycle state of a Session (C9).
type SessionStatus string

// Session lifecycle states, per spec.md §3 / §4.9.
const (
	SessionPlanned   SessionStatus = "planned"
	SessionServed    SessionStatus = "served"
	SessionCompleted SessionStatus = "completed"
)

// Session is a single planned/served/completed session.
type Session struct {
	ID             string
	StudentID      string
	SessSeq        int
	Status         SessionStatus
	IdempotencyKey string
	PhaseInfo      string // opaque JSON, owned by the planner
	CreatedAt      time.Time
	StartedAt      *time.Time
	EndedAt        *time.Time
}

// SessionPack is the persisted 12-question pack plus its telemetry blob.
type SessionPack struct {
	ID          string
	SessionID   string
	QuestionIDs []string
	Telemetry   string // opaque JSON, owned by the planner
	CreatedAt   time.Time
}

// MasteryRow is a student's EWMA mastery state for one (subcategory[, type]).
type MasteryRow struct {
	StudentID       string
	Subcategory     string
	TypeOfQuestion  string // "" means subcategory-level row
	AccuracyEasy    float64
	AccuracyMedium  float64
	AccuracyHard    float64
	EfficiencyScore float64
	ExposureCount   int
	MasteryPct      float64
	LastActivityAt  time.Time
	UpdatedAt       time.Time
}
