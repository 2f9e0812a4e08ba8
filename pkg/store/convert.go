package store

import (
	"encoding/json"

	"github.com/adaptivecat/planner/ent"
)

func marshalStrings(v []string) string {
	if len(v) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func unmarshalStrings(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}

func marshalConceptDifficulty(cd ConceptDifficulty) string {
	b, _ := json.Marshal(cd)
	return string(b)
}

func unmarshalConceptDifficulty(s string) ConceptDifficulty {
	var cd ConceptDifficulty
	if s == "" {
		return cd
	}
	_ = json.Unmarshal([]byte(s), &cd)
	return cd
}

func questionFromEnt(q *ent.Question) Question {
	out := Question{
		ID:                      q.ID,
		Stem:                    q.Stem,
		AdminAnswer:             q.AdminAnswer,
		AdminSolution:           q.AdminSolution,
		PrincipleToRemember:     q.PrincipleToRemember,
		ImageRef:                q.ImageRef,
		Category:                q.Category,
		Subcategory:             q.Subcategory,
		TypeOfQuestion:          q.TypeOfQuestion,
		DifficultyBand:          DifficultyBand(q.DifficultyBand),
		DifficultyScore:         q.DifficultyScore,
		RightAnswer:             q.RightAnswer,
		CoreConcepts:            unmarshalStrings(q.CoreConcepts),
		SolutionMethod:          q.SolutionMethod,
		ConceptDifficulty:       unmarshalConceptDifficulty(q.ConceptDifficulty),
		OperationsRequired:      unmarshalStrings(q.OperationsRequired),
		ConceptKeywords:         unmarshalStrings(q.ConceptKeywords),
		IsActive:                q.IsActive,
		QualityVerified:         q.QualityVerified,
		ConceptExtractionStatus: ConceptExtractionStatus(q.ConceptExtractionStatus),
		CreatedAt:               q.CreatedAt,
		UpdatedAt:               q.UpdatedAt,
	}
	if q.ProblemStructure != nil {
		out.ProblemStructure = *q.ProblemStructure
	}
	out.PYQFrequencyScore = q.PyqFrequencyScore
	if q.FailingCriteria != nil {
		out.FailingCriteria = unmarshalStrings(*q.FailingCriteria)
	}
	return out
}

func pyqFromEnt(q *ent.PYQQuestion) PYQQuestion {
	out := PYQQuestion{
		ID:                 q.ID,
		Stem:               q.Stem,
		Category:           q.Category,
		Subcategory:        q.Subcategory,
		TypeOfQuestion:     q.TypeOfQuestion,
		DifficultyBand:     DifficultyBand(q.DifficultyBand),
		DifficultyScore:    q.DifficultyScore,
		PYQFrequencyScore:  q.PyqFrequencyScore,
		CoreConcepts:       unmarshalStrings(q.CoreConcepts),
		SolutionMethod:     q.SolutionMethod,
		ConceptDifficulty:  unmarshalConceptDifficulty(q.ConceptDifficulty),
		OperationsRequired: unmarshalStrings(q.OperationsRequired),
		IsActive:           q.IsActive,
		QualityVerified:    q.QualityVerified,
		CreatedAt:          q.CreatedAt,
	}
	if q.ProblemStructure != nil {
		out.ProblemStructure = *q.ProblemStructure
	}
	if q.ConceptKeywords != nil {
		out.ConceptKeywords = unmarshalStrings(*q.ConceptKeywords)
	}
	return out
}

func attemptFromEnt(a *ent.Attempt) Attempt {
	return Attempt{
		ID:               a.ID,
		StudentID:        a.StudentID,
		QuestionID:       a.QuestionID,
		Correct:          a.Correct,
		TimeTakenSeconds: a.TimeTakenSeconds,
		CreatedAt:        a.CreatedAt,
	}
}

func masteryFromEnt(m *ent.Mastery) MasteryRow {
	return MasteryRow{
		StudentID:       m.StudentID,
		Subcategory:     m.Subcategory,
		TypeOfQuestion:  m.TypeOfQuestion,
		AccuracyEasy:    m.AccuracyEasy,
		AccuracyMedium:  m.AccuracyMedium,
		AccuracyHard:    m.AccuracyHard,
		EfficiencyScore: m.EfficiencyScore,
		ExposureCount:   m.ExposureCount,
		MasteryPct:      m.MasteryPct,
		LastActivityAt:  m.LastActivityAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func coverageFromEnt(c *ent.StudentCoverage) Coverage {
	return Coverage{
		StudentID:        c.StudentID,
		Combination:      Combination{Subcategory: c.Subcategory, TypeOfQuestion: c.TypeOfQuestion},
		SessionsSeen:     c.SessionsSeen,
		FirstSeenSession: c.FirstSeenSession,
		LastSeenSession:  c.LastSeenSession,
	}
}

func sessionFromEnt(s *ent.Session) Session {
	out := Session{
		ID:        s.ID,
		StudentID: s.StudentID,
		SessSeq:   s.SessSeq,
		Status:    SessionStatus(s.Status),
		PhaseInfo: s.PhaseInfo,
		CreatedAt: s.CreatedAt,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
	if s.IdempotencyKey != nil {
		out.IdempotencyKey = *s.IdempotencyKey
	}
	return out
}

func packFromEnt(p *ent.SessionPack) SessionPack {
	return SessionPack{
		ID:          p.ID,
		SessionID:   p.SessionID,
		QuestionIDs: unmarshalStrings(p.QuestionIds),
		Telemetry:   p.Telemetry,
		CreatedAt:   p.CreatedAt,
	}
}
