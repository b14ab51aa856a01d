package app

import "github.com/alexanderramin/lodestar/internal/domain"

// Default request parameters applied when the caller leaves them zero.
const (
	DefaultMaxIterations = 3
	DefaultMinScore      = 0.7
	DefaultSimilarK      = 5
)

// PlanRequest is one planning run: a student profile plus loop bounds.
type PlanRequest struct {
	Profile           domain.StudentProfile
	MaxIterations     int
	MinScoreThreshold float64
	SimilarK          int
}

// IterationRecord is a per-iteration snapshot of the refinement loop,
// retained so callers can audit convergence.
type IterationRecord struct {
	Iteration     int
	Score         float64
	NeedsRevision bool
}

// PlanResponse is the result of a completed planning run.
type PlanResponse struct {
	Profile           domain.StudentProfile
	Plan              domain.FourYearPlan
	Critique          domain.Critique
	Explanation       domain.Explanation
	Iterations        int
	FinalScore        float64
	Cancelled         bool
	History           []IterationRecord
	SimilarProfiles   []domain.SimilarProfile
	RetrievalDegraded bool
}
