package planner

import (
	"context"

	"github.com/alexanderramin/lodestar/internal/domain"
)

// OpportunitySource supplies grade- and interest-relevant opportunities.
// Satisfied by match.OpportunityFilter.
type OpportunitySource interface {
	Relevant(grade domain.GradeLevel, interests []string) []*domain.Opportunity
}

// RetrievalContext bundles the data computed before planning begins. It is
// built once per request and read-only for every refinement iteration. The
// zero value is a valid empty context, used when retrieval is degraded.
type RetrievalContext struct {
	Similar       []domain.SimilarProfile
	Opportunities OpportunitySource
}

func (rc RetrievalContext) relevant(grade domain.GradeLevel, interests []string) []*domain.Opportunity {
	if rc.Opportunities == nil {
		return nil
	}
	return rc.Opportunities.Relevant(grade, interests)
}

// Synthesizer builds a four-year plan from a profile plus retrieval
// context, incorporating every suggestion of the prior critique when one
// is given.
type Synthesizer interface {
	Synthesize(profile domain.StudentProfile, rctx RetrievalContext, prior *domain.Critique) (domain.FourYearPlan, error)
}

// Evaluator scores a plan against a profile and produces a critique with a
// revise/accept verdict.
type Evaluator interface {
	Evaluate(profile domain.StudentProfile, plan domain.FourYearPlan) (domain.Critique, error)
}

// Explainer converts an accepted plan and its critique into a narrative
// explanation. Implementations: RuleExplainer (contract of record) and the
// generative-assisted variant in the intelligence package.
type Explainer interface {
	Explain(ctx context.Context, profile domain.StudentProfile, plan domain.FourYearPlan, critique domain.Critique) (domain.Explanation, error)
}
