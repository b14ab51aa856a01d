package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lodestar/internal/app"
	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/alexanderramin/lodestar/internal/match"
	"github.com/alexanderramin/lodestar/internal/planner"
	"github.com/alexanderramin/lodestar/internal/repository"
)

// PipelineService implements app.PlanUseCase. The synthesizer and
// evaluator are built per request because the acceptance threshold is a
// request parameter; the explainer is chosen once at construction.
type PipelineService struct {
	history       repository.HistoryRepo
	opportunities repository.OpportunityRepo
	explainer     planner.Explainer
	observer      UseCaseObserver
}

func NewPipelineService(
	history repository.HistoryRepo,
	opportunities repository.OpportunityRepo,
	explainer planner.Explainer,
	observers ...UseCaseObserver,
) *PipelineService {
	if explainer == nil {
		explainer = planner.NewRuleExplainer()
	}
	return &PipelineService{
		history:       history,
		opportunities: opportunities,
		explainer:     explainer,
		observer:      useCaseObserverOrNoop(observers),
	}
}

var _ app.PlanUseCase = (*PipelineService)(nil)

func (s *PipelineService) Plan(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error) {
	start := time.Now()
	resp, err := s.plan(ctx, req)

	fields := map[string]any{"grade": int(req.Profile.CurrentGrade)}
	if resp != nil {
		fields["iterations"] = resp.Iterations
		fields["final_score"] = resp.FinalScore
		fields["cancelled"] = resp.Cancelled
		fields["retrieval_degraded"] = resp.RetrievalDegraded
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
	return resp, err
}

func (s *PipelineService) plan(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error) {
	if err := req.Profile.Validate(); err != nil {
		return nil, &app.PipelineError{
			Code:    app.ErrInvalidProfile,
			Message: err.Error(),
			Err:     err,
		}
	}
	applyRequestDefaults(&req)

	rctx, similar, degraded := s.loadRetrievalContext(ctx, req)

	synth := planner.NewRuleSynthesizer()
	evalCfg := planner.DefaultEvaluatorConfig()
	evalCfg.AcceptThreshold = req.MinScoreThreshold
	controller := planner.NewController(synth, planner.NewRuleEvaluator(evalCfg))

	result, err := controller.Run(ctx, req.Profile, rctx, req.MaxIterations)
	if err != nil {
		return nil, err
	}

	explanation, err := s.explainer.Explain(ctx, req.Profile, result.Plan, result.Critique)
	if err != nil {
		// Explanation is best-effort; fall back rather than fail the run.
		explanation, _ = planner.NewRuleExplainer().Explain(ctx, req.Profile, result.Plan, result.Critique)
	}

	return &app.PlanResponse{
		Profile:           req.Profile,
		Plan:              result.Plan,
		Critique:          result.Critique,
		Explanation:       explanation,
		Iterations:        result.Iterations,
		FinalScore:        result.Critique.Score,
		Cancelled:         result.Cancelled,
		History:           result.History,
		SimilarProfiles:   similar,
		RetrievalDegraded: degraded,
	}, nil
}

// loadRetrievalContext reads both stores. A store failure degrades the run
// to an empty context instead of aborting it; the event log carries the
// RETRIEVAL_UNAVAILABLE code.
func (s *PipelineService) loadRetrievalContext(ctx context.Context, req app.PlanRequest) (planner.RetrievalContext, []domain.SimilarProfile, bool) {
	degraded := false
	var similar []domain.SimilarProfile
	rctx := planner.RetrievalContext{}

	profiles, err := s.history.ListAll(ctx)
	if err != nil {
		degraded = true
		s.observeDegraded(ctx, "history", err)
	} else {
		index := match.NewIndex(profiles)
		similar = index.FindSimilar(req.Profile, req.SimilarK)
		rctx.Similar = similar
	}

	opps, err := s.opportunities.ListAll(ctx)
	if err != nil {
		degraded = true
		s.observeDegraded(ctx, "opportunities", err)
	} else {
		rctx.Opportunities = match.NewOpportunityFilter(opps)
	}

	return rctx, similar, degraded
}

func (s *PipelineService) observeDegraded(ctx context.Context, store string, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:    "retrieval",
		Success: false,
		Err: &app.PipelineError{
			Code:    app.ErrRetrievalUnavailable,
			Message: "store unavailable, continuing without retrieval",
			Err:     err,
		},
		Fields:    map[string]any{"store": store},
		StartedAt: time.Now(),
	})
}

func applyRequestDefaults(req *app.PlanRequest) {
	if req.MaxIterations <= 0 {
		req.MaxIterations = app.DefaultMaxIterations
	}
	if req.MinScoreThreshold <= 0 {
		req.MinScoreThreshold = app.DefaultMinScore
	}
	if req.SimilarK <= 0 {
		req.SimilarK = app.DefaultSimilarK
	}
}
