package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/lodestar/internal/app"
	"github.com/alexanderramin/lodestar/internal/domain"
)

// Controller drives the synthesize/evaluate refinement loop.
type Controller struct {
	synth Synthesizer
	eval  Evaluator
}

func NewController(synth Synthesizer, eval Evaluator) *Controller {
	return &Controller{synth: synth, eval: eval}
}

// RunResult is the outcome of a refinement run. Plan and Critique always
// refer to the best iteration seen; when Cancelled is set they come from
// the last iteration completed before the context was observed done.
type RunResult struct {
	Plan       domain.FourYearPlan
	Critique   domain.Critique
	Iterations int
	Cancelled  bool
	History    []app.IterationRecord
}

// Run iterates until the evaluator accepts or maxIterations is reached.
// At least one full synthesize/evaluate pass always happens, and on
// exhaustion the final plan is returned with its critique rather than an
// error. Suggestions accumulate across iterations so an item incorporated
// once is asked for again in every later synthesis.
func (c *Controller) Run(ctx context.Context, profile domain.StudentProfile, rctx RetrievalContext, maxIterations int) (*RunResult, error) {
	if maxIterations < 1 {
		maxIterations = 1
	}

	var (
		prior   *domain.Critique
		carried []domain.Suggestion
		result  = &RunResult{}
		best    = -1.0
	)
	for iteration := 1; ; iteration++ {
		plan, err := c.synth.Synthesize(profile, rctx, prior)
		if err != nil {
			return nil, &app.PipelineError{
				Code:      app.ErrSynthesisFailed,
				Message:   "plan synthesis failed",
				Iteration: iteration,
				Err:       err,
			}
		}
		critique, err := c.eval.Evaluate(profile, plan)
		if err != nil {
			return nil, &app.PipelineError{
				Code:      app.ErrEvaluationFailed,
				Message:   "plan evaluation failed",
				Iteration: iteration,
				Err:       err,
			}
		}

		result.Iterations = iteration
		result.History = append(result.History, app.IterationRecord{
			Iteration:     iteration,
			Score:         critique.Score,
			NeedsRevision: critique.NeedsRevision,
		})
		if critique.Score > best {
			best = critique.Score
			result.Plan = plan
			result.Critique = critique
		}

		if ctx.Err() != nil {
			result.Cancelled = true
			return result, nil
		}
		if !critique.NeedsRevision || iteration >= maxIterations {
			result.Plan = plan
			result.Critique = critique
			return result, nil
		}

		carried = mergeSuggestions(carried, critique.Suggestions)
		next := critique
		next.Suggestions = carried
		prior = &next
	}
}

// mergeSuggestions appends the new suggestions that target a (grade,
// field, item) triple not already carried. First occurrence wins so the
// earliest message is kept.
func mergeSuggestions(carried, incoming []domain.Suggestion) []domain.Suggestion {
	seen := make(map[string]bool, len(carried))
	for _, s := range carried {
		seen[suggestionKey(s)] = true
	}
	for _, s := range incoming {
		key := suggestionKey(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		carried = append(carried, s)
	}
	return carried
}

func suggestionKey(s domain.Suggestion) string {
	return fmt.Sprintf("%d|%s|%s", int(s.Grade), s.Field, strings.ToLower(s.Item))
}
