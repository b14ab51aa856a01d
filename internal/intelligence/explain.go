package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/alexanderramin/lodestar/internal/llm"
	"github.com/alexanderramin/lodestar/internal/planner"
)

// llmExplanation is the JSON shape the model is asked to produce. The
// deterministic overview and year-by-year sections are never delegated.
type llmExplanation struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	NextSteps       []string `json:"next_steps"`
}

func validateExplanation(e llmExplanation) error {
	if strings.TrimSpace(e.Summary) == "" {
		return fmt.Errorf("summary is empty")
	}
	if len(e.Recommendations) == 0 {
		return fmt.Errorf("recommendations is empty")
	}
	if len(e.NextSteps) == 0 {
		return fmt.Errorf("next_steps is empty")
	}
	return nil
}

// GenerativeExplainer narrates accepted plans with an LLM, grounded on the
// plan trace. The server is probed first so a machine without Ollama falls
// back immediately instead of waiting out the generation timeout; any later
// failure, from transport to validation, falls back the same way, so
// Explain never returns an error path the caller has to branch on.
type GenerativeExplainer struct {
	client   llm.Client
	fallback *planner.RuleExplainer
}

func NewGenerativeExplainer(client llm.Client) *GenerativeExplainer {
	return &GenerativeExplainer{
		client:   client,
		fallback: planner.NewRuleExplainer(),
	}
}

var _ planner.Explainer = (*GenerativeExplainer)(nil)

func (e *GenerativeExplainer) Explain(ctx context.Context, profile domain.StudentProfile, plan domain.FourYearPlan, critique domain.Critique) (domain.Explanation, error) {
	if !e.client.Available(ctx) {
		return e.fallback.Explain(ctx, profile, plan, critique)
	}

	trace := BuildPlanTrace(profile, plan, critique)
	traceJSON, err := json.MarshalIndent(trace, "", "  ")
	if err != nil {
		return e.fallback.Explain(ctx, profile, plan, critique)
	}

	resp, err := e.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskExplain,
		SystemPrompt: explainSystemPrompt,
		UserPrompt:   "Here is the roadmap trace:\n\n" + string(traceJSON),
	})
	if err != nil {
		return e.fallback.Explain(ctx, profile, plan, critique)
	}

	parsed, err := llm.ExtractJSON[llmExplanation](resp.Text, validateExplanation)
	if err != nil {
		return e.fallback.Explain(ctx, profile, plan, critique)
	}

	return domain.Explanation{
		Summary:         parsed.Summary,
		PlanOverview:    planner.BuildOverview(plan),
		YearByYear:      planner.BuildYearByYear(profile, plan),
		Recommendations: parsed.Recommendations,
		NextSteps:       parsed.NextSteps,
	}, nil
}
