package planner

import (
	"context"
	"testing"

	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleExplainer_CoversEveryYear(t *testing.T) {
	profile := csFreshman()
	plan := synthesized(t, profile)
	critique := evaluate(t, profile, plan)

	explanation, err := NewRuleExplainer().Explain(context.Background(), profile, plan, critique)
	require.NoError(t, err)

	assert.NotEmpty(t, explanation.Summary)
	assert.Contains(t, explanation.Summary, "grade 9")
	assert.NotEmpty(t, explanation.PlanOverview)
	require.Len(t, explanation.YearByYear, 4)
	for i, ys := range explanation.YearByYear {
		assert.Equal(t, domain.GradeLevel(9+i), ys.Grade)
		assert.NotEmpty(t, ys.Text)
	}
	assert.NotEmpty(t, explanation.Recommendations)
	assert.NotEmpty(t, explanation.NextSteps)
}

func TestRuleExplainer_MarksCompletedYears(t *testing.T) {
	profile := domain.StudentProfile{
		CurrentGrade: domain.GradeJunior,
		CoursesTaken: []string{"Algebra I"},
	}
	plan := synthesized(t, profile)
	critique := evaluate(t, profile, plan)

	explanation, err := NewRuleExplainer().Explain(context.Background(), profile, plan, critique)
	require.NoError(t, err)
	assert.Contains(t, explanation.YearByYear[0].Text, "Completed.")
	assert.NotContains(t, explanation.YearByYear[2].Text, "Completed.")
}

func TestRuleExplainer_SurfacesSuggestions(t *testing.T) {
	profile := csFreshman()
	plan := domain.FourYearPlan{}
	critique := evaluate(t, profile, plan)
	require.NotEmpty(t, critique.Suggestions)

	explanation, err := NewRuleExplainer().Explain(context.Background(), profile, plan, critique)
	require.NoError(t, err)
	assert.Contains(t, explanation.Recommendations, critique.Suggestions[0].Message)
}
