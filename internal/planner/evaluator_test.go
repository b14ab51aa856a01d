package planner

import (
	"testing"

	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, profile domain.StudentProfile, plan domain.FourYearPlan) domain.Critique {
	t.Helper()
	critique, err := NewRuleEvaluator(DefaultEvaluatorConfig()).Evaluate(profile, plan)
	require.NoError(t, err)
	return critique
}

func synthesized(t *testing.T, profile domain.StudentProfile) domain.FourYearPlan {
	t.Helper()
	plan, err := NewRuleSynthesizer().Synthesize(profile, RetrievalContext{}, nil)
	require.NoError(t, err)
	return plan
}

func TestEvaluate_SynthesizedPlanIsAccepted(t *testing.T) {
	profile := csFreshman()
	critique := evaluate(t, profile, synthesized(t, profile))

	assert.GreaterOrEqual(t, critique.Score, 0.7)
	assert.False(t, critique.NeedsRevision)
	assert.False(t, critique.HasCriticalWeakness)
	assert.Len(t, critique.Dimensions, 5)
	assert.NotEmpty(t, critique.Strengths)
}

func TestEvaluate_Idempotent(t *testing.T) {
	profile := csFreshman()
	plan := synthesized(t, profile)

	first := evaluate(t, profile, plan)
	second := evaluate(t, profile, plan)
	assert.Equal(t, first, second)
}

func TestEvaluate_ScoreIsWeightedSum(t *testing.T) {
	profile := csFreshman()
	critique := evaluate(t, profile, synthesized(t, profile))

	var sum float64
	for dim, score := range critique.Dimensions {
		sum += dimensionWeights[dim] * score
	}
	assert.InDelta(t, sum, critique.Score, 1e-9)
	assert.GreaterOrEqual(t, critique.Score, 0.0)
	assert.LessOrEqual(t, critique.Score, 1.0)
}

func TestEvaluate_EmptyPlanIsCritical(t *testing.T) {
	critique := evaluate(t, csFreshman(), domain.FourYearPlan{})

	assert.True(t, critique.NeedsRevision)
	assert.True(t, critique.HasCriticalWeakness)
	assert.Less(t, critique.Score, 0.25)
	assert.NotEmpty(t, critique.Weaknesses)

	// One suggestion per weak dimension, all incorporable.
	require.Len(t, critique.Suggestions, 5)
	seen := map[domain.Dimension]bool{}
	for _, s := range critique.Suggestions {
		assert.False(t, seen[s.Dimension], "duplicate suggestion for %s", s.Dimension)
		seen[s.Dimension] = true
		assert.GreaterOrEqual(t, s.Grade, domain.GradeFreshman)
		assert.LessOrEqual(t, s.Grade, domain.GradeSenior)
		assert.NotEmpty(t, s.Item)
		assert.NotEmpty(t, s.Message)
	}
}

func TestEvaluate_SuggestionsTargetAbsentItems(t *testing.T) {
	plan := domain.FourYearPlan{}
	critique := evaluate(t, csFreshman(), plan)

	for _, s := range critique.Suggestions {
		assert.False(t, plan.Contains(s.Grade, s.Field, s.Item),
			"suggestion %q already present", s.Item)
	}
}

func TestEvaluate_SuggestionsRespectCurrentGrade(t *testing.T) {
	profile := csFreshman()
	profile.CurrentGrade = domain.GradeJunior
	critique := evaluate(t, profile, domain.FourYearPlan{})

	for _, s := range critique.Suggestions {
		assert.GreaterOrEqual(t, s.Grade, domain.GradeJunior,
			"suggestion for %s targets a past year", s.Dimension)
	}
}

func TestEvaluate_SeniorRigorDipFlagsProgression(t *testing.T) {
	plan := domain.FourYearPlan{}
	for _, grade := range domain.AllGrades() {
		plan.Year(grade).Grade = grade
		plan.Year(grade).Add(domain.FieldCourses, "English")
	}
	plan.Year(domain.GradeJunior).Add(domain.FieldCourses, "AP Biology")
	plan.Year(domain.GradeJunior).Add(domain.FieldCourses, "AP Chemistry")

	critique := evaluate(t, csFreshman(), plan)
	assert.Contains(t, critique.Weaknesses, "Senior-year course rigor drops below junior year")
	assert.Less(t, critique.Dimensions[domain.DimProgression], 1.0)
}

func TestEvaluate_TestScoresAtTargetSatisfyPrep(t *testing.T) {
	profile := csFreshman()
	profile.TestScores = map[string]float64{"SAT": 1500}

	critique := evaluate(t, profile, domain.FourYearPlan{})
	assert.InDelta(t, 1.0, critique.Dimensions[domain.DimTestPrep], 1e-9)
}

func TestEvaluate_IdempotentWithMultipleMetTargets(t *testing.T) {
	profile := csFreshman()
	profile.TestScores = map[string]float64{"SAT": 1500, "ACT": 35}
	plan := synthesized(t, profile)

	first := evaluate(t, profile, plan)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, evaluate(t, profile, plan))
	}
	assert.Contains(t, first.Strengths, "ACT score already meets the target")
}

func TestEvaluate_NoDeclaredInterestsIsNeutralAlignment(t *testing.T) {
	profile := domain.StudentProfile{CurrentGrade: domain.GradeFreshman}
	critique := evaluate(t, profile, synthesized(t, profile))
	assert.InDelta(t, 0.5, critique.Dimensions[domain.DimAlignment], 1e-9)
}

func TestEvaluate_HighThresholdStillYieldsSuggestion(t *testing.T) {
	cfg := DefaultEvaluatorConfig()
	cfg.AcceptThreshold = 0.99

	profile := csFreshman()
	critique, err := NewRuleEvaluator(cfg).Evaluate(profile, synthesized(t, profile))
	require.NoError(t, err)

	assert.True(t, critique.NeedsRevision)
	assert.NotEmpty(t, critique.Suggestions, "a revisable critique must carry something to incorporate")
}

func TestEvaluate_AdvancedCourseDetection(t *testing.T) {
	assert.True(t, isAdvancedCourse("AP Biology"))
	assert.True(t, isAdvancedCourse("Honors Geometry"))
	assert.True(t, isAdvancedCourse("Data Structures (Dual Enrollment)"))
	assert.True(t, isAdvancedCourse("Advanced Topics in Math"))
	assert.False(t, isAdvancedCourse("Apple Orchard Management"))
	assert.False(t, isAdvancedCourse("English 9"))
}
