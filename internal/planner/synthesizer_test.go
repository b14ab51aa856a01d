package planner

import (
	"testing"

	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csFreshman() domain.StudentProfile {
	return domain.StudentProfile{
		CurrentGrade: domain.GradeFreshman,
		Interests:    []string{"Computer Science"},
		TargetMajors: []string{"Computer Science"},
	}
}

func TestSynthesize_ComputerScienceFreshman(t *testing.T) {
	synth := NewRuleSynthesizer()
	plan, err := synth.Synthesize(csFreshman(), RetrievalContext{}, nil)
	require.NoError(t, err)

	// Grade 9 gets an interest-matched course and club.
	year9 := plan.Year(domain.GradeFreshman)
	assert.True(t, year9.Contains(domain.FieldCourses, "Introduction to Computer Science"))
	assert.True(t, year9.Contains(domain.FieldExtracurriculars, "Computer Science Club"))

	// Rigor escalates across the remaining years.
	assert.True(t, plan.Contains(domain.GradeSophomore, domain.FieldCourses, "AP Computer Science Principles"))
	assert.True(t, plan.Contains(domain.GradeJunior, domain.FieldCourses, "AP Computer Science A"))
	assert.True(t, plan.Contains(domain.GradeSenior, domain.FieldCourses, "Data Structures (Dual Enrollment)"))

	// STEM focus adds the calculus track.
	assert.True(t, plan.Contains(domain.GradeJunior, domain.FieldCourses, "AP Calculus AB"))
	assert.True(t, plan.Contains(domain.GradeSenior, domain.FieldCourses, "AP Calculus BC"))

	// Test prep lands in grades 10-12, never 9.
	assert.Empty(t, year9.TestPrep)
	assert.NotEmpty(t, plan.Year(domain.GradeSophomore).TestPrep)
	assert.NotEmpty(t, plan.Year(domain.GradeJunior).TestPrep)
	assert.NotEmpty(t, plan.Year(domain.GradeSenior).TestPrep)

	// Leadership appears by junior year.
	assert.True(t, plan.Contains(domain.GradeJunior, domain.FieldExtracurriculars, "Leadership role in an existing club"))
}

func TestSynthesize_Deterministic(t *testing.T) {
	synth := NewRuleSynthesizer()
	a, err := synth.Synthesize(csFreshman(), RetrievalContext{}, nil)
	require.NoError(t, err)
	b, err := synth.Synthesize(csFreshman(), RetrievalContext{}, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSynthesize_LadderEntriesKeepDeclarationOrder(t *testing.T) {
	synth := NewRuleSynthesizer()
	profile := domain.StudentProfile{
		CurrentGrade: domain.GradeFreshman,
		Interests:    []string{"Computer Science", "Mathematics"},
	}

	first, err := synth.Synthesize(profile, RetrievalContext{}, nil)
	require.NoError(t, err)
	wantContests := []string{
		"USA Computing Olympiad (USACO)",
		"AMC 10/12 (American Mathematics Competitions)",
	}
	assert.Equal(t, wantContests, first.Year(domain.GradeSophomore).Competitions)

	for i := 0; i < 30; i++ {
		again, err := synth.Synthesize(profile, RetrievalContext{}, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSynthesize_PastYearsReflectRecord(t *testing.T) {
	profile := domain.StudentProfile{
		CurrentGrade:     domain.GradeJunior,
		Interests:        []string{"Biology"},
		CoursesTaken:     []string{"Algebra I", "Geometry"},
		Extracurriculars: []string{"Chess Club"},
	}
	synth := NewRuleSynthesizer()
	plan, err := synth.Synthesize(profile, RetrievalContext{}, nil)
	require.NoError(t, err)

	year9 := plan.Year(domain.GradeFreshman)
	assert.Equal(t, []string{"Algebra I", "Geometry"}, year9.Courses)
	assert.Equal(t, []string{"Chess Club"}, year9.Extracurriculars)
	assert.Empty(t, year9.TestPrep)
	assert.Empty(t, year9.Goals)

	// Remaining years still get planned content.
	assert.NotEmpty(t, plan.Year(domain.GradeJunior).Courses)
	assert.True(t, plan.Contains(domain.GradeJunior, domain.FieldExtracurriculars, "Chess Club (continued)"))
}

func TestSynthesize_IncorporatesEverySuggestion(t *testing.T) {
	critique := &domain.Critique{
		Suggestions: []domain.Suggestion{
			{Dimension: domain.DimCourseRigor, Grade: domain.GradeSophomore, Field: domain.FieldCourses, Item: "AP Statistics"},
			{Dimension: domain.DimTestPrep, Grade: domain.GradeJunior, Field: domain.FieldTestPrep, Item: "A weekly test preparation block"},
			{Dimension: domain.DimExtracurricular, Grade: domain.GradeSenior, Field: domain.FieldExtracurriculars, Item: "Community Volunteering"},
		},
	}

	synth := NewRuleSynthesizer()
	plan, err := synth.Synthesize(csFreshman(), RetrievalContext{}, critique)
	require.NoError(t, err)

	for _, s := range critique.Suggestions {
		assert.True(t, plan.Contains(s.Grade, s.Field, s.Item), "suggestion %q not incorporated", s.Item)
	}
}

func TestSynthesize_RevisionIsSuperset(t *testing.T) {
	synth := NewRuleSynthesizer()
	base, err := synth.Synthesize(csFreshman(), RetrievalContext{}, nil)
	require.NoError(t, err)

	critique := &domain.Critique{
		Suggestions: []domain.Suggestion{
			{Dimension: domain.DimCourseRigor, Grade: domain.GradeSenior, Field: domain.FieldCourses, Item: "AP Statistics"},
		},
	}
	revised, err := synth.Synthesize(csFreshman(), RetrievalContext{}, critique)
	require.NoError(t, err)

	for _, grade := range domain.AllGrades() {
		for _, field := range []domain.PlanField{domain.FieldCourses, domain.FieldExtracurriculars, domain.FieldCompetitions, domain.FieldTestPrep, domain.FieldGoals} {
			for _, item := range base.Year(grade).List(field) {
				assert.True(t, revised.Contains(grade, field, item),
					"revision dropped %s/%s %q", grade, field, item)
			}
		}
	}
}

type fakeOpportunitySource struct {
	opps []*domain.Opportunity
}

func (f *fakeOpportunitySource) Relevant(grade domain.GradeLevel, interests []string) []*domain.Opportunity {
	var out []*domain.Opportunity
	for _, o := range f.opps {
		if o.EligibleFor(grade) {
			out = append(out, o)
		}
	}
	return out
}

func TestSynthesize_RoutesOpportunitiesByCategory(t *testing.T) {
	src := &fakeOpportunitySource{opps: []*domain.Opportunity{
		{ID: "c", Name: "Coding Olympiad", Category: domain.CategoryCompetition, MinGrade: domain.GradeFreshman, MaxGrade: domain.GradeSenior},
		{ID: "i", Name: "Summer Internship", Category: domain.CategoryInternship, MinGrade: domain.GradeFreshman, MaxGrade: domain.GradeSenior},
		{ID: "p", Name: "Research Program", Category: domain.CategoryAcademic, MinGrade: domain.GradeFreshman, MaxGrade: domain.GradeSenior},
	}}

	synth := NewRuleSynthesizer()
	plan, err := synth.Synthesize(csFreshman(), RetrievalContext{Opportunities: src}, nil)
	require.NoError(t, err)

	assert.True(t, plan.Contains(domain.GradeFreshman, domain.FieldCompetitions, "Coding Olympiad"))
	assert.True(t, plan.Contains(domain.GradeFreshman, domain.FieldExtracurriculars, "Research Program"))

	// Internships only from junior year on.
	assert.False(t, plan.Contains(domain.GradeFreshman, domain.FieldInternships, "Summer Internship"))
	assert.True(t, plan.Contains(domain.GradeJunior, domain.FieldInternships, "Summer Internship"))
}

func TestSynthesize_NoDuplicateEntries(t *testing.T) {
	profile := csFreshman()
	profile.Extracurriculars = []string{"Robotics"}
	synth := NewRuleSynthesizer()
	plan, err := synth.Synthesize(profile, RetrievalContext{}, nil)
	require.NoError(t, err)

	for _, grade := range domain.AllGrades() {
		seen := map[string]bool{}
		for _, c := range plan.Year(grade).Courses {
			assert.False(t, seen[c], "duplicate course %q in grade %d", c, int(grade))
			seen[c] = true
		}
	}
}
