package intelligence

import (
	"github.com/alexanderramin/lodestar/internal/domain"
)

// PlanTrace is a flattened, JSON-serializable view of the deterministic
// data that produced an accepted plan. Passed to the LLM as context so the
// narrative stays faithful to what the engine actually decided.
type PlanTrace struct {
	CurrentGrade  int                `json:"current_grade"`
	Interests     []string           `json:"interests"`
	TargetMajors  []string           `json:"target_majors"`
	OverallScore  float64            `json:"overall_score"`
	Dimensions    map[string]float64 `json:"dimensions"`
	Strengths     []string           `json:"strengths"`
	Weaknesses    []string           `json:"weaknesses"`
	Suggestions   []string           `json:"suggestions"`
	Strategy      string             `json:"strategy"`
	KeyMilestones []string           `json:"key_milestones"`
	Years         []YearTraceItem    `json:"years"`
}

// YearTraceItem captures one grade year of the accepted plan.
type YearTraceItem struct {
	Grade            int      `json:"grade"`
	Courses          []string `json:"courses"`
	Extracurriculars []string `json:"extracurriculars"`
	Competitions     []string `json:"competitions,omitempty"`
	Internships      []string `json:"internships,omitempty"`
	TestPrep         []string `json:"test_prep,omitempty"`
	Goals            []string `json:"goals,omitempty"`
}

// BuildPlanTrace converts an accepted plan and its critique into a trace
// suitable for the explanation prompt.
func BuildPlanTrace(profile domain.StudentProfile, plan domain.FourYearPlan, critique domain.Critique) PlanTrace {
	trace := PlanTrace{
		CurrentGrade:  int(profile.CurrentGrade),
		Interests:     profile.Interests,
		TargetMajors:  profile.TargetMajors,
		OverallScore:  critique.Score,
		Dimensions:    make(map[string]float64, len(critique.Dimensions)),
		Strengths:     critique.Strengths,
		Weaknesses:    critique.Weaknesses,
		Strategy:      plan.OverallStrategy,
		KeyMilestones: plan.KeyMilestones,
	}
	for dim, score := range critique.Dimensions {
		trace.Dimensions[string(dim)] = score
	}
	for _, s := range critique.Suggestions {
		trace.Suggestions = append(trace.Suggestions, s.Message)
	}
	for _, grade := range domain.AllGrades() {
		year := plan.Year(grade)
		trace.Years = append(trace.Years, YearTraceItem{
			Grade:            int(grade),
			Courses:          year.Courses,
			Extracurriculars: year.Extracurriculars,
			Competitions:     year.Competitions,
			Internships:      year.Internships,
			TestPrep:         year.TestPrep,
			Goals:            year.Goals,
		})
	}
	return trace
}
