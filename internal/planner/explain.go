package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/lodestar/internal/domain"
)

// RuleExplainer renders an explanation from the plan and critique alone.
// It is deterministic and always succeeds; the generative explainer falls
// back to it.
type RuleExplainer struct{}

func NewRuleExplainer() *RuleExplainer { return &RuleExplainer{} }

func (e *RuleExplainer) Explain(_ context.Context, profile domain.StudentProfile, plan domain.FourYearPlan, critique domain.Critique) (domain.Explanation, error) {
	return domain.Explanation{
		Summary:         buildSummary(profile, critique),
		PlanOverview:    BuildOverview(plan),
		YearByYear:      BuildYearByYear(profile, plan),
		Recommendations: buildRecommendations(critique),
		NextSteps:       buildNextSteps(profile),
	}, nil
}

func buildSummary(profile domain.StudentProfile, critique domain.Critique) string {
	var quality string
	switch {
	case critique.Score >= 0.85:
		quality = "a strong, well-balanced roadmap"
	case critique.Score >= 0.7:
		quality = "a solid roadmap with room to sharpen"
	case critique.Score >= 0.5:
		quality = "a workable starting roadmap that needs further refinement"
	default:
		quality = "an early draft roadmap with significant gaps to close"
	}
	if len(profile.Interests) > 0 {
		return fmt.Sprintf("This is %s for a grade %d student focused on %s (overall score %.2f).",
			quality, int(profile.CurrentGrade), joinNatural(profile.Interests), critique.Score)
	}
	return fmt.Sprintf("This is %s for a grade %d student (overall score %.2f).",
		quality, int(profile.CurrentGrade), critique.Score)
}

// BuildOverview is exported because the generative explainer always uses
// the deterministic overview and year summaries, only narrating on top.
func BuildOverview(plan domain.FourYearPlan) string {
	var b strings.Builder
	b.WriteString(plan.OverallStrategy)
	if len(plan.KeyMilestones) > 0 {
		b.WriteString(" Key milestones: ")
		b.WriteString(strings.Join(plan.KeyMilestones, "; "))
		b.WriteString(".")
	}
	return b.String()
}

func BuildYearByYear(profile domain.StudentProfile, plan domain.FourYearPlan) []domain.YearSummary {
	var summaries []domain.YearSummary
	for _, grade := range domain.AllGrades() {
		year := plan.Year(grade)
		var b strings.Builder
		if grade < profile.CurrentGrade {
			b.WriteString("Completed. ")
		}
		if len(year.Courses) > 0 {
			fmt.Fprintf(&b, "Courses: %s. ", strings.Join(year.Courses, ", "))
		}
		if len(year.Extracurriculars) > 0 {
			fmt.Fprintf(&b, "Activities: %s. ", strings.Join(year.Extracurriculars, ", "))
		}
		if len(year.Competitions) > 0 {
			fmt.Fprintf(&b, "Competitions: %s. ", strings.Join(year.Competitions, ", "))
		}
		if len(year.Internships) > 0 {
			fmt.Fprintf(&b, "Internships: %s. ", strings.Join(year.Internships, ", "))
		}
		if len(year.TestPrep) > 0 {
			fmt.Fprintf(&b, "Test prep: %s. ", strings.Join(year.TestPrep, ", "))
		}
		if year.Rationale != "" {
			b.WriteString(year.Rationale)
		}
		summaries = append(summaries, domain.YearSummary{
			Grade: grade,
			Text:  strings.TrimSpace(b.String()),
		})
	}
	return summaries
}

func buildRecommendations(critique domain.Critique) []string {
	var recs []string
	for _, s := range critique.Suggestions {
		recs = append(recs, s.Message)
	}
	for _, w := range critique.Weaknesses {
		recs = append(recs, "Watch: "+w)
	}
	if len(recs) == 0 {
		recs = append(recs, "Keep executing the plan as written and review it at the end of each semester.")
	}
	return recs
}

func buildNextSteps(profile domain.StudentProfile) []string {
	switch profile.CurrentGrade {
	case domain.GradeFreshman:
		return []string{
			"Register for the planned courses with your counselor",
			"Join the two clubs named for this year within the first month",
			"Set up a simple system to track grades and deadlines",
		}
	case domain.GradeSophomore:
		return []string{
			"Confirm advanced course placement for next year",
			"Sign up for the PSAT 10",
			"Take on one concrete responsibility in your main activity",
		}
	case domain.GradeJunior:
		return []string{
			"Register for the PSAT/NMSQT and book a SAT/ACT date",
			"Run for a leadership position this semester",
			"Draft the first version of your college list",
		}
	default:
		return []string{
			"Finalize the college list and application calendar",
			"Ask two teachers for recommendation letters now",
			"Keep senior-year grades strong; admissions offices check them",
		}
	}
}
