package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lodestar/internal/app"
	"github.com/alexanderramin/lodestar/internal/domain"
)

var dimensionLabels = map[domain.Dimension]string{
	domain.DimCourseRigor:     "Course rigor",
	domain.DimExtracurricular: "Extracurricular depth",
	domain.DimAlignment:       "Interest alignment",
	domain.DimProgression:     "Year-over-year progression",
	domain.DimTestPrep:        "Test preparation",
}

// FormatPlanResponse renders a completed planning run for the terminal.
func FormatPlanResponse(resp *app.PlanResponse) string {
	var b strings.Builder

	b.WriteString(Header("Four-Year Roadmap"))
	b.WriteString("\n\n")
	b.WriteString(resp.Explanation.Summary)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s  %s\n",
		Bold("Overall score:"),
		ScoreIndicator(resp.FinalScore),
		Dim(fmt.Sprintf("(%d iteration(s))", resp.Iterations)))
	if resp.Cancelled {
		b.WriteString(StyleYellow.Render("Run was cancelled; showing the best plan produced so far."))
		b.WriteString("\n")
	}
	if resp.RetrievalDegraded {
		b.WriteString(Dim("Note: historical data was unavailable; this plan was built without retrieval."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, dim := range domain.AllDimensions() {
		score, ok := resp.Critique.Dimensions[dim]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %-28s %s\n", dimensionLabels[dim], ScoreIndicator(score))
	}
	b.WriteString("\n")

	b.WriteString(Header("Strategy"))
	b.WriteString("\n")
	b.WriteString(resp.Explanation.PlanOverview)
	b.WriteString("\n\n")

	for _, grade := range domain.AllGrades() {
		year := resp.Plan.Year(grade)
		fmt.Fprintf(&b, "%s\n", StyleBlue.Bold(true).Render(fmt.Sprintf("Grade %d (%s)", int(grade), grade.Label())))
		writeSection(&b, "Courses", year.Courses)
		writeSection(&b, "Activities", year.Extracurriculars)
		writeSection(&b, "Competitions", year.Competitions)
		writeSection(&b, "Internships", year.Internships)
		writeSection(&b, "Test prep", year.TestPrep)
		writeSection(&b, "Goals", year.Goals)
		if year.Rationale != "" {
			fmt.Fprintf(&b, "  %s\n", Dim(year.Rationale))
		}
		b.WriteString("\n")
	}

	if len(resp.Explanation.Recommendations) > 0 {
		b.WriteString(Header("Recommendations"))
		b.WriteString("\n")
		for _, rec := range resp.Explanation.Recommendations {
			fmt.Fprintf(&b, "  • %s\n", rec)
		}
		b.WriteString("\n")
	}

	if len(resp.Explanation.NextSteps) > 0 {
		b.WriteString(Header("Next Steps"))
		b.WriteString("\n")
		for i, step := range resp.Explanation.NextSteps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
		b.WriteString("\n")
	}

	if len(resp.SimilarProfiles) > 0 {
		b.WriteString(Header("Similar Students"))
		b.WriteString("\n")
		for _, sp := range resp.SimilarProfiles {
			line := fmt.Sprintf("  %s match", ScoreIndicator(sp.Score))
			if len(sp.MatchedOn) > 0 {
				line += Dim(fmt.Sprintf(" (on %s)", strings.Join(sp.MatchedOn, ", ")))
			}
			if len(sp.Profile.AdmittedColleges) > 0 {
				line += fmt.Sprintf(" admitted to %s", strings.Join(sp.Profile.AdmittedColleges, ", "))
			}
			if sp.Profile.FinalMajor != "" {
				line += Dim(fmt.Sprintf(", majored in %s", sp.Profile.FinalMajor))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeSection(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s %s\n", StylePurple.Render(label+":"), strings.Join(items, ", "))
}

// FormatHistoricalProfiles renders a profile listing for search results.
func FormatHistoricalProfiles(profiles []*domain.HistoricalProfile) string {
	if len(profiles) == 0 {
		return Dim("No profiles found.") + "\n"
	}
	var b strings.Builder
	for _, p := range profiles {
		fmt.Fprintf(&b, "%s %s\n",
			StyleBlue.Render(fmt.Sprintf("#%d", p.Seq)),
			Bold(strings.Join(p.Profile.Interests, ", ")))
		if len(p.Profile.TargetMajors) > 0 {
			fmt.Fprintf(&b, "  %s %s\n", StylePurple.Render("Majors:"), strings.Join(p.Profile.TargetMajors, ", "))
		}
		if len(p.AdmittedColleges) > 0 {
			fmt.Fprintf(&b, "  %s %s\n", StylePurple.Render("Admitted:"), strings.Join(p.AdmittedColleges, ", "))
		}
		if p.FinalMajor != "" {
			fmt.Fprintf(&b, "  %s %s\n", StylePurple.Render("Final major:"), p.FinalMajor)
		}
	}
	return b.String()
}

// FormatOpportunities renders the opportunity catalog.
func FormatOpportunities(opps []*domain.Opportunity) string {
	if len(opps) == 0 {
		return Dim("No opportunities found.") + "\n"
	}
	var b strings.Builder
	for _, o := range opps {
		fmt.Fprintf(&b, "%s %s %s\n",
			StyleBlue.Render(fmt.Sprintf("#%d", o.Seq)),
			Bold(o.Name),
			Dim(fmt.Sprintf("[%s, grades %d-%d]", o.Category, int(o.MinGrade), int(o.MaxGrade))))
		if o.Description != "" {
			fmt.Fprintf(&b, "  %s\n", o.Description)
		}
		if len(o.InterestTags) > 0 {
			fmt.Fprintf(&b, "  %s %s\n", StylePurple.Render("Tags:"), strings.Join(o.InterestTags, ", "))
		}
	}
	return b.String()
}
