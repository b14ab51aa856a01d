package planner

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lodestar/internal/domain"
)

// baseCourses is the grade-level core curriculum every plan starts from.
var baseCourses = map[domain.GradeLevel][]string{
	domain.GradeFreshman:  {"Algebra I", "Biology", "English 9", "World History"},
	domain.GradeSophomore: {"Geometry", "Chemistry", "English 10", "US History"},
	domain.GradeJunior:    {"Precalculus", "Physics", "English 11", "AP US History"},
	domain.GradeSenior:    {"Calculus", "AP English Literature", "AP Government"},
}

// courseLadder escalates rigor in one subject area across the four years.
// Keywords are matched as substrings of the student's normalized interests
// and target majors.
type courseLadder struct {
	keywords []string
	courses  map[domain.GradeLevel]string
	extraECs []gradedEntry
	contests []gradedEntry
}

// gradedEntry is an activity recommended from a grade onward. Entries are
// kept in declaration order so plan lists come out the same every run.
type gradedEntry struct {
	from domain.GradeLevel
	name string
}

var courseLadders = []courseLadder{
	{
		keywords: []string{"computer", "programming", "software", "robotics", "technology"},
		courses: map[domain.GradeLevel]string{
			domain.GradeFreshman:  "Introduction to Computer Science",
			domain.GradeSophomore: "AP Computer Science Principles",
			domain.GradeJunior:    "AP Computer Science A",
			domain.GradeSenior:    "Data Structures (Dual Enrollment)",
		},
		extraECs: []gradedEntry{
			{from: domain.GradeSophomore, name: "Hackathon Team"},
		},
		contests: []gradedEntry{
			{from: domain.GradeSophomore, name: "USA Computing Olympiad (USACO)"},
		},
	},
	{
		keywords: []string{"math", "engineering"},
		courses: map[domain.GradeLevel]string{
			domain.GradeFreshman:  "Honors Geometry",
			domain.GradeSophomore: "Honors Precalculus",
			domain.GradeJunior:    "AP Calculus AB",
			domain.GradeSenior:    "AP Calculus BC",
		},
		extraECs: []gradedEntry{
			{from: domain.GradeFreshman, name: "Math Team"},
		},
		contests: []gradedEntry{
			{from: domain.GradeFreshman, name: "AMC 10/12 (American Mathematics Competitions)"},
		},
	},
	{
		keywords: []string{"biology", "medicine", "pre-med", "health"},
		courses: map[domain.GradeLevel]string{
			domain.GradeFreshman:  "Honors Biology",
			domain.GradeSophomore: "Anatomy and Physiology",
			domain.GradeJunior:    "AP Biology",
			domain.GradeSenior:    "AP Chemistry",
		},
		extraECs: []gradedEntry{
			{from: domain.GradeFreshman, name: "Science Fair"},
		},
		contests: []gradedEntry{
			{from: domain.GradeFreshman, name: "Science Olympiad"},
		},
	},
	{
		keywords: []string{"chemistry"},
		courses: map[domain.GradeLevel]string{
			domain.GradeSophomore: "Honors Chemistry",
			domain.GradeJunior:    "AP Chemistry",
			domain.GradeSenior:    "Organic Chemistry (Dual Enrollment)",
		},
		contests: []gradedEntry{
			{from: domain.GradeFreshman, name: "Science Olympiad"},
		},
	},
	{
		keywords: []string{"physics", "engineering"},
		courses: map[domain.GradeLevel]string{
			domain.GradeJunior: "AP Physics 1",
			domain.GradeSenior: "AP Physics C: Mechanics",
		},
	},
	{
		keywords: []string{"economics", "business", "finance"},
		courses: map[domain.GradeLevel]string{
			domain.GradeJunior: "AP Macroeconomics",
			domain.GradeSenior: "AP Statistics",
		},
		extraECs: []gradedEntry{
			{from: domain.GradeSophomore, name: "DECA Business Club"},
		},
	},
	{
		keywords: []string{"history", "writing", "literature", "journalism"},
		courses: map[domain.GradeLevel]string{
			domain.GradeJunior: "AP English Language",
			domain.GradeSenior: "AP Comparative Government",
		},
		extraECs: []gradedEntry{
			{from: domain.GradeFreshman, name: "School Newspaper"},
		},
	},
}

// stemTerms trigger the math escalation track even when no math-specific
// interest is declared.
var stemTerms = []string{
	"computer", "engineering", "math", "physics", "chemistry",
	"biology", "science", "robotics", "technology", "medicine",
}

var stemMathTrack = map[domain.GradeLevel]string{
	domain.GradeJunior: "AP Calculus AB",
	domain.GradeSenior: "AP Calculus BC",
}

var testPrepByGrade = map[domain.GradeLevel][]string{
	domain.GradeSophomore: {"PSAT 10 practice test"},
	domain.GradeJunior:    {"PSAT/NMSQT in the fall", "SAT or ACT prep course", "Timed practice tests monthly"},
	domain.GradeSenior:    {"SAT/ACT retake in early fall if below target"},
}

var goalsByGrade = map[domain.GradeLevel][]string{
	domain.GradeFreshman:  {"Build strong study habits", "Explore clubs and find two to commit to"},
	domain.GradeSophomore: {"Deepen involvement in chosen activities", "Take the PSAT 10 for a baseline"},
	domain.GradeJunior:    {"Pursue a leadership position", "Reach target SAT/ACT score", "Build a college list"},
	domain.GradeSenior:    {"Submit strong applications", "Maintain grades through graduation"},
}

// RuleSynthesizer is the deterministic plan builder. Given the same
// profile, context and critique it always produces the same plan, and a
// plan built from a critique contains every suggested item.
type RuleSynthesizer struct{}

func NewRuleSynthesizer() *RuleSynthesizer { return &RuleSynthesizer{} }

func (s *RuleSynthesizer) Synthesize(profile domain.StudentProfile, rctx RetrievalContext, prior *domain.Critique) (domain.FourYearPlan, error) {
	plan := domain.FourYearPlan{}
	focusTerms := append(append([]string{}, profile.Interests...), profile.TargetMajors...)
	stem := hasAnyKeyword(focusTerms, stemTerms)

	for _, grade := range domain.AllGrades() {
		year := plan.Year(grade)
		year.Grade = grade
		if grade < profile.CurrentGrade {
			s.fillCompletedYear(year, profile)
			continue
		}
		s.fillPlannedYear(year, profile, rctx, focusTerms, stem)
	}

	plan.OverallStrategy = buildStrategy(profile, rctx)
	plan.KeyMilestones = buildMilestones(profile)

	if prior != nil {
		for _, sg := range prior.Suggestions {
			if year := plan.Year(sg.Grade); year != nil {
				year.Add(sg.Field, sg.Item)
			}
		}
	}
	return plan, nil
}

// fillCompletedYear records what the student has already done. Past years
// are a record, not a recommendation.
func (s *RuleSynthesizer) fillCompletedYear(year *domain.YearlyPlan, profile domain.StudentProfile) {
	for _, c := range profile.CoursesTaken {
		year.Add(domain.FieldCourses, c)
	}
	for _, ec := range profile.Extracurriculars {
		year.Add(domain.FieldExtracurriculars, ec)
	}
	year.Rationale = fmt.Sprintf("Grade %d is complete; entries reflect the student's record.", int(year.Grade))
}

func (s *RuleSynthesizer) fillPlannedYear(year *domain.YearlyPlan, profile domain.StudentProfile, rctx RetrievalContext, focusTerms []string, stem bool) {
	grade := year.Grade

	for _, c := range baseCourses[grade] {
		year.Add(domain.FieldCourses, c)
	}
	if grade == profile.CurrentGrade {
		for _, c := range profile.CoursesPlanned {
			year.Add(domain.FieldCourses, c)
		}
	}
	for _, ladder := range courseLadders {
		if !hasAnyKeyword(focusTerms, ladder.keywords) {
			continue
		}
		if c, ok := ladder.courses[grade]; ok {
			year.Add(domain.FieldCourses, c)
		}
	}
	if stem {
		if c, ok := stemMathTrack[grade]; ok {
			year.Add(domain.FieldCourses, c)
		}
	}

	for _, interest := range profile.Interests {
		name := strings.TrimSpace(interest)
		if name == "" {
			continue
		}
		year.Add(domain.FieldExtracurriculars, name+" Club")
	}
	for _, ec := range profile.Extracurriculars {
		year.Add(domain.FieldExtracurriculars, ec+" (continued)")
	}
	for _, ladder := range courseLadders {
		if !hasAnyKeyword(focusTerms, ladder.keywords) {
			continue
		}
		for _, e := range ladder.extraECs {
			if grade >= e.from {
				year.Add(domain.FieldExtracurriculars, e.name)
			}
		}
		for _, e := range ladder.contests {
			if grade >= e.from {
				year.Add(domain.FieldCompetitions, e.name)
			}
		}
	}
	switch grade {
	case domain.GradeJunior:
		year.Add(domain.FieldExtracurriculars, "Leadership role in an existing club")
	case domain.GradeSenior:
		year.Add(domain.FieldExtracurriculars, "Club President or Team Captain role")
	}

	for _, opp := range rctx.relevant(grade, profile.Interests) {
		switch opp.Category {
		case domain.CategoryCompetition:
			year.Add(domain.FieldCompetitions, opp.Name)
		case domain.CategoryInternship:
			if grade >= domain.GradeJunior {
				year.Add(domain.FieldInternships, opp.Name)
			}
		default:
			year.Add(domain.FieldExtracurriculars, opp.Name)
		}
	}

	for _, p := range testPrepByGrade[grade] {
		year.Add(domain.FieldTestPrep, p)
	}
	for _, g := range goalsByGrade[grade] {
		year.Add(domain.FieldGoals, g)
	}
	for _, major := range profile.TargetMajors {
		m := strings.TrimSpace(major)
		if m == "" {
			continue
		}
		year.Add(domain.FieldGoals, fmt.Sprintf("Build a portfolio of work related to %s", m))
		break
	}

	year.Rationale = buildRationale(grade, profile)
}

func buildRationale(grade domain.GradeLevel, profile domain.StudentProfile) string {
	theme := map[domain.GradeLevel]string{
		domain.GradeFreshman:  "establishes foundations and explores interests",
		domain.GradeSophomore: "deepens commitment and begins advanced coursework",
		domain.GradeJunior:    "is the peak rigor year and the heart of the application narrative",
		domain.GradeSenior:    "sustains rigor while applications are submitted",
	}[grade]
	if len(profile.Interests) > 0 {
		return fmt.Sprintf("Grade %d %s, with coursework and activities centered on %s.",
			int(grade), theme, joinNatural(profile.Interests))
	}
	return fmt.Sprintf("Grade %d %s.", int(grade), theme)
}

func buildStrategy(profile domain.StudentProfile, rctx RetrievalContext) string {
	var b strings.Builder
	if len(profile.Interests) > 0 {
		fmt.Fprintf(&b, "Build a coherent narrative around %s: escalate course rigor each year, pair classes with matching activities, and convert participation into leadership by junior year.",
			joinNatural(profile.Interests))
	} else {
		b.WriteString("Build a broad, rigorous foundation: escalate course rigor each year and convert club participation into leadership by junior year.")
	}
	if len(rctx.Similar) > 0 && len(rctx.Similar[0].Profile.AdmittedColleges) > 0 {
		fmt.Fprintf(&b, " Students with a similar profile have been admitted to %s.",
			joinNatural(rctx.Similar[0].Profile.AdmittedColleges))
	}
	return b.String()
}

func buildMilestones(profile domain.StudentProfile) []string {
	milestones := []string{
		"Grade 9: commit to two activities tied to your interests",
		"Grade 10: first advanced course and PSAT 10 baseline",
		"Grade 11: leadership position and target SAT/ACT score",
		"Grade 12: applications submitted with a consistent four-year story",
	}
	start := int(profile.CurrentGrade - domain.GradeFreshman)
	if start < 0 {
		start = 0
	}
	if start > len(milestones)-1 {
		start = len(milestones) - 1
	}
	return milestones[start:]
}

func hasAnyKeyword(terms []string, keywords []string) bool {
	for _, t := range terms {
		lt := strings.ToLower(strings.TrimSpace(t))
		if lt == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(lt, kw) {
				return true
			}
		}
	}
	return false
}

func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
