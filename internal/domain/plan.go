package domain

import "strings"

// YearlyPlan is the roadmap for a single grade year. The list fields are
// order-irrelevant sets of recommended entries.
type YearlyPlan struct {
	Grade            GradeLevel
	Courses          []string
	Extracurriculars []string
	Competitions     []string
	Internships      []string
	TestPrep         []string
	Goals            []string
	Rationale        string
}

// List returns the named list field. Unknown fields return nil.
func (y *YearlyPlan) List(f PlanField) []string {
	switch f {
	case FieldCourses:
		return y.Courses
	case FieldExtracurriculars:
		return y.Extracurriculars
	case FieldCompetitions:
		return y.Competitions
	case FieldInternships:
		return y.Internships
	case FieldTestPrep:
		return y.TestPrep
	case FieldGoals:
		return y.Goals
	default:
		return nil
	}
}

// Add appends item to the named list field unless an equal entry (case
// insensitive) is already present.
func (y *YearlyPlan) Add(f PlanField, item string) {
	if y.Contains(f, item) {
		return
	}
	switch f {
	case FieldCourses:
		y.Courses = append(y.Courses, item)
	case FieldExtracurriculars:
		y.Extracurriculars = append(y.Extracurriculars, item)
	case FieldCompetitions:
		y.Competitions = append(y.Competitions, item)
	case FieldInternships:
		y.Internships = append(y.Internships, item)
	case FieldTestPrep:
		y.TestPrep = append(y.TestPrep, item)
	case FieldGoals:
		y.Goals = append(y.Goals, item)
	}
}

// Contains reports whether the named list field holds item, ignoring case.
func (y *YearlyPlan) Contains(f PlanField, item string) bool {
	want := strings.ToLower(strings.TrimSpace(item))
	for _, have := range y.List(f) {
		if strings.ToLower(strings.TrimSpace(have)) == want {
			return true
		}
	}
	return false
}

// FourYearPlan is a complete roadmap: exactly one YearlyPlan per grade
// 9 through 12. A plan value is never mutated after evaluation; each
// refinement iteration produces a fresh plan.
type FourYearPlan struct {
	Years           [4]YearlyPlan
	OverallStrategy string
	KeyMilestones   []string
}

// Year returns the yearly plan for the given grade, or nil if the grade is
// out of range.
func (p *FourYearPlan) Year(g GradeLevel) *YearlyPlan {
	if !g.Valid() {
		return nil
	}
	return &p.Years[int(g)-int(GradeFreshman)]
}

// Contains reports whether the given grade's plan holds item in the named
// field. Invalid grades report false.
func (p *FourYearPlan) Contains(g GradeLevel, f PlanField, item string) bool {
	year := p.Year(g)
	return year != nil && year.Contains(f, item)
}
