package domain

import (
	"fmt"
	"strings"
)

// GradeLevel is a US high-school grade, 9 through 12.
type GradeLevel int

const (
	GradeFreshman  GradeLevel = 9
	GradeSophomore GradeLevel = 10
	GradeJunior    GradeLevel = 11
	GradeSenior    GradeLevel = 12
)

// AllGrades returns the four grade levels in ascending order.
func AllGrades() [4]GradeLevel {
	return [4]GradeLevel{GradeFreshman, GradeSophomore, GradeJunior, GradeSenior}
}

// Valid reports whether the grade is within the supported 9-12 range.
func (g GradeLevel) Valid() bool {
	return g >= GradeFreshman && g <= GradeSenior
}

func (g GradeLevel) String() string {
	switch g {
	case GradeFreshman:
		return "freshman"
	case GradeSophomore:
		return "sophomore"
	case GradeJunior:
		return "junior"
	case GradeSenior:
		return "senior"
	default:
		return fmt.Sprintf("grade(%d)", int(g))
	}
}

// Label returns a display string such as "Junior Year (11th Grade)".
func (g GradeLevel) Label() string {
	switch g {
	case GradeFreshman:
		return "Freshman Year (9th Grade)"
	case GradeSophomore:
		return "Sophomore Year (10th Grade)"
	case GradeJunior:
		return "Junior Year (11th Grade)"
	case GradeSenior:
		return "Senior Year (12th Grade)"
	default:
		return fmt.Sprintf("Grade %d", int(g))
	}
}

// ParseGradeLevel accepts numeric ("9".."12") and named ("freshman"..)
// grade spellings.
func ParseGradeLevel(s string) (GradeLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "9", "freshman":
		return GradeFreshman, nil
	case "10", "sophomore":
		return GradeSophomore, nil
	case "11", "junior":
		return GradeJunior, nil
	case "12", "senior":
		return GradeSenior, nil
	default:
		return 0, fmt.Errorf("unknown grade level %q (expected 9-12 or freshman/sophomore/junior/senior)", s)
	}
}

// OpportunityCategory classifies enrichment opportunities.
type OpportunityCategory string

const (
	CategoryCompetition     OpportunityCategory = "competition"
	CategoryInternship      OpportunityCategory = "internship"
	CategoryProgram         OpportunityCategory = "program"
	CategoryExtracurricular OpportunityCategory = "extracurricular"
	CategoryAcademic        OpportunityCategory = "academic"
)

// ValidOpportunityCategories is the canonical set of accepted category strings.
var ValidOpportunityCategories = map[string]bool{
	"competition": true, "internship": true, "program": true,
	"extracurricular": true, "academic": true,
}

// Dimension identifies one axis of plan evaluation.
type Dimension string

const (
	DimCourseRigor     Dimension = "course_rigor"
	DimExtracurricular Dimension = "extracurricular_depth"
	DimAlignment       Dimension = "alignment"
	DimProgression     Dimension = "progression"
	DimTestPrep        Dimension = "test_prep"
)

// AllDimensions returns the evaluation dimensions in reporting order.
func AllDimensions() [5]Dimension {
	return [5]Dimension{DimCourseRigor, DimExtracurricular, DimAlignment, DimProgression, DimTestPrep}
}

// PlanField names one of the list fields on a YearlyPlan. Improvement
// suggestions target a (grade, field) pair so incorporation is checkable.
type PlanField string

const (
	FieldCourses          PlanField = "courses"
	FieldExtracurriculars PlanField = "extracurriculars"
	FieldCompetitions     PlanField = "competitions"
	FieldInternships      PlanField = "internships"
	FieldTestPrep         PlanField = "test_prep"
	FieldGoals            PlanField = "goals"
)
