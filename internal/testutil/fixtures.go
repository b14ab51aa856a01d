package testutil

import (
	"github.com/alexanderramin/lodestar/internal/domain"
)

// Freshman returns a grade 9 profile with the given interests and no
// history, the common starting point for planner tests.
func Freshman(interests ...string) domain.StudentProfile {
	return domain.StudentProfile{
		CurrentGrade: domain.GradeFreshman,
		Interests:    interests,
		TargetMajors: interests,
	}
}

// Junior returns a grade 11 profile part-way through high school.
func Junior(interests ...string) domain.StudentProfile {
	return domain.StudentProfile{
		CurrentGrade:     domain.GradeJunior,
		Interests:        interests,
		CoursesTaken:     []string{"Algebra I", "Geometry", "Biology", "Chemistry", "English 9", "English 10"},
		Extracurriculars: []string{"Chess Club"},
	}
}

// HistoricalProfile builds a minimal admitted-student record.
func HistoricalProfile(id string, interests, majors, colleges []string) *domain.HistoricalProfile {
	return &domain.HistoricalProfile{
		ID: id,
		Profile: domain.StudentProfile{
			CurrentGrade: domain.GradeSenior,
			Interests:    interests,
			TargetMajors: majors,
		},
		AdmittedColleges: colleges,
	}
}

// Opportunity builds an opportunity with the given category, grade band
// and tags.
func Opportunity(id, name string, category domain.OpportunityCategory, min, max domain.GradeLevel, tags ...string) *domain.Opportunity {
	return &domain.Opportunity{
		ID:           id,
		Name:         name,
		Category:     category,
		MinGrade:     min,
		MaxGrade:     max,
		InterestTags: tags,
	}
}
