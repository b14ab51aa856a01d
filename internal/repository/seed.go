package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lodestar/internal/domain"
)

// SeedSamples populates empty stores with a small development dataset so a
// fresh installation can produce meaningful retrieval context. Stores that
// already contain rows are left untouched.
func SeedSamples(ctx context.Context, history HistoryRepo, opportunities OpportunityRepo) error {
	existing, err := history.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("checking profile store: %w", err)
	}
	if len(existing) == 0 {
		for _, p := range SampleProfiles() {
			if err := history.Append(ctx, p); err != nil {
				return fmt.Errorf("seeding profiles: %w", err)
			}
		}
	}

	existingOpps, err := opportunities.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("checking opportunity store: %w", err)
	}
	if len(existingOpps) == 0 {
		for _, o := range SampleOpportunities() {
			if err := opportunities.Append(ctx, o); err != nil {
				return fmt.Errorf("seeding opportunities: %w", err)
			}
		}
	}
	return nil
}

// SampleProfiles returns the built-in historical profiles used for seeding
// and tests.
func SampleProfiles() []*domain.HistoricalProfile {
	gpa1 := 3.9
	gpa2 := 3.8
	return []*domain.HistoricalProfile{
		{
			Profile: domain.StudentProfile{
				CurrentGrade:      domain.GradeSenior,
				Interests:         []string{"Computer Science", "Mathematics", "Robotics"},
				AcademicStrengths: []string{"Math", "Science"},
				CoursesTaken:      []string{"AP Calculus BC", "AP Computer Science A", "AP Physics 1"},
				Extracurriculars:  []string{"Robotics Club", "Math Olympiad"},
				TargetColleges:    []string{"MIT", "Stanford", "UC Berkeley"},
				TargetMajors:      []string{"Computer Science", "Engineering"},
				GPA:               &gpa1,
				TestScores:        map[string]float64{"SAT": 1540},
			},
			AdmittedColleges: []string{"UC Berkeley", "Stanford"},
			FinalMajor:       "Computer Science",
		},
		{
			Profile: domain.StudentProfile{
				CurrentGrade:      domain.GradeSenior,
				Interests:         []string{"Biology", "Medicine", "Research"},
				AcademicStrengths: []string{"Biology", "Chemistry"},
				CoursesTaken:      []string{"AP Biology", "AP Chemistry", "AP Statistics"},
				Extracurriculars:  []string{"Science Research", "Hospital Volunteer"},
				TargetColleges:    []string{"Johns Hopkins", "Harvard", "Yale"},
				TargetMajors:      []string{"Biology", "Pre-Med"},
				GPA:               &gpa2,
				TestScores:        map[string]float64{"ACT": 34},
			},
			AdmittedColleges: []string{"Johns Hopkins"},
			FinalMajor:       "Biology",
		},
	}
}

// SampleOpportunities returns the built-in opportunity reference data.
func SampleOpportunities() []*domain.Opportunity {
	return []*domain.Opportunity{
		{
			Name:         "USA Mathematical Olympiad",
			Category:     domain.CategoryCompetition,
			MinGrade:     domain.GradeJunior,
			MaxGrade:     domain.GradeSenior,
			InterestTags: []string{"Mathematics"},
			Description:  "Invitational proof-based mathematics competition",
			Requirements: []string{"Qualification through AMC and AIME"},
			Benefits:     []string{"National recognition"},
		},
		{
			Name:         "Science Research Program",
			Category:     domain.CategoryAcademic,
			MinGrade:     domain.GradeSophomore,
			MaxGrade:     domain.GradeSenior,
			InterestTags: []string{"Science", "Biology", "Chemistry", "Research"},
			Description:  "Mentored independent research with a local lab",
			Requirements: []string{"GPA 3.5+", "Teacher recommendation"},
			Benefits:     []string{"Research experience", "Publication opportunity"},
		},
		{
			Name:         "Summer Software Internship",
			Category:     domain.CategoryInternship,
			MinGrade:     domain.GradeJunior,
			MaxGrade:     domain.GradeSenior,
			InterestTags: []string{"Computer Science", "Programming"},
			Description:  "Paid summer placement at a technology company",
			Requirements: []string{"Programming portfolio", "Application"},
			Benefits:     []string{"Industry experience", "Networking"},
		},
	}
}
