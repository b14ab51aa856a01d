package domain

import (
	"fmt"
	"strings"
)

// StudentProfile is an identity-free description of a student's academic
// state and goals. List fields are sets; order carries no meaning.
type StudentProfile struct {
	CurrentGrade      GradeLevel
	Interests         []string
	AcademicStrengths []string
	CoursesTaken      []string
	CoursesPlanned    []string
	Extracurriculars  []string
	Achievements      []string
	TargetColleges    []string
	TargetMajors      []string
	GPA               *float64
	TestScores        map[string]float64
}

// Validate checks the profile invariants and normalizes nil list fields to
// empty slices so downstream code never sees nil.
func (p *StudentProfile) Validate() error {
	if !p.CurrentGrade.Valid() {
		return fmt.Errorf("current grade %d out of range [9,12]", int(p.CurrentGrade))
	}
	if p.GPA != nil && (*p.GPA < 0 || *p.GPA > 5.0) {
		return fmt.Errorf("gpa %.2f out of range [0,5.0]", *p.GPA)
	}
	p.Interests = nonNil(p.Interests)
	p.AcademicStrengths = nonNil(p.AcademicStrengths)
	p.CoursesTaken = nonNil(p.CoursesTaken)
	p.CoursesPlanned = nonNil(p.CoursesPlanned)
	p.Extracurriculars = nonNil(p.Extracurriculars)
	p.Achievements = nonNil(p.Achievements)
	p.TargetColleges = nonNil(p.TargetColleges)
	p.TargetMajors = nonNil(p.TargetMajors)
	if p.TestScores == nil {
		p.TestScores = map[string]float64{}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// NormalizeSet lowercases and trims the given terms, dropping empties and
// duplicates. Used wherever profile list fields are compared as sets.
func NormalizeSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = true
		}
	}
	return set
}

// HistoricalProfile is a stored profile with known outcomes. Immutable once
// loaded; Seq records store insertion order for stable retrieval ties.
type HistoricalProfile struct {
	ID               string
	Seq              int64
	Profile          StudentProfile
	AdmittedColleges []string
	FinalMajor       string
}

// SimilarProfile is a per-query scoring of a historical profile against a
// query profile. MatchedOn lists the profile fields that drove the score.
type SimilarProfile struct {
	Profile   *HistoricalProfile
	Score     float64
	MatchedOn []string
}
