package intake

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/lodestar/internal/domain"
)

// ToProfile converts a parsed document into a validated domain profile.
func (d ProfileDocument) ToProfile() (domain.StudentProfile, error) {
	p := domain.StudentProfile{
		CurrentGrade:      domain.GradeLevel(d.CurrentGrade),
		Interests:         d.Interests,
		AcademicStrengths: d.AcademicStrengths,
		CoursesTaken:      d.CoursesTaken,
		CoursesPlanned:    d.CoursesPlanned,
		Extracurriculars:  d.Extracurriculars,
		Achievements:      d.Achievements,
		TargetColleges:    d.TargetColleges,
		TargetMajors:      d.TargetMajors,
		GPA:               d.GPA,
		TestScores:        d.TestScores,
	}
	if err := p.Validate(); err != nil {
		return domain.StudentProfile{}, err
	}
	return p, nil
}

// ReadProfile decodes a profile document from r and converts it. Unknown
// fields are rejected so typos surface instead of silently dropping data.
func ReadProfile(r io.Reader) (domain.StudentProfile, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc ProfileDocument
	if err := dec.Decode(&doc); err != nil {
		return domain.StudentProfile{}, fmt.Errorf("decoding profile: %w", err)
	}
	return doc.ToProfile()
}
