package intake

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ProfileDocument is the external JSON shape of a student profile. Field
// types are lenient: grades accept numbers or strings ("9", "11th grade",
// "junior"), list fields accept arrays or comma-separated strings.
type ProfileDocument struct {
	CurrentGrade      GradeValue         `json:"current_grade"`
	Interests         StringList         `json:"interests"`
	AcademicStrengths StringList         `json:"academic_strengths"`
	CoursesTaken      StringList         `json:"courses_taken"`
	CoursesPlanned    StringList         `json:"courses_planned"`
	Extracurriculars  StringList         `json:"extracurriculars"`
	Achievements      StringList         `json:"achievements"`
	TargetColleges    StringList         `json:"target_colleges"`
	TargetMajors      StringList         `json:"target_majors"`
	GPA               *float64           `json:"gpa"`
	TestScores        map[string]float64 `json:"test_scores"`
}

// GradeValue unmarshals a grade level from a JSON number or string.
type GradeValue int

func (g *GradeValue) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*g = GradeValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("grade must be a number or string")
	}
	parsed, err := ParseGradeString(s)
	if err != nil {
		return err
	}
	*g = GradeValue(parsed)
	return nil
}

// ParseGradeString accepts "9".."12", "9th".."12th grade", and the class
// names freshman/sophomore/junior/senior.
func ParseGradeString(s string) (int, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.TrimSuffix(norm, " grade")
	norm = strings.TrimSuffix(norm, "th")
	switch norm {
	case "freshman":
		return 9, nil
	case "sophomore":
		return 10, nil
	case "junior":
		return 11, nil
	case "senior":
		return 12, nil
	}
	n, err := strconv.Atoi(norm)
	if err != nil {
		return 0, fmt.Errorf("unrecognized grade %q", s)
	}
	return n, nil
}

// StringList unmarshals from a JSON array of strings or a single
// comma-separated string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = cleanList(items)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected a string array or comma-separated string")
	}
	*l = SplitList(s)
	return nil
}

// SplitList splits a comma-separated string into a trimmed list, dropping
// empty entries.
func SplitList(s string) []string {
	return cleanList(strings.Split(s, ","))
}

func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
