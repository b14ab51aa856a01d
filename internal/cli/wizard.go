package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lodestar/internal/cli/formatter"
	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/alexanderramin/lodestar/internal/intake"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// lodestarHuhTheme returns a custom huh theme using the Gruvbox palette.
func lodestarHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runProfileWizard collects a student profile interactively.
func runProfileWizard() (domain.StudentProfile, error) {
	var (
		grade          string
		interests      string
		strengths      string
		coursesTaken   string
		coursesPlanned string
		activities     string
		achievements   string
		colleges       string
		majors         string
		gpaStr         string
		satStr         string
		actStr         string
	)

	gradeOptions := make([]huh.Option[string], 0, 4)
	for _, g := range domain.AllGrades() {
		gradeOptions = append(gradeOptions,
			huh.NewOption(g.Label(), strconv.Itoa(int(g))))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Current grade").
				Options(gradeOptions...).
				Value(&grade),
			huh.NewInput().
				Title("Interests").
				Description("Comma separated, e.g. Computer Science, Robotics").
				Value(&interests),
			huh.NewInput().
				Title("Academic strengths").
				Description("Comma separated, e.g. Math, Writing").
				Value(&strengths),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Courses already taken").
				Description("Comma separated; leave blank for none").
				Value(&coursesTaken),
			huh.NewInput().
				Title("Courses planned for this year").
				Value(&coursesPlanned),
			huh.NewInput().
				Title("Current extracurriculars").
				Value(&activities),
			huh.NewInput().
				Title("Achievements so far").
				Value(&achievements),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Target colleges").
				Value(&colleges),
			huh.NewInput().
				Title("Target majors").
				Value(&majors),
			huh.NewInput().
				Title("GPA (optional)").
				Placeholder("e.g. 3.8").
				Value(&gpaStr).
				Validate(validateOptionalFloat("GPA", 0, 5)),
			huh.NewInput().
				Title("SAT score (optional)").
				Value(&satStr).
				Validate(validateOptionalFloat("SAT", 400, 1600)),
			huh.NewInput().
				Title("ACT score (optional)").
				Value(&actStr).
				Validate(validateOptionalFloat("ACT", 1, 36)),
		),
	).WithTheme(lodestarHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.StudentProfile{}, fmt.Errorf("profile wizard: %w", err)
	}

	gradeNum, err := strconv.Atoi(grade)
	if err != nil {
		return domain.StudentProfile{}, fmt.Errorf("invalid grade selection %q", grade)
	}

	profile := domain.StudentProfile{
		CurrentGrade:      domain.GradeLevel(gradeNum),
		Interests:         intake.SplitList(interests),
		AcademicStrengths: intake.SplitList(strengths),
		CoursesTaken:      intake.SplitList(coursesTaken),
		CoursesPlanned:    intake.SplitList(coursesPlanned),
		Extracurriculars:  intake.SplitList(activities),
		Achievements:      intake.SplitList(achievements),
		TargetColleges:    intake.SplitList(colleges),
		TargetMajors:      intake.SplitList(majors),
		TestScores:        map[string]float64{},
	}
	if v, ok := parseOptionalFloat(gpaStr); ok {
		profile.GPA = &v
	}
	if v, ok := parseOptionalFloat(satStr); ok {
		profile.TestScores["SAT"] = v
	}
	if v, ok := parseOptionalFloat(actStr); ok {
		profile.TestScores["ACT"] = v
	}

	if err := profile.Validate(); err != nil {
		return domain.StudentProfile{}, err
	}
	return profile, nil
}

func validateOptionalFloat(name string, min, max float64) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", name)
		}
		if v < min || v > max {
			return fmt.Errorf("%s must be between %g and %g", name, min, max)
		}
		return nil
	}
}

func parseOptionalFloat(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
