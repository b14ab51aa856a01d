package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/lodestar/internal/domain"
)

// Dimension weights. They sum to 1.0 so the overall score stays in [0, 1].
var dimensionWeights = map[domain.Dimension]float64{
	domain.DimCourseRigor:     0.25,
	domain.DimExtracurricular: 0.20,
	domain.DimAlignment:       0.25,
	domain.DimProgression:     0.15,
	domain.DimTestPrep:        0.15,
}

// EvaluatorConfig tunes the acceptance and weakness thresholds. Defaults
// match DefaultEvaluatorConfig; the pipeline overrides AcceptThreshold
// from the request.
type EvaluatorConfig struct {
	AcceptThreshold   float64
	WeakThreshold     float64
	CriticalThreshold float64
	TargetScores      map[string]float64
}

func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		AcceptThreshold:   0.7,
		WeakThreshold:     0.40,
		CriticalThreshold: 0.25,
		TargetScores:      map[string]float64{"SAT": 1400, "ACT": 30},
	}
}

// RuleEvaluator scores plans with deterministic heuristics. Evaluate is a
// pure function of (profile, plan, config): re-evaluating an unchanged
// plan yields an identical critique.
type RuleEvaluator struct {
	cfg EvaluatorConfig
}

func NewRuleEvaluator(cfg EvaluatorConfig) *RuleEvaluator {
	def := DefaultEvaluatorConfig()
	if cfg.AcceptThreshold <= 0 {
		cfg.AcceptThreshold = def.AcceptThreshold
	}
	if cfg.WeakThreshold <= 0 {
		cfg.WeakThreshold = def.WeakThreshold
	}
	if cfg.CriticalThreshold <= 0 {
		cfg.CriticalThreshold = def.CriticalThreshold
	}
	if cfg.TargetScores == nil {
		cfg.TargetScores = def.TargetScores
	}
	return &RuleEvaluator{cfg: cfg}
}

// dimResult carries one dimension's score plus any narrative it produced.
type dimResult struct {
	score      float64
	strengths  []string
	weaknesses []string
}

func (e *RuleEvaluator) Evaluate(profile domain.StudentProfile, plan domain.FourYearPlan) (domain.Critique, error) {
	results := map[domain.Dimension]dimResult{
		domain.DimCourseRigor:     e.scoreRigor(profile, plan),
		domain.DimExtracurricular: e.scoreExtracurriculars(profile, plan),
		domain.DimAlignment:       e.scoreAlignment(profile, plan),
		domain.DimProgression:     e.scoreProgression(profile, plan),
		domain.DimTestPrep:        e.scoreTestPrep(profile, plan),
	}

	critique := domain.Critique{Dimensions: make(map[domain.Dimension]float64, len(results))}

	// Iterate in fixed order so the score sum, narrative, and suggestions
	// are bitwise stable across evaluations.
	for _, dim := range domain.AllDimensions() {
		res := results[dim]
		critique.Dimensions[dim] = res.score
		critique.Score += dimensionWeights[dim] * res.score
		critique.Strengths = append(critique.Strengths, res.strengths...)
		if res.score < e.cfg.WeakThreshold {
			critique.Weaknesses = append(critique.Weaknesses, weaknessMessage(dim, res.score))
			critique.Suggestions = append(critique.Suggestions, e.suggestFor(dim, profile, plan))
		}
		critique.Weaknesses = append(critique.Weaknesses, res.weaknesses...)
		if res.score < e.cfg.CriticalThreshold {
			critique.HasCriticalWeakness = true
		}
	}

	critique.NeedsRevision = critique.Score < e.cfg.AcceptThreshold || critique.HasCriticalWeakness

	// A plan can sit below the acceptance bar with every dimension above
	// the weak mark. Nudge the lowest dimension so the next iteration has
	// something concrete to incorporate.
	if critique.NeedsRevision && len(critique.Suggestions) == 0 {
		critique.Suggestions = append(critique.Suggestions, e.suggestFor(lowestDimension(results), profile, plan))
	}
	return critique, nil
}

func lowestDimension(results map[domain.Dimension]dimResult) domain.Dimension {
	lowest := domain.AllDimensions()[0]
	for _, dim := range domain.AllDimensions() {
		if results[dim].score < results[lowest].score {
			lowest = dim
		}
	}
	return lowest
}

func weaknessMessage(dim domain.Dimension, score float64) string {
	switch dim {
	case domain.DimCourseRigor:
		return "Too few advanced courses: add AP, Honors, or dual-enrollment classes"
	case domain.DimExtracurricular:
		return "Extracurricular involvement is thin or lacks a leadership arc"
	case domain.DimAlignment:
		return "The plan does not reflect the student's stated interests and target majors"
	case domain.DimProgression:
		return "Course rigor does not build from year to year"
	case domain.DimTestPrep:
		return "Standardized test preparation is missing or scheduled too late"
	default:
		return fmt.Sprintf("Dimension %s scored %.2f", dim, score)
	}
}

func (e *RuleEvaluator) scoreRigor(profile domain.StudentProfile, plan domain.FourYearPlan) dimResult {
	total := 0
	for _, grade := range domain.AllGrades() {
		total += advancedCount(plan.Year(grade))
	}
	var tier float64
	switch {
	case total >= 6:
		tier = 1.0
	case total >= 4:
		tier = 0.8
	case total >= 2:
		tier = 0.55
	case total >= 1:
		tier = 0.35
	default:
		tier = 0.15
	}
	remaining := remainingGrades(profile.CurrentGrade)
	density := 0.0
	if len(remaining) > 0 {
		density = clamp01(float64(total) / float64(2*len(remaining)))
	}
	res := dimResult{score: 0.7*tier + 0.3*density}
	if res.score >= 0.8 {
		res.strengths = append(res.strengths, fmt.Sprintf("Strong advanced course load (%d advanced courses)", total))
	}
	return res
}

func (e *RuleEvaluator) scoreExtracurriculars(profile domain.StudentProfile, plan domain.FourYearPlan) dimResult {
	unique := make(map[string]bool)
	leadership := false
	for _, grade := range domain.AllGrades() {
		for _, ec := range plan.Year(grade).Extracurriculars {
			unique[strings.ToLower(ec)] = true
			if isLeadership(ec) {
				leadership = true
			}
		}
	}
	diversity := clamp01(float64(len(unique)) / 5.0)
	score := 0.6 * diversity
	if leadership {
		score += 0.4
	}
	res := dimResult{score: score}
	if leadership {
		res.strengths = append(res.strengths, "Includes a leadership development arc")
	}
	return res
}

func (e *RuleEvaluator) scoreAlignment(profile domain.StudentProfile, plan domain.FourYearPlan) dimResult {
	tags := alignmentTags(profile)
	if len(tags) == 0 {
		// No declared interests or majors: nothing to align against.
		return dimResult{score: 0.5}
	}
	matched := 0
	for _, tag := range tags {
		if planMentions(plan, tag) {
			matched++
		}
	}
	res := dimResult{score: float64(matched) / float64(len(tags))}
	if res.score >= 0.7 {
		res.strengths = append(res.strengths, "Coursework and activities align well with stated interests")
	}
	return res
}

func (e *RuleEvaluator) scoreProgression(profile domain.StudentProfile, plan domain.FourYearPlan) dimResult {
	remaining := remainingGrades(profile.CurrentGrade)
	if len(remaining) == 0 {
		return dimResult{score: 1.0}
	}
	res := dimResult{score: 1.0}
	prev := -1
	for _, grade := range remaining {
		year := plan.Year(grade)
		adv := advancedCount(year)
		if prev >= 0 && adv < prev {
			res.score -= 0.3
		}
		if len(year.Courses) == 0 {
			res.score -= 0.25
			res.weaknesses = append(res.weaknesses, fmt.Sprintf("Grade %d has no courses planned", int(grade)))
		}
		prev = adv
	}
	juniorAdv := advancedCount(plan.Year(domain.GradeJunior))
	seniorAdv := advancedCount(plan.Year(domain.GradeSenior))
	if profile.CurrentGrade <= domain.GradeSenior && seniorAdv < juniorAdv {
		res.score -= 0.2
		res.weaknesses = append(res.weaknesses, "Senior-year course rigor drops below junior year")
	}
	res.score = clamp01(res.score)
	if res.score == 1.0 {
		res.strengths = append(res.strengths, "Rigor builds steadily across the remaining years")
	}
	return res
}

func (e *RuleEvaluator) scoreTestPrep(profile domain.StudentProfile, plan domain.FourYearPlan) dimResult {
	names := make([]string, 0, len(e.cfg.TargetScores))
	for name := range e.cfg.TargetScores {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if score, ok := profile.TestScores[name]; ok && score >= e.cfg.TargetScores[name] {
			return dimResult{
				score:     1.0,
				strengths: []string{fmt.Sprintf("%s score already meets the target", name)},
			}
		}
	}
	soph := len(plan.Year(domain.GradeSophomore).TestPrep) > 0
	junior := len(plan.Year(domain.GradeJunior).TestPrep) > 0
	senior := len(plan.Year(domain.GradeSenior).TestPrep) > 0

	var score float64
	switch {
	case profile.CurrentGrade >= domain.GradeSenior:
		if senior {
			score = 1.0
		} else {
			score = 0.2
		}
	case profile.CurrentGrade == domain.GradeJunior:
		switch {
		case junior:
			score = 1.0
		case senior:
			score = 0.5
		default:
			score = 0.15
		}
	default:
		switch {
		case soph && junior:
			score = 1.0
		case junior:
			score = 0.7
		case soph:
			score = 0.45
		case senior:
			score = 0.3
		default:
			score = 0.1
		}
	}
	res := dimResult{score: score}
	if score == 1.0 {
		res.strengths = append(res.strengths, "Test preparation is scheduled at the right time")
	}
	return res
}

// suggestFor builds one concrete, incorporable suggestion for a dimension.
// Targets are restricted to the current grade onward so the next plan can
// actually act on them.
func (e *RuleEvaluator) suggestFor(dim domain.Dimension, profile domain.StudentProfile, plan domain.FourYearPlan) domain.Suggestion {
	switch dim {
	case domain.DimCourseRigor:
		grade := lowestRigorGrade(profile.CurrentGrade, plan)
		item := pickAdvancedCourse(profile, plan, grade)
		return domain.Suggestion{
			Dimension: dim,
			Grade:     grade,
			Field:     domain.FieldCourses,
			Item:      item,
			Message:   fmt.Sprintf("Add %s in grade %d to raise course rigor", item, int(grade)),
		}
	case domain.DimExtracurricular:
		grade := maxGrade(profile.CurrentGrade, domain.GradeJunior)
		item := pickExtracurricular(profile, plan, grade)
		return domain.Suggestion{
			Dimension: dim,
			Grade:     grade,
			Field:     domain.FieldExtracurriculars,
			Item:      item,
			Message:   fmt.Sprintf("Add %s in grade %d to deepen extracurricular involvement", item, int(grade)),
		}
	case domain.DimAlignment:
		grade := profile.CurrentGrade
		tag := firstUnmatchedTag(profile, plan)
		item := fmt.Sprintf("Independent project: %s", tag)
		if plan.Contains(grade, domain.FieldExtracurriculars, item) {
			item = fmt.Sprintf("Summer study: %s", tag)
		}
		return domain.Suggestion{
			Dimension: dim,
			Grade:     grade,
			Field:     domain.FieldExtracurriculars,
			Item:      item,
			Message:   fmt.Sprintf("Connect the plan to %s with a concrete project in grade %d", tag, int(grade)),
		}
	case domain.DimProgression:
		grade := lowestRigorGrade(profile.CurrentGrade, plan)
		item := pickAdvancedCourse(profile, plan, grade)
		return domain.Suggestion{
			Dimension: dim,
			Grade:     grade,
			Field:     domain.FieldCourses,
			Item:      item,
			Message:   fmt.Sprintf("Add %s in grade %d so rigor keeps building", item, int(grade)),
		}
	default: // DimTestPrep
		grade := maxGrade(profile.CurrentGrade, domain.GradeJunior)
		item := pickTestPrep(plan, grade)
		return domain.Suggestion{
			Dimension: dim,
			Grade:     grade,
			Field:     domain.FieldTestPrep,
			Item:      item,
			Message:   fmt.Sprintf("Schedule %s in grade %d", item, int(grade)),
		}
	}
}

// lowestRigorGrade returns the latest remaining grade with the fewest
// advanced courses. Adding rigor there never breaks an existing
// non-decreasing trend.
func lowestRigorGrade(current domain.GradeLevel, plan domain.FourYearPlan) domain.GradeLevel {
	remaining := remainingGrades(current)
	if len(remaining) == 0 {
		return domain.GradeSenior
	}
	best := remaining[0]
	bestCount := advancedCount(plan.Year(best))
	for _, grade := range remaining[1:] {
		if c := advancedCount(plan.Year(grade)); c <= bestCount {
			best, bestCount = grade, c
		}
	}
	return best
}

var genericAdvancedCourses = []string{
	"AP Statistics", "AP English Language", "AP Seminar", "AP Psychology", "AP Environmental Science",
}

func pickAdvancedCourse(profile domain.StudentProfile, plan domain.FourYearPlan, grade domain.GradeLevel) string {
	focusTerms := append(append([]string{}, profile.Interests...), profile.TargetMajors...)
	for _, ladder := range courseLadders {
		if !hasAnyKeyword(focusTerms, ladder.keywords) {
			continue
		}
		for _, g := range domain.AllGrades() {
			c, ok := ladder.courses[g]
			if ok && isAdvancedCourse(c) && !plan.Contains(grade, domain.FieldCourses, c) {
				return c
			}
		}
	}
	for _, c := range genericAdvancedCourses {
		if !plan.Contains(grade, domain.FieldCourses, c) {
			return c
		}
	}
	return "An additional AP elective"
}

var genericExtracurriculars = []string{
	"Student Government (officer role)", "Community Volunteering", "Debate Club", "National Honor Society",
}

func pickExtracurricular(profile domain.StudentProfile, plan domain.FourYearPlan, grade domain.GradeLevel) string {
	for _, interest := range profile.Interests {
		name := strings.TrimSpace(interest) + " Club"
		if strings.TrimSpace(interest) != "" && !plan.Contains(grade, domain.FieldExtracurriculars, name) {
			return name
		}
	}
	for _, ec := range genericExtracurriculars {
		if !plan.Contains(grade, domain.FieldExtracurriculars, ec) {
			return ec
		}
	}
	return "A sustained community service commitment"
}

func pickTestPrep(plan domain.FourYearPlan, grade domain.GradeLevel) string {
	candidates := []string{"SAT or ACT prep course", "Timed practice tests monthly", "PSAT/NMSQT in the fall"}
	for _, c := range candidates {
		if !plan.Contains(grade, domain.FieldTestPrep, c) {
			return c
		}
	}
	return "A weekly test preparation block"
}

func firstUnmatchedTag(profile domain.StudentProfile, plan domain.FourYearPlan) string {
	for _, tag := range alignmentTags(profile) {
		if !planMentions(plan, tag) {
			return tag
		}
	}
	tags := alignmentTags(profile)
	if len(tags) > 0 {
		return tags[0]
	}
	return "a core interest"
}

// alignmentTags preserves declaration order and dedupes case-insensitively.
func alignmentTags(profile domain.StudentProfile) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, t := range append(append([]string{}, profile.Interests...), profile.TargetMajors...) {
		trimmed := strings.TrimSpace(t)
		key := strings.ToLower(trimmed)
		if trimmed == "" || seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, trimmed)
	}
	return tags
}

func planMentions(plan domain.FourYearPlan, tag string) bool {
	needle := strings.ToLower(tag)
	for _, grade := range domain.AllGrades() {
		year := plan.Year(grade)
		for _, field := range []domain.PlanField{domain.FieldCourses, domain.FieldExtracurriculars, domain.FieldCompetitions, domain.FieldInternships} {
			for _, item := range year.List(field) {
				if strings.Contains(strings.ToLower(item), needle) {
					return true
				}
			}
		}
	}
	return false
}

func isAdvancedCourse(course string) bool {
	l := strings.ToLower(course)
	return strings.HasPrefix(l, "ap ") ||
		strings.Contains(l, "honors") ||
		strings.Contains(l, "dual enrollment") ||
		strings.HasPrefix(l, "advanced")
}

var leadershipTerms = []string{"leader", "president", "officer", "captain", "founder", "editor-in-chief"}

func isLeadership(ec string) bool {
	l := strings.ToLower(ec)
	for _, term := range leadershipTerms {
		if strings.Contains(l, term) {
			return true
		}
	}
	return false
}

func advancedCount(year *domain.YearlyPlan) int {
	n := 0
	for _, c := range year.Courses {
		if isAdvancedCourse(c) {
			n++
		}
	}
	return n
}

func remainingGrades(current domain.GradeLevel) []domain.GradeLevel {
	var grades []domain.GradeLevel
	for _, g := range domain.AllGrades() {
		if g >= current {
			grades = append(grades, g)
		}
	}
	return grades
}

func maxGrade(a, b domain.GradeLevel) domain.GradeLevel {
	if a > b {
		return a
	}
	return b
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
