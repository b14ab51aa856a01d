package domain

// Suggestion is one actionable improvement produced by the evaluator. It
// names the exact entry to add so a revision can be checked for
// incorporation: the item must appear in the (Grade, Field) list of the
// next plan.
type Suggestion struct {
	Dimension Dimension
	Grade     GradeLevel
	Field     PlanField
	Item      string
	Message   string
}

// Critique is a structured evaluation of a FourYearPlan. Produced fresh on
// every refinement iteration.
type Critique struct {
	Score               float64
	Dimensions          map[Dimension]float64
	Strengths           []string
	Weaknesses          []string
	Suggestions         []Suggestion
	NeedsRevision       bool
	HasCriticalWeakness bool
}

// Explanation is the narrative rendering of an accepted plan and its
// critique, assembled by the explanation builder after the loop finishes.
type Explanation struct {
	Summary         string
	PlanOverview    string
	YearByYear      []YearSummary
	Recommendations []string
	NextSteps       []string
}

// YearSummary is one year's section of the year-by-year breakdown.
type YearSummary struct {
	Grade GradeLevel
	Text  string
}
