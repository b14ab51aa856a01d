package domain

// Opportunity is immutable reference data describing an enrichment activity
// a student may pursue: a competition, internship, program, or club.
type Opportunity struct {
	ID           string
	Seq          int64
	Name         string
	Category     OpportunityCategory
	MinGrade     GradeLevel
	MaxGrade     GradeLevel
	InterestTags []string
	Description  string
	Requirements []string
	Benefits     []string
	Deadline     string
}

// EligibleFor reports whether the given grade falls inside the
// opportunity's eligible grade range.
func (o *Opportunity) EligibleFor(g GradeLevel) bool {
	return g >= o.MinGrade && g <= o.MaxGrade
}

// MatchesInterests reports whether any interest tag case-insensitively
// matches the given interest set. Opportunities with no tags are treated
// as universally relevant.
func (o *Opportunity) MatchesInterests(interests map[string]bool) bool {
	if len(o.InterestTags) == 0 {
		return true
	}
	for tag := range NormalizeSet(o.InterestTags) {
		if interests[tag] {
			return true
		}
	}
	return false
}
