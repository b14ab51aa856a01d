package match

import "github.com/alexanderramin/lodestar/internal/domain"

// OpportunityFilter selects time-relevant opportunities for a grade level
// and interest set. Like Index, it wraps an immutable snapshot.
type OpportunityFilter struct {
	opportunities []*domain.Opportunity
}

// NewOpportunityFilter builds a filter over the given snapshot, preserving
// store order.
func NewOpportunityFilter(opportunities []*domain.Opportunity) *OpportunityFilter {
	ordered := make([]*domain.Opportunity, len(opportunities))
	copy(ordered, opportunities)
	return &OpportunityFilter{opportunities: ordered}
}

// Relevant returns opportunities whose grade range contains grade and
// whose tags match at least one interest (untagged opportunities match
// everyone). No ranking is applied beyond store order.
func (f *OpportunityFilter) Relevant(grade domain.GradeLevel, interests []string) []*domain.Opportunity {
	interestSet := domain.NormalizeSet(interests)
	var relevant []*domain.Opportunity
	for _, o := range f.opportunities {
		if !o.EligibleFor(grade) {
			continue
		}
		if !o.MatchesInterests(interestSet) {
			continue
		}
		relevant = append(relevant, o)
	}
	return relevant
}
