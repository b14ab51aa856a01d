package match

import (
	"testing"

	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opportunity(seq int64, name string, min, max domain.GradeLevel, tags ...string) *domain.Opportunity {
	return &domain.Opportunity{
		ID:           name,
		Seq:          seq,
		Name:         name,
		Category:     domain.CategoryCompetition,
		MinGrade:     min,
		MaxGrade:     max,
		InterestTags: tags,
	}
}

func TestRelevant_FiltersByGradeBand(t *testing.T) {
	f := NewOpportunityFilter([]*domain.Opportunity{
		opportunity(1, "Olympiad", domain.GradeJunior, domain.GradeSenior, "Mathematics"),
	})

	assert.Empty(t, f.Relevant(domain.GradeFreshman, []string{"Mathematics"}))
	assert.Len(t, f.Relevant(domain.GradeJunior, []string{"Mathematics"}), 1)
	assert.Len(t, f.Relevant(domain.GradeSenior, []string{"Mathematics"}), 1)
}

func TestRelevant_FiltersByInterestTags(t *testing.T) {
	f := NewOpportunityFilter([]*domain.Opportunity{
		opportunity(1, "Olympiad", domain.GradeFreshman, domain.GradeSenior, "Mathematics"),
	})

	assert.Empty(t, f.Relevant(domain.GradeJunior, []string{"History"}))
	assert.Len(t, f.Relevant(domain.GradeJunior, []string{"mathematics"}), 1)
}

func TestRelevant_UntaggedMatchesEveryone(t *testing.T) {
	f := NewOpportunityFilter([]*domain.Opportunity{
		opportunity(1, "Open Program", domain.GradeFreshman, domain.GradeSenior),
	})

	assert.Len(t, f.Relevant(domain.GradeFreshman, nil), 1)
	assert.Len(t, f.Relevant(domain.GradeSenior, []string{"Anything"}), 1)
}

func TestRelevant_PreservesStoreOrder(t *testing.T) {
	f := NewOpportunityFilter([]*domain.Opportunity{
		opportunity(1, "First", domain.GradeFreshman, domain.GradeSenior),
		opportunity(2, "Second", domain.GradeFreshman, domain.GradeSenior),
		opportunity(3, "Third", domain.GradeFreshman, domain.GradeSenior),
	})

	results := f.Relevant(domain.GradeSophomore, nil)
	require.Len(t, results, 3)
	assert.Equal(t, "First", results[0].Name)
	assert.Equal(t, "Second", results[1].Name)
	assert.Equal(t, "Third", results[2].Name)
}
