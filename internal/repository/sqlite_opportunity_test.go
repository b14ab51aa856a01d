package repository_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/alexanderramin/lodestar/internal/repository"
	"github.com/alexanderramin/lodestar/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpportunityRepo_AppendAndListRoundTrip(t *testing.T) {
	repo := repository.NewSQLiteOpportunityRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	stored := &domain.Opportunity{
		Name:         "USA Computing Olympiad",
		Category:     domain.CategoryCompetition,
		MinGrade:     domain.GradeSophomore,
		MaxGrade:     domain.GradeSenior,
		InterestTags: []string{"Computer Science", "Programming"},
		Description:  "Online algorithmic programming contest",
		Requirements: []string{"Programming experience"},
		Benefits:     []string{"National recognition"},
		Deadline:     "December",
	}
	require.NoError(t, repo.Append(ctx, stored))
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, int64(1), stored.Seq)

	opps, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, opps, 1)
	assert.Equal(t, stored.Name, opps[0].Name)
	assert.Equal(t, domain.CategoryCompetition, opps[0].Category)
	assert.Equal(t, stored.InterestTags, opps[0].InterestTags)
	assert.Equal(t, domain.GradeSophomore, opps[0].MinGrade)
	assert.Equal(t, "December", opps[0].Deadline)
}

func TestOpportunityRepo_RejectsBadCategoryAndGrades(t *testing.T) {
	repo := repository.NewSQLiteOpportunityRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	assert.Error(t, repo.Append(ctx, &domain.Opportunity{
		Name: "Bad", Category: "festival",
		MinGrade: domain.GradeFreshman, MaxGrade: domain.GradeSenior,
	}))
	assert.Error(t, repo.Append(ctx, &domain.Opportunity{
		Name: "Bad", Category: domain.CategoryProgram,
		MinGrade: domain.GradeSenior, MaxGrade: domain.GradeFreshman,
	}))
}

func TestOpportunityRepo_ListPreservesInsertionOrder(t *testing.T) {
	repo := repository.NewSQLiteOpportunityRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		o := testutil.Opportunity("", name, domain.CategoryProgram, domain.GradeFreshman, domain.GradeSenior)
		require.NoError(t, repo.Append(ctx, o))
	}

	opps, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, opps, 3)
	for i, o := range opps {
		assert.Equal(t, names[i], o.Name)
	}
}

func TestSeedSamples_IdempotentAndOnlyFillsEmptyStores(t *testing.T) {
	database := testutil.NewTestDB(t)
	history := repository.NewSQLiteHistoryRepo(database)
	opps := repository.NewSQLiteOpportunityRepo(database)
	ctx := context.Background()

	require.NoError(t, repository.SeedSamples(ctx, history, opps))
	profiles, err := history.ListAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, profiles)
	catalog, err := opps.ListAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, catalog)

	// Second run leaves counts unchanged.
	require.NoError(t, repository.SeedSamples(ctx, history, opps))
	profilesAgain, err := history.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, profilesAgain, len(profiles))
	catalogAgain, err := opps.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, catalogAgain, len(catalog))
}
