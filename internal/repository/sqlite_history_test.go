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

func TestHistoryRepo_AppendAndListRoundTrip(t *testing.T) {
	repo := repository.NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	gpa := 3.8
	stored := &domain.HistoricalProfile{
		Profile: domain.StudentProfile{
			CurrentGrade:      domain.GradeSenior,
			Interests:         []string{"Computer Science", "Robotics"},
			AcademicStrengths: []string{"Math"},
			CoursesTaken:      []string{"AP Calculus AB"},
			Extracurriculars:  []string{"Robotics Team"},
			Achievements:      []string{"State robotics finalist"},
			TargetColleges:    []string{"MIT"},
			TargetMajors:      []string{"Computer Science"},
			GPA:               &gpa,
			TestScores:        map[string]float64{"SAT": 1480},
		},
		AdmittedColleges: []string{"MIT"},
		FinalMajor:       "Computer Science",
	}
	require.NoError(t, repo.Append(ctx, stored))
	assert.NotEmpty(t, stored.ID, "an ID is assigned on insert")
	assert.Equal(t, int64(1), stored.Seq)

	profiles, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	got := profiles[0]
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, stored.Profile.Interests, got.Profile.Interests)
	assert.Equal(t, stored.Profile.TestScores, got.Profile.TestScores)
	require.NotNil(t, got.Profile.GPA)
	assert.InDelta(t, gpa, *got.Profile.GPA, 1e-9)
	assert.Equal(t, stored.AdmittedColleges, got.AdmittedColleges)
	assert.Equal(t, "Computer Science", got.FinalMajor)
}

func TestHistoryRepo_SeqAssignsInsertionOrder(t *testing.T) {
	repo := repository.NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		p := testutil.HistoricalProfile("", []string{"Biology"}, nil, nil)
		require.NoError(t, repo.Append(ctx, p))
		assert.Equal(t, int64(i+1), p.Seq)
	}

	profiles, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	for i, p := range profiles {
		assert.Equal(t, int64(i+1), p.Seq)
	}
}

func TestHistoryRepo_RejectsInvalidProfile(t *testing.T) {
	repo := repository.NewSQLiteHistoryRepo(testutil.NewTestDB(t))

	bad := &domain.HistoricalProfile{
		Profile: domain.StudentProfile{CurrentGrade: 13},
	}
	assert.Error(t, repo.Append(context.Background(), bad))
}

func TestHistoryRepo_EmptyListsSurviveRoundTrip(t *testing.T) {
	repo := repository.NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.HistoricalProfile("", []string{"Art"}, nil, nil)))

	profiles, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Empty(t, profiles[0].Profile.CoursesTaken)
	assert.Nil(t, profiles[0].Profile.GPA)
	assert.Empty(t, profiles[0].Profile.TestScores)
}
