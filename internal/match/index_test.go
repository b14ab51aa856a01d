package match

import (
	"testing"

	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historical(seq int64, interests, majors, strengths []string) *domain.HistoricalProfile {
	return &domain.HistoricalProfile{
		ID:  "p",
		Seq: seq,
		Profile: domain.StudentProfile{
			CurrentGrade:      domain.GradeSenior,
			Interests:         interests,
			TargetMajors:      majors,
			AcademicStrengths: strengths,
		},
	}
}

func TestFindSimilar_IdenticalProfileScoresOne(t *testing.T) {
	stored := historical(1,
		[]string{"Computer Science", "Robotics"},
		[]string{"Computer Science"},
		[]string{"Math"})
	ix := NewIndex([]*domain.HistoricalProfile{stored})

	results := ix.FindSimilar(stored.Profile, 5)
	require.Len(t, results, 1)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
	assert.ElementsMatch(t, []string{"interests", "target_majors", "academic_strengths"}, results[0].MatchedOn)
}

func TestFindSimilar_CaseInsensitive(t *testing.T) {
	stored := historical(1, []string{"computer science"}, nil, nil)
	ix := NewIndex([]*domain.HistoricalProfile{stored})

	results := ix.FindSimilar(domain.StudentProfile{
		CurrentGrade: domain.GradeFreshman,
		Interests:    []string{"  Computer Science "},
	}, 5)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"interests"}, results[0].MatchedOn)
	// interests jaccard 1.0, weighted at 0.40
	assert.InDelta(t, 0.40, results[0].Score, 1e-9)
}

func TestFindSimilar_ExcludesZeroOverlap(t *testing.T) {
	ix := NewIndex([]*domain.HistoricalProfile{
		historical(1, []string{"Art History"}, []string{"Art"}, nil),
	})

	results := ix.FindSimilar(domain.StudentProfile{
		CurrentGrade: domain.GradeFreshman,
		Interests:    []string{"Computer Science"},
	}, 5)
	assert.Empty(t, results)
}

func TestFindSimilar_RespectsK(t *testing.T) {
	profiles := []*domain.HistoricalProfile{
		historical(1, []string{"Biology"}, nil, nil),
		historical(2, []string{"Biology"}, nil, nil),
		historical(3, []string{"Biology"}, nil, nil),
	}
	ix := NewIndex(profiles)

	query := domain.StudentProfile{CurrentGrade: domain.GradeSophomore, Interests: []string{"Biology"}}
	assert.Len(t, ix.FindSimilar(query, 2), 2)
	assert.Len(t, ix.FindSimilar(query, 10), 3)
	assert.Empty(t, ix.FindSimilar(query, 0))
}

func TestFindSimilar_TiesKeepInsertionOrder(t *testing.T) {
	profiles := []*domain.HistoricalProfile{
		historical(2, []string{"Physics"}, nil, nil),
		historical(1, []string{"Physics"}, nil, nil),
		historical(3, []string{"Physics"}, nil, nil),
	}
	ix := NewIndex(profiles)

	results := ix.FindSimilar(domain.StudentProfile{
		CurrentGrade: domain.GradeJunior,
		Interests:    []string{"Physics"},
	}, 5)
	require.Len(t, results, 3)
	assert.Equal(t, int64(1), results[0].Profile.Seq)
	assert.Equal(t, int64(2), results[1].Profile.Seq)
	assert.Equal(t, int64(3), results[2].Profile.Seq)
}

func TestFindSimilar_HigherOverlapRanksFirst(t *testing.T) {
	profiles := []*domain.HistoricalProfile{
		historical(1, []string{"Computer Science"}, nil, nil),
		historical(2, []string{"Computer Science"}, []string{"Computer Science"}, nil),
	}
	ix := NewIndex(profiles)

	results := ix.FindSimilar(domain.StudentProfile{
		CurrentGrade: domain.GradeFreshman,
		Interests:    []string{"Computer Science"},
		TargetMajors: []string{"Computer Science"},
	}, 5)
	require.Len(t, results, 2)
	assert.Equal(t, int64(2), results[0].Profile.Seq)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearchByMajor_ExactCaseInsensitive(t *testing.T) {
	profiles := []*domain.HistoricalProfile{
		historical(1, nil, []string{"Computer Science"}, nil),
		historical(2, nil, []string{"Computer Engineering"}, nil),
	}
	ix := NewIndex(profiles)

	results := ix.SearchByMajor("computer science")
	require.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].Seq)

	// Substrings do not match.
	assert.Empty(t, ix.SearchByMajor("Computer"))
}

func TestSearchByCollege(t *testing.T) {
	p := historical(1, nil, nil, nil)
	p.Profile.TargetColleges = []string{"MIT", "Stanford"}
	ix := NewIndex([]*domain.HistoricalProfile{p})

	assert.Len(t, ix.SearchByCollege("mit"), 1)
	assert.Empty(t, ix.SearchByCollege("Harvard"))
}

func TestJaccard_EmptySetsScoreZero(t *testing.T) {
	assert.Zero(t, jaccard(nil, nil))
	assert.Zero(t, jaccard(map[string]bool{"a": true}, nil))
}
