package match

import (
	"sort"

	"github.com/alexanderramin/lodestar/internal/domain"
)

// Similarity dimension weights. Interests dominate, then target majors,
// then academic strengths.
const (
	weightInterests = 0.40
	weightMajors    = 0.35
	weightStrengths = 0.25
)

// Index scores stored historical profiles against a query profile. The
// snapshot is loaded once and treated as immutable for the life of the
// index; all methods are pure reads.
type Index struct {
	profiles []*domain.HistoricalProfile
}

// NewIndex builds an index over the given snapshot. Profiles are ordered
// by store insertion sequence so score ties resolve deterministically.
func NewIndex(profiles []*domain.HistoricalProfile) *Index {
	ordered := make([]*domain.HistoricalProfile, len(profiles))
	copy(ordered, profiles)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Seq < ordered[j].Seq
	})
	return &Index{profiles: ordered}
}

// Len returns the number of profiles in the snapshot.
func (ix *Index) Len() int {
	return len(ix.profiles)
}

// FindSimilar returns at most k stored profiles scored against the query,
// sorted by descending similarity with ties broken by insertion order.
// Profiles with no overlap on any dimension are excluded.
func (ix *Index) FindSimilar(query domain.StudentProfile, k int) []domain.SimilarProfile {
	if k <= 0 {
		return nil
	}

	queryInterests := domain.NormalizeSet(query.Interests)
	queryMajors := domain.NormalizeSet(query.TargetMajors)
	queryStrengths := domain.NormalizeSet(query.AcademicStrengths)

	var results []domain.SimilarProfile
	for _, p := range ix.profiles {
		interests := jaccard(queryInterests, domain.NormalizeSet(p.Profile.Interests))
		majors := jaccard(queryMajors, domain.NormalizeSet(p.Profile.TargetMajors))
		strengths := jaccard(queryStrengths, domain.NormalizeSet(p.Profile.AcademicStrengths))

		var matched []string
		if interests > 0 {
			matched = append(matched, "interests")
		}
		if majors > 0 {
			matched = append(matched, "target_majors")
		}
		if strengths > 0 {
			matched = append(matched, "academic_strengths")
		}
		if len(matched) == 0 {
			continue
		}

		results = append(results, domain.SimilarProfile{
			Profile:   p,
			Score:     interests*weightInterests + majors*weightMajors + strengths*weightStrengths,
			MatchedOn: matched,
		})
	}

	// Stable sort preserves snapshot (insertion) order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}

// SearchByMajor returns stored profiles whose target majors contain the
// given major, matched exactly but case-insensitively, in insertion order.
func (ix *Index) SearchByMajor(major string) []*domain.HistoricalProfile {
	return ix.searchField(major, func(p *domain.HistoricalProfile) []string {
		return p.Profile.TargetMajors
	})
}

// SearchByCollege returns stored profiles whose target colleges contain
// the given college, matched exactly but case-insensitively, in insertion
// order.
func (ix *Index) SearchByCollege(college string) []*domain.HistoricalProfile {
	return ix.searchField(college, func(p *domain.HistoricalProfile) []string {
		return p.Profile.TargetColleges
	})
}

func (ix *Index) searchField(term string, field func(*domain.HistoricalProfile) []string) []*domain.HistoricalProfile {
	want := domain.NormalizeSet([]string{term})
	var matches []*domain.HistoricalProfile
	for _, p := range ix.profiles {
		values := domain.NormalizeSet(field(p))
		for v := range want {
			if values[v] {
				matches = append(matches, p)
				break
			}
		}
	}
	return matches
}

// jaccard computes |intersection| / |union| of two normalized sets.
// Two empty sets score 0: absence of data is not evidence of similarity.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for term := range a {
		if b[term] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
