package matching

import (
	"math/rand/v2"
	"p2p/repository"
	"p2p/utils"
)

// Candidate is a category-eligible but not yet scheduled combination of two
// participants.
type Candidate struct {
	Participant1 *repository.Participant
	Participant2 *repository.Participant
	Category     repository.Category
}

// CandidatePairs enumerates every unordered pair of participants that share
// at least one category tag, each exactly once. Zero-overlap pairs are never
// candidates. The recorded category is the first tag in participant1's
// storage order that participant2 also holds.
func CandidatePairs(participants []*repository.Participant) []*Candidate {
	candidates := make([]*Candidate, 0)
	for i := 0; i < len(participants); i++ {
		for j := i + 1; j < len(participants); j++ {
			category, ok := firstCommonCategory(participants[i], participants[j])
			if !ok {
				continue
			}
			candidates = append(candidates, &Candidate{
				Participant1: participants[i],
				Participant2: participants[j],
				Category:     category,
			})
		}
	}
	return candidates
}

func firstCommonCategory(p1 *repository.Participant, p2 *repository.Participant) (repository.Category, bool) {
	tags2 := p2.CategoryTags()
	for _, tag := range p1.CategoryTags() {
		if utils.Contains(tags2, tag) {
			return tag, true
		}
	}
	return "", false
}

// ShuffleCandidates randomizes the candidate order so that, when not every
// pair fits into the round grid, it varies who gets matched. The source is
// injected; production call sites seed it from the clock, tests pass a fixed
// seed.
func ShuffleCandidates(candidates []*Candidate, rng *rand.Rand) {
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
}
