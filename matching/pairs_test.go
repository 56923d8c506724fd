package matching

import (
	"math/rand/v2"
	"p2p/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func participant(id int, categories ...repository.Category) *repository.Participant {
	tags := make([]string, len(categories))
	for i, category := range categories {
		tags[i] = string(category)
	}
	return &repository.Participant{Id: id, Name: "P", Categories: tags}
}

func pairIds(candidate *Candidate) [2]int {
	return [2]int{candidate.Participant1.Id, candidate.Participant2.Id}
}

func TestCandidatePairs(t *testing.T) {
	catX := repository.CategoryDSI
	catY := repository.CategoryDataIA
	participants := []*repository.Participant{
		participant(1, catX),
		participant(2, catX),
		participant(3, catY),
		participant(4, catX, catY),
	}

	candidates := CandidatePairs(participants)

	assert.Len(t, candidates, 4)
	expected := map[[2]int]repository.Category{
		{1, 2}: catX,
		{1, 4}: catX,
		{2, 4}: catX,
		{3, 4}: catY,
	}
	for _, candidate := range candidates {
		category, ok := expected[pairIds(candidate)]
		assert.True(t, ok, "unexpected candidate %v", pairIds(candidate))
		assert.Equal(t, category, candidate.Category)
		delete(expected, pairIds(candidate))
	}
	assert.Empty(t, expected)
}

func TestCandidatePairsZeroOverlap(t *testing.T) {
	participants := []*repository.Participant{
		participant(1, repository.CategoryDSI),
		participant(2, repository.CategoryRHRecruteur),
	}
	assert.Empty(t, CandidatePairs(participants))
}

func TestCandidatePairsEmptyRoster(t *testing.T) {
	assert.Empty(t, CandidatePairs(nil))
}

func TestCandidatePairsTieBreakFollowsFirstParticipantsTagOrder(t *testing.T) {
	// both tags are common, the tie-break is the first one in participant1's
	// storage order, not alphabetical or participant2's order
	p1 := participant(1, repository.CategoryDataIA, repository.CategoryDSI)
	p2 := participant(2, repository.CategoryDSI, repository.CategoryDataIA)

	candidates := CandidatePairs([]*repository.Participant{p1, p2})

	assert.Len(t, candidates, 1)
	assert.Equal(t, repository.CategoryDataIA, candidates[0].Category)
}

func TestShuffleCandidatesIsSeedDeterministic(t *testing.T) {
	participants := []*repository.Participant{
		participant(1, repository.CategoryDSI),
		participant(2, repository.CategoryDSI),
		participant(3, repository.CategoryDSI),
		participant(4, repository.CategoryDSI),
		participant(5, repository.CategoryDSI),
	}
	first := CandidatePairs(participants)
	second := CandidatePairs(participants)

	ShuffleCandidates(first, rand.New(rand.NewPCG(7, 13)))
	ShuffleCandidates(second, rand.New(rand.NewPCG(7, 13)))

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, pairIds(first[i]), pairIds(second[i]))
	}
}
