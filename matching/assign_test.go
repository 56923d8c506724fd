package matching

import (
	"math/rand/v2"
	"p2p/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1))
}

func assertNoDoubleBooking(t *testing.T, meetings []*repository.Meeting) {
	t.Helper()
	occupied := make(map[int]map[int]bool)
	for _, meeting := range meetings {
		for _, participantId := range []int{meeting.Participant1Id, meeting.Participant2Id} {
			if occupied[participantId] == nil {
				occupied[participantId] = make(map[int]bool)
			}
			assert.False(t, occupied[participantId][meeting.Round],
				"participant %d double-booked in round %d", participantId, meeting.Round)
			occupied[participantId][meeting.Round] = true
		}
	}
}

func assertDenseTables(t *testing.T, meetings []*repository.Meeting) {
	t.Helper()
	tablesByRound := make(map[int][]int)
	for _, meeting := range meetings {
		tablesByRound[meeting.Round] = append(tablesByRound[meeting.Round], meeting.TableNumber)
	}
	for round, tables := range tablesByRound {
		seen := make(map[int]bool)
		for _, table := range tables {
			seen[table] = true
		}
		for table := 1; table <= len(tables); table++ {
			assert.True(t, seen[table], "round %d is missing table %d", round, table)
		}
	}
}

func TestGenerateEmptyRoster(t *testing.T) {
	result := Generate(nil, testRng())
	assert.Empty(t, result.Meetings)
	assert.Empty(t, result.Dropped)
}

func TestGenerateZeroOverlapRoster(t *testing.T) {
	participants := []*repository.Participant{
		participant(1, repository.CategoryDSI),
		participant(2, repository.CategoryRHRecruteur),
	}
	result := Generate(participants, testRng())
	assert.Empty(t, result.Meetings)
	assert.Empty(t, result.Dropped)
}

func TestGenerateConcreteScenario(t *testing.T) {
	catX := repository.CategoryDSI
	catY := repository.CategoryDataIA
	participants := []*repository.Participant{
		participant(1, catX),
		participant(2, catX),
		participant(3, catY),
		participant(4, catX, catY),
	}

	result := Generate(participants, testRng())

	// all 4 candidates fit into 7 rounds, nobody needs more than 3
	assert.Len(t, result.Meetings, 4)
	assert.Empty(t, result.Dropped)
	assertNoDoubleBooking(t, result.Meetings)
	assertDenseTables(t, result.Meetings)

	rounds4 := make(map[int]bool)
	for _, meeting := range result.Meetings {
		assert.GreaterOrEqual(t, meeting.Round, 1)
		assert.LessOrEqual(t, meeting.Round, NumRounds)
		assert.Equal(t, repository.MeetingScheduled, meeting.Status)
		assert.Equal(t, ScheduledTime(meeting.Round), meeting.ScheduledTime)
		if meeting.Includes(4) {
			rounds4[meeting.Round] = true
		}
	}
	assert.Len(t, rounds4, 3)
}

func TestGenerateSharedCategoryOnEveryMeeting(t *testing.T) {
	participants := []*repository.Participant{
		participant(1, repository.CategoryDSI, repository.CategoryDataIA),
		participant(2, repository.CategoryDSI),
		participant(3, repository.CategoryDataIA),
		participant(4, repository.CategoryRHRecruteur),
	}
	result := Generate(participants, testRng())

	byId := make(map[int]*repository.Participant)
	for _, p := range participants {
		byId[p.Id] = p
	}
	assert.NotEmpty(t, result.Meetings)
	for _, meeting := range result.Meetings {
		_, ok := firstCommonCategory(byId[meeting.Participant1Id], byId[meeting.Participant2Id])
		assert.True(t, ok)
		assert.False(t, meeting.Includes(4), "participant without overlap must never be scheduled")
	}
}

func TestGenerateDropsUnschedulableCandidates(t *testing.T) {
	// 9 participants in one category produce 36 candidates, but 7 rounds with
	// at most 4 tables each cap the schedule at 28 meetings
	participants := make([]*repository.Participant, 0, 9)
	for id := 1; id <= 9; id++ {
		participants = append(participants, participant(id, repository.CategoryDSI))
	}

	result := Generate(participants, testRng())

	assert.Equal(t, 36, len(result.Meetings)+len(result.Dropped))
	assert.LessOrEqual(t, len(result.Meetings), 28)
	assert.GreaterOrEqual(t, len(result.Dropped), 8)
	assertNoDoubleBooking(t, result.Meetings)
	assertDenseTables(t, result.Meetings)
}

func TestGenerateIncrementalNoRepeatPairing(t *testing.T) {
	catX := repository.CategoryDSI
	participants := []*repository.Participant{
		participant(1, catX),
		participant(2, catX),
		participant(3, catX),
	}
	full := Generate(participants, testRng())
	assert.Len(t, full.Meetings, 3)

	// a latecomer joins mid-event
	participants = append(participants, participant(4, catX))
	incremental := GenerateIncremental(participants, full.Meetings, testRng())

	assert.Len(t, incremental.Meetings, 3)
	existingPairs := make(map[[2]int]bool)
	for _, meeting := range full.Meetings {
		existingPairs[[2]int{meeting.Participant1Id, meeting.Participant2Id}] = true
	}
	for _, meeting := range incremental.Meetings {
		assert.True(t, meeting.Includes(4), "incremental run must only pair the new participant")
		assert.False(t, existingPairs[[2]int{meeting.Participant1Id, meeting.Participant2Id}])
	}
	assertNoDoubleBooking(t, append(full.Meetings, incremental.Meetings...))
}

func TestGenerateIncrementalTableContinuation(t *testing.T) {
	catX := repository.CategoryDSI
	existing := []*repository.Meeting{
		{Id: MeetingId(1, 2, 1), Participant1Id: 1, Participant2Id: 2, Round: 1, TableNumber: 3, Category: catX},
	}
	participants := []*repository.Participant{
		participant(1, catX),
		participant(2, catX),
		participant(3, catX),
		participant(4, catX),
	}

	result := GenerateIncremental(participants, existing, testRng())

	for _, meeting := range result.Meetings {
		if meeting.Round == 1 {
			assert.GreaterOrEqual(t, meeting.TableNumber, 4,
				"round 1 tables must continue after the existing maximum")
		}
	}
	// pair 3-4 is free in round 1 and must land there on table 4
	placed34 := false
	for _, meeting := range result.Meetings {
		if meeting.Includes(3) && meeting.Includes(4) {
			placed34 = true
			assert.Equal(t, 1, meeting.Round)
			assert.Equal(t, 4, meeting.TableNumber)
		}
	}
	assert.True(t, placed34)
}

func TestMeetingIdIsOrderIndependent(t *testing.T) {
	assert.Equal(t, "m-1-2-3", MeetingId(1, 2, 3))
	assert.Equal(t, MeetingId(1, 2, 3), MeetingId(2, 1, 3))
}

func TestScheduledTime(t *testing.T) {
	assert.Equal(t, "09:00", ScheduledTime(1))
	assert.Equal(t, "10:30", ScheduledTime(7))
	assert.Equal(t, fallbackTimeSlot, ScheduledTime(8))
}
