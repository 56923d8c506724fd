package matching

import (
	"fmt"
	"math/rand/v2"
	"p2p/repository"
	"time"
)

// NumRounds is the fixed number of timed sessions in an event day.
const NumRounds = 7

var timeSlots = []string{"09:00", "09:15", "09:30", "09:45", "10:00", "10:15", "10:30"}

const fallbackTimeSlot = "À venir"

// ScheduledTime returns the cosmetic display time for a round, or a
// placeholder when the slot table has no entry.
func ScheduledTime(round int) string {
	if round >= 1 && round <= len(timeSlots) {
		return timeSlots[round-1]
	}
	return fallbackTimeSlot
}

// MeetingId derives the deterministic meeting id for a pair and a round.
// The lower participant id always comes first, so regenerating the same
// pairing for the same round yields the same id regardless of candidate
// order.
func MeetingId(participant1Id int, participant2Id int, round int) string {
	if participant2Id < participant1Id {
		participant1Id, participant2Id = participant2Id, participant1Id
	}
	return fmt.Sprintf("m-%d-%d-%d", participant1Id, participant2Id, round)
}

type pairKey struct {
	lowId  int
	highId int
}

func keyFor(participant1Id int, participant2Id int) pairKey {
	if participant2Id < participant1Id {
		participant1Id, participant2Id = participant2Id, participant1Id
	}
	return pairKey{lowId: participant1Id, highId: participant2Id}
}

// Result is the outcome of one matching run. Meetings holds only the newly
// generated meetings; in incremental mode the caller unions them with the
// existing set. Dropped lists the candidates that could not be placed in any
// of the rounds, they are not an error but are exposed for observability.
type Result struct {
	Meetings []*repository.Meeting
	Dropped  []*Candidate
}

// Generate runs a full matching pass over the roster. The result replaces
// any prior meeting set entirely.
func Generate(participants []*repository.Participant, rng *rand.Rand) Result {
	return run(participants, nil, rng, "full")
}

// GenerateIncremental schedules only candidates without an existing meeting
// together. Per-participant round occupancy and per-round table counters are
// seeded from the existing meetings, so new tables continue after the highest
// assigned one and nobody gets double-booked against their current schedule.
// Existing meetings are never mutated or removed.
func GenerateIncremental(participants []*repository.Participant, existing []*repository.Meeting, rng *rand.Rand) Result {
	return run(participants, existing, rng, "incremental")
}

func run(participants []*repository.Participant, existing []*repository.Meeting, rng *rand.Rand, mode string) Result {
	t := time.Now()

	occupiedRounds := make(map[int]map[int]bool)
	for _, participant := range participants {
		occupiedRounds[participant.Id] = make(map[int]bool)
	}
	tableCounters := make(map[int]int)
	for round := 1; round <= NumRounds; round++ {
		tableCounters[round] = 1
	}

	alreadyPaired := make(map[pairKey]bool)
	for _, meeting := range existing {
		alreadyPaired[keyFor(meeting.Participant1Id, meeting.Participant2Id)] = true
		for _, participantId := range []int{meeting.Participant1Id, meeting.Participant2Id} {
			if occupiedRounds[participantId] == nil {
				occupiedRounds[participantId] = make(map[int]bool)
			}
			occupiedRounds[participantId][meeting.Round] = true
		}
		if meeting.TableNumber >= tableCounters[meeting.Round] {
			tableCounters[meeting.Round] = meeting.TableNumber + 1
		}
	}

	candidates := CandidatePairs(participants)
	if len(alreadyPaired) > 0 {
		filtered := make([]*Candidate, 0, len(candidates))
		for _, candidate := range candidates {
			if !alreadyPaired[keyFor(candidate.Participant1.Id, candidate.Participant2.Id)] {
				filtered = append(filtered, candidate)
			}
		}
		candidates = filtered
	}
	ShuffleCandidates(candidates, rng)

	result := Result{Meetings: make([]*repository.Meeting, 0), Dropped: make([]*Candidate, 0)}
	for _, candidate := range candidates {
		placed := false
		for round := 1; round <= NumRounds; round++ {
			if occupiedRounds[candidate.Participant1.Id][round] || occupiedRounds[candidate.Participant2.Id][round] {
				continue
			}
			result.Meetings = append(result.Meetings, &repository.Meeting{
				Id:             MeetingId(candidate.Participant1.Id, candidate.Participant2.Id, round),
				Participant1Id: candidate.Participant1.Id,
				Participant2Id: candidate.Participant2.Id,
				Round:          round,
				TableNumber:    tableCounters[round],
				ScheduledTime:  ScheduledTime(round),
				Category:       candidate.Category,
				Status:         repository.MeetingScheduled,
			})
			tableCounters[round]++
			occupiedRounds[candidate.Participant1.Id][round] = true
			occupiedRounds[candidate.Participant2.Id][round] = true
			placed = true
			break
		}
		if !placed {
			result.Dropped = append(result.Dropped, candidate)
		}
	}

	matchingDuration.WithLabelValues(mode).Set(time.Since(t).Seconds())
	droppedCandidates.WithLabelValues(mode).Set(float64(len(result.Dropped)))
	return result
}
