package matching

import (
	"p2p/repository"
	"sort"
)

// Duo is a ranked pair of participants whose meeting was rated by both
// sides. Synergy is the sum of the two reciprocal scores (2..10). Confirmed
// marks duos the administrator already finalized via mutual partner
// references.
type Duo struct {
	Participant1 *repository.Participant
	Participant2 *repository.Participant
	Synergy      int
	Meeting      *repository.Meeting
	Confirmed    bool
}

// RankDuos aggregates reciprocal ratings into a ranking, descending by
// synergy score. A meeting qualifies only when both participants rated each
// other. Meetings whose participants were deleted are skipped, there is no
// profile left to rank.
func RankDuos(meetings []*repository.Meeting, participants []*repository.Participant) []*Duo {
	participantMap := make(map[int]*repository.Participant)
	for _, participant := range participants {
		participantMap[participant.Id] = participant
	}

	duos := make([]*Duo, 0)
	for _, meeting := range meetings {
		participant1 := participantMap[meeting.Participant1Id]
		participant2 := participantMap[meeting.Participant2Id]
		if participant1 == nil || participant2 == nil {
			continue
		}
		score1, ok1 := directedScore(meeting, participant1.Id, participant2.Id)
		score2, ok2 := directedScore(meeting, participant2.Id, participant1.Id)
		if !ok1 || !ok2 {
			continue
		}
		duos = append(duos, &Duo{
			Participant1: participant1,
			Participant2: participant2,
			Synergy:      score1 + score2,
			Meeting:      meeting,
			Confirmed:    areConfirmedPartners(participant1, participant2),
		})
	}

	sort.SliceStable(duos, func(i, j int) bool {
		if duos[i].Synergy != duos[j].Synergy {
			return duos[i].Synergy > duos[j].Synergy
		}
		return duos[i].Meeting.Id < duos[j].Meeting.Id
	})
	return duos
}

func directedScore(meeting *repository.Meeting, fromId int, toId int) (int, bool) {
	for _, rating := range meeting.Ratings {
		if rating.FromId == fromId && rating.ToId == toId {
			return rating.Score, true
		}
	}
	return 0, false
}

func areConfirmedPartners(participant1 *repository.Participant, participant2 *repository.Participant) bool {
	return participant1.PartnerId != nil && *participant1.PartnerId == participant2.Id &&
		participant2.PartnerId != nil && *participant2.PartnerId == participant1.Id
}
