package service

import (
	"fmt"

	"p2p/app_error"
	"p2p/matching"
	"p2p/repository"

	"gorm.io/gorm"
)

type RankingService struct {
	participantRepository *repository.ParticipantRepository
	meetingRepository     *repository.MeetingRepository
	syncService           *SyncService
}

func NewRankingService(db *gorm.DB, syncService *SyncService) *RankingService {
	return &RankingService{
		participantRepository: repository.NewParticipantRepository(db),
		meetingRepository:     repository.NewMeetingRepository(db),
		syncService:           syncService,
	}
}

// GetDuoRanking returns the advisory post-event ranking of reciprocally
// rated pairs, best synergy first.
func (e *RankingService) GetDuoRanking() ([]*matching.Duo, error) {
	meetings, err := e.meetingRepository.GetAllMeetings()
	if err != nil {
		return nil, err
	}
	participants, err := e.participantRepository.GetAllParticipants()
	if err != nil {
		return nil, err
	}
	return matching.RankDuos(meetings, participants), nil
}

// ConfirmDuo records the administrator's final call on a pair by writing
// mutual partner references. A participant holds at most one confirmed
// partner.
func (e *RankingService) ConfirmDuo(participant1Id int, participant2Id int) error {
	if participant1Id == participant2Id {
		return app_error.WithStatus(fmt.Errorf("a participant cannot be their own partner"), 400)
	}
	for _, participantId := range []int{participant1Id, participant2Id} {
		participant, err := e.participantRepository.GetParticipantById(participantId)
		if err != nil {
			return app_error.WithStatus(err, 404)
		}
		if participant.PartnerId != nil {
			return app_error.WithStatus(fmt.Errorf("participant %d already has a confirmed partner", participantId), 409)
		}
	}
	if err := e.participantRepository.SetPartners(participant1Id, participant2Id); err != nil {
		return err
	}
	e.syncService.Publish(UpdateRoster)
	return nil
}
