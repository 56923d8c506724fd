package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"p2p/app_error"
	"p2p/client"
	"p2p/repository"

	"gorm.io/gorm"
)

type MeetingService struct {
	meetingRepository     *repository.MeetingRepository
	participantRepository *repository.ParticipantRepository
	syncService           *SyncService
	geminiClient          *client.GeminiClient
}

func NewMeetingService(db *gorm.DB, syncService *SyncService) *MeetingService {
	geminiClient, err := client.NewGeminiClient(context.Background())
	if err != nil {
		log.Printf("icebreaker generation disabled: %v", err)
		geminiClient = nil
	}
	return &MeetingService{
		meetingRepository:     repository.NewMeetingRepository(db),
		participantRepository: repository.NewParticipantRepository(db),
		syncService:           syncService,
		geminiClient:          geminiClient,
	}
}

func (e *MeetingService) GetAllMeetings() ([]*repository.Meeting, error) {
	return e.meetingRepository.GetAllMeetings()
}

func (e *MeetingService) GetMeetingById(meetingId string) (*repository.Meeting, error) {
	meeting, err := e.meetingRepository.GetMeetingById(meetingId)
	if err != nil {
		return nil, app_error.WithStatus(err, 404)
	}
	return meeting, nil
}

func (e *MeetingService) GetMeetingsForParticipant(participantId int) ([]*repository.Meeting, error) {
	return e.meetingRepository.GetMeetingsForParticipant(participantId)
}

// StartMeeting moves a meeting to ongoing and stamps the actual start time
// on the first transition. Re-entering an ongoing meeting is allowed, a
// completed one is final.
func (e *MeetingService) StartMeeting(meetingId string) (*repository.Meeting, error) {
	meeting, err := e.GetMeetingById(meetingId)
	if err != nil {
		return nil, err
	}
	if meeting.Status == repository.MeetingCompleted {
		return nil, app_error.WithStatus(fmt.Errorf("meeting %s is already completed", meetingId), 409)
	}
	if meeting.Status == repository.MeetingScheduled {
		now := time.Now()
		meeting.ActualStartTime = &now
	}
	meeting.Status = repository.MeetingOngoing
	saved, err := e.meetingRepository.SaveMeeting(meeting)
	if err != nil {
		return nil, err
	}
	e.syncService.Publish(UpdateSchedule)
	return saved, nil
}

// FinishMeeting completes a meeting. The transition is monotonic, finishing
// an already completed meeting is a no-op.
func (e *MeetingService) FinishMeeting(meetingId string) (*repository.Meeting, error) {
	meeting, err := e.GetMeetingById(meetingId)
	if err != nil {
		return nil, err
	}
	if meeting.Status == repository.MeetingCompleted {
		return meeting, nil
	}
	meeting.Status = repository.MeetingCompleted
	saved, err := e.meetingRepository.SaveMeeting(meeting)
	if err != nil {
		return nil, err
	}
	e.syncService.Publish(UpdateSchedule)
	return saved, nil
}

// GetIcebreakers returns conversation starters for the meeting's two
// profiles.
func (e *MeetingService) GetIcebreakers(ctx context.Context, meetingId string) ([]string, error) {
	meeting, err := e.GetMeetingById(meetingId)
	if err != nil {
		return nil, err
	}
	participant1, err := e.participantRepository.GetParticipantById(meeting.Participant1Id)
	if err != nil {
		return nil, app_error.WithStatus(err, 404)
	}
	participant2, err := e.participantRepository.GetParticipantById(meeting.Participant2Id)
	if err != nil {
		return nil, app_error.WithStatus(err, 404)
	}
	return e.geminiClient.GetIcebreakers(ctx, participant1, participant2), nil
}
