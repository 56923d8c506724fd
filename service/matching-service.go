package service

import (
	"log"
	"math/rand/v2"
	"time"

	"p2p/client"
	"p2p/matching"
	"p2p/repository"

	"gorm.io/gorm"
)

type MatchingService struct {
	participantRepository *repository.ParticipantRepository
	meetingRepository     *repository.MeetingRepository
	syncService           *SyncService
	discordClient         *client.DiscordClient
	// Rng drives the candidate shuffle; production seeds it from the clock,
	// tests may swap in a fixed seed.
	Rng *rand.Rand
}

func NewMatchingService(db *gorm.DB, syncService *SyncService) *MatchingService {
	discordClient, err := client.NewDiscordClient()
	if err != nil {
		log.Printf("schedule announcements disabled: %v", err)
		discordClient = nil
	}
	return &MatchingService{
		participantRepository: repository.NewParticipantRepository(db),
		meetingRepository:     repository.NewMeetingRepository(db),
		syncService:           syncService,
		discordClient:         discordClient,
		Rng:                   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
	}
}

// MatchRunSummary reports the outcome of one matching run. Dropped counts
// candidates that fit no round, which is expected and not an error.
type MatchRunSummary struct {
	Generated int `json:"generated"`
	Dropped   int `json:"dropped"`
	Total     int `json:"total"`
}

// GenerateSchedule runs a full matching pass and replaces the entire meeting
// set. The schedule is computed in memory before anything is written, a
// failed run leaves the previous state unchanged.
func (e *MatchingService) GenerateSchedule() (*MatchRunSummary, error) {
	participants, err := e.participantRepository.GetAllParticipants()
	if err != nil {
		return nil, err
	}
	result := matching.Generate(participants, e.Rng)
	if err := e.meetingRepository.ReplaceAllMeetings(result.Meetings); err != nil {
		return nil, err
	}
	e.syncService.Publish(UpdateSchedule)
	e.announce(result.Meetings)
	return &MatchRunSummary{
		Generated: len(result.Meetings),
		Dropped:   len(result.Dropped),
		Total:     len(result.Meetings),
	}, nil
}

// GenerateIncrementalSchedule schedules only newly eligible pairs and unions
// them with the existing meetings, which are never touched.
func (e *MatchingService) GenerateIncrementalSchedule() (*MatchRunSummary, error) {
	participants, err := e.participantRepository.GetAllParticipants()
	if err != nil {
		return nil, err
	}
	existing, err := e.meetingRepository.GetAllMeetings()
	if err != nil {
		return nil, err
	}
	result := matching.GenerateIncremental(participants, existing, e.Rng)
	if err := e.meetingRepository.AddMeetings(result.Meetings); err != nil {
		return nil, err
	}
	e.syncService.Publish(UpdateSchedule)
	e.announce(result.Meetings)
	return &MatchRunSummary{
		Generated: len(result.Meetings),
		Dropped:   len(result.Dropped),
		Total:     len(existing) + len(result.Meetings),
	}, nil
}

// ResetSession wipes the schedule, and optionally the roster, for a fresh
// event day.
func (e *MatchingService) ResetSession(wipeRoster bool) error {
	if err := e.meetingRepository.DeleteAllMeetings(); err != nil {
		return err
	}
	if wipeRoster {
		if err := e.participantRepository.DeleteAllParticipants(); err != nil {
			return err
		}
		e.syncService.Publish(UpdateRoster)
	}
	e.syncService.Publish(UpdateSchedule)
	return nil
}

func (e *MatchingService) announce(meetings []*repository.Meeting) {
	if e.discordClient == nil || len(meetings) == 0 {
		return
	}
	go func() {
		if err := e.discordClient.AnnounceSchedule(meetings); err != nil {
			log.Printf("failed to announce schedule: %v", err)
		}
	}()
}
