package service

import (
	"fmt"
	"io"
	"strings"

	"p2p/app_error"
	"p2p/parser"
	"p2p/repository"

	"gorm.io/gorm"
)

type ParticipantService struct {
	participantRepository *repository.ParticipantRepository
	syncService           *SyncService
}

func NewParticipantService(db *gorm.DB, syncService *SyncService) *ParticipantService {
	return &ParticipantService{
		participantRepository: repository.NewParticipantRepository(db),
		syncService:           syncService,
	}
}

// Register creates a participant, or returns the canonical existing record
// when the display name is already taken. The duplicate submission's data is
// ignored on purpose; the second return value tells whether a new record
// was created.
func (e *ParticipantService) Register(participant *repository.Participant) (*repository.Participant, bool, error) {
	if len(participant.Categories) == 0 {
		return nil, false, app_error.WithStatus(fmt.Errorf("at least one category is required"), 400)
	}
	for _, category := range participant.Categories {
		if !repository.IsValidCategory(repository.Category(category)) {
			return nil, false, app_error.WithStatus(fmt.Errorf("unknown category %q", category), 400)
		}
	}
	if participant.Avatar == "" {
		participant.Avatar = fmt.Sprintf("https://picsum.photos/seed/%s/200", strings.ReplaceAll(participant.Name, " ", ""))
	}
	existing, err := e.participantRepository.GetParticipantByName(participant.Name)
	if err == nil {
		return existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}
	saved, err := e.participantRepository.SaveParticipant(participant)
	if err != nil {
		return nil, false, err
	}
	e.syncService.Publish(UpdateRoster)
	return saved, true, nil
}

func (e *ParticipantService) GetAllParticipants() ([]*repository.Participant, error) {
	return e.participantRepository.GetAllParticipants()
}

func (e *ParticipantService) GetParticipantById(participantId int) (*repository.Participant, error) {
	participant, err := e.participantRepository.GetParticipantById(participantId)
	if err != nil {
		return nil, app_error.WithStatus(err, 404)
	}
	return participant, nil
}

type ParticipantUpdate struct {
	Name       *string  `json:"name"`
	FirstName  *string  `json:"first_name"`
	LastName   *string  `json:"last_name"`
	Company    *string  `json:"company"`
	Role       *string  `json:"role"`
	Categories []string `json:"categories"`
	Bio        *string  `json:"bio"`
	Avatar     *string  `json:"avatar"`
}

func (e *ParticipantService) UpdateParticipant(participantId int, update *ParticipantUpdate) (*repository.Participant, error) {
	participant, err := e.GetParticipantById(participantId)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		participant.Name = *update.Name
	}
	if update.FirstName != nil {
		participant.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		participant.LastName = *update.LastName
	}
	if update.Company != nil {
		participant.Company = *update.Company
	}
	if update.Role != nil {
		participant.Role = *update.Role
	}
	if update.Bio != nil {
		participant.Bio = *update.Bio
	}
	if update.Avatar != nil {
		participant.Avatar = *update.Avatar
	}
	if update.Categories != nil {
		if len(update.Categories) == 0 {
			return nil, app_error.WithStatus(fmt.Errorf("at least one category is required"), 400)
		}
		for _, category := range update.Categories {
			if !repository.IsValidCategory(repository.Category(category)) {
				return nil, app_error.WithStatus(fmt.Errorf("unknown category %q", category), 400)
			}
		}
		participant.Categories = update.Categories
	}
	saved, err := e.participantRepository.SaveParticipant(participant)
	if err != nil {
		return nil, err
	}
	e.syncService.Publish(UpdateRoster)
	return saved, nil
}

// DeleteParticipant removes the profile. Meetings referencing it are kept,
// schedule views skip participants they cannot resolve.
func (e *ParticipantService) DeleteParticipant(participantId int) error {
	if err := e.participantRepository.DeleteParticipant(participantId); err != nil {
		return err
	}
	e.syncService.Publish(UpdateRoster)
	return nil
}

// ImportRoster bulk-creates participants from a CSV sheet. Records whose
// display name already exists are skipped, the existing profile stays
// canonical. A name repeated within the sheet itself counts as existing
// from its second occurrence on.
func (e *ParticipantService) ImportRoster(reader io.Reader) (imported int, skipped int, err error) {
	records, err := parser.ParseRoster(reader)
	if err != nil {
		return 0, 0, app_error.WithStatus(err, 400)
	}
	seen := make(map[string]bool)
	newParticipants := make([]*repository.Participant, 0, len(records))
	for _, record := range records {
		nameKey := strings.ToLower(record.Name)
		if seen[nameKey] {
			skipped++
			continue
		}
		if _, err := e.participantRepository.GetParticipantByName(record.Name); err == nil {
			skipped++
			continue
		}
		seen[nameKey] = true
		newParticipants = append(newParticipants, record)
	}
	if err := e.participantRepository.SaveParticipants(newParticipants); err != nil {
		return 0, 0, err
	}
	if len(newParticipants) > 0 {
		e.syncService.Publish(UpdateRoster)
	}
	return len(newParticipants), skipped, nil
}
