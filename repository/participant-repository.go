package repository

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryDSI                 Category = "DSI"
	CategoryRSSICyber           Category = "RSSI ou Expert Cyber"
	CategoryArchitecte          Category = "Architecte d'Entreprise"
	CategoryInfraNet            Category = "Responsable ou Expert Infrastructure, Systèmes & Réseaux"
	CategoryDataIA              Category = "Responsable ou Expert Data & IA"
	CategoryPMOPOPM             Category = "PMO-PO-PM"
	CategoryMarketingEcommerce  Category = "Responsable Marketing digital et/ou E-commerce"
	CategoryRHRecruteur         Category = "RH ou recruteur"
	CategoryDirPrestataire      Category = "Direction générale ou commerciale d'entreprise prestataire"
	CategoryDirEcole            Category = "Direction d'écoles/université & Responsable enseignement"
	CategoryAcheteurJuriste     Category = "Acheteur ou Juriste"
	CategoryAutre               Category = "Autre"
)

// Categories returns the closed enumeration of professional categories.
func Categories() []Category {
	return []Category{
		CategoryDSI,
		CategoryRSSICyber,
		CategoryArchitecte,
		CategoryInfraNet,
		CategoryDataIA,
		CategoryPMOPOPM,
		CategoryMarketingEcommerce,
		CategoryRHRecruteur,
		CategoryDirPrestataire,
		CategoryDirEcole,
		CategoryAcheteurJuriste,
		CategoryAutre,
	}
}

func IsValidCategory(c Category) bool {
	for _, category := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

type Participant struct {
	Id         int            `gorm:"primaryKey"`
	Name       string         `gorm:"not null;index"`
	FirstName  string         `gorm:"null"`
	LastName   string         `gorm:"null"`
	Company    string         `gorm:"null"`
	Role       string         `gorm:"null"`
	Categories pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Bio        string         `gorm:"null"`
	Avatar     string         `gorm:"null"`
	AvgScore   float64        `gorm:"not null;default:0"`
	PartnerId  *int           `gorm:"null"`
}

// CategoryTags returns the tags in their storage order, which is the
// order the tie-break category selection depends on.
func (p *Participant) CategoryTags() []Category {
	tags := make([]Category, len(p.Categories))
	for i, c := range p.Categories {
		tags[i] = Category(c)
	}
	return tags
}

type ParticipantRepository struct {
	DB *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

func (r *ParticipantRepository) GetParticipantById(participantId int) (*Participant, error) {
	var participant Participant
	result := r.DB.First(&participant, participantId)
	if result.Error != nil {
		return nil, fmt.Errorf("participant with id %d not found", participantId)
	}
	return &participant, nil
}

func (r *ParticipantRepository) GetParticipantByName(name string) (*Participant, error) {
	var participant Participant
	result := r.DB.First(&participant, "lower(name) = lower(?)", name)
	if result.Error != nil {
		return nil, result.Error
	}
	return &participant, nil
}

func (r *ParticipantRepository) GetAllParticipants() ([]*Participant, error) {
	participants := make([]*Participant, 0)
	result := r.DB.Order("id ASC").Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}
	return participants, nil
}

func (r *ParticipantRepository) SaveParticipant(participant *Participant) (*Participant, error) {
	result := r.DB.Save(participant)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save participant: %v", result.Error)
	}
	return participant, nil
}

func (r *ParticipantRepository) SaveParticipants(participants []*Participant) error {
	if len(participants) == 0 {
		return nil
	}
	return r.DB.Save(participants).Error
}

func (r *ParticipantRepository) DeleteParticipant(participantId int) error {
	// meetings referencing the participant are left in place on purpose
	result := r.DB.Delete(&Participant{}, participantId)
	return result.Error
}

// SetPartners writes the mutual confirmed-duo references in one transaction.
func (r *ParticipantRepository) SetPartners(participant1Id int, participant2Id int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Participant{}).Where("id = ?", participant1Id).Update("partner_id", participant2Id).Error; err != nil {
			return err
		}
		return tx.Model(&Participant{}).Where("id = ?", participant2Id).Update("partner_id", participant1Id).Error
	})
}

func (r *ParticipantRepository) DeleteAllParticipants() error {
	return r.DB.Where("1 = 1").Delete(&Participant{}).Error
}
