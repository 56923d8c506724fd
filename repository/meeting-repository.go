package repository

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingOngoing   MeetingStatus = "ongoing"
	MeetingCompleted MeetingStatus = "completed"
)

type Meeting struct {
	Id             string        `gorm:"primaryKey"`
	Participant1Id int           `gorm:"not null;index"`
	Participant2Id int           `gorm:"not null;index"`
	Round          int           `gorm:"not null;index"`
	TableNumber    int           `gorm:"not null"`
	ScheduledTime  string        `gorm:"not null"`
	Category       Category      `gorm:"not null"`
	Status         MeetingStatus `gorm:"not null;default:'scheduled'"`
	ActualStartTime *time.Time   `gorm:"null"`
	Ratings        []*Rating     `gorm:"foreignKey:MeetingId;constraint:OnDelete:CASCADE"`
}

func (m *Meeting) Includes(participantId int) bool {
	return m.Participant1Id == participantId || m.Participant2Id == participantId
}

func (m *Meeting) OtherParticipantId(participantId int) int {
	if m.Participant1Id == participantId {
		return m.Participant2Id
	}
	return m.Participant1Id
}

type MeetingRepository struct {
	DB *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{DB: db}
}

func (r *MeetingRepository) GetAllMeetings() ([]*Meeting, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetAllMeetings"))
	defer timer.ObserveDuration()
	meetings := make([]*Meeting, 0)
	result := r.DB.Preload("Ratings").Order("round ASC, table_number ASC").Find(&meetings)
	if result.Error != nil {
		return nil, result.Error
	}
	return meetings, nil
}

func (r *MeetingRepository) GetMeetingById(meetingId string) (*Meeting, error) {
	var meeting Meeting
	result := r.DB.Preload("Ratings").First(&meeting, "id = ?", meetingId)
	if result.Error != nil {
		return nil, fmt.Errorf("meeting with id %s not found", meetingId)
	}
	return &meeting, nil
}

func (r *MeetingRepository) GetMeetingsForParticipant(participantId int) ([]*Meeting, error) {
	meetings := make([]*Meeting, 0)
	result := r.DB.Preload("Ratings").
		Where("participant1_id = ? OR participant2_id = ?", participantId, participantId).
		Order("round ASC").Find(&meetings)
	if result.Error != nil {
		return nil, result.Error
	}
	return meetings, nil
}

// ReplaceAllMeetings swaps the entire meeting set in one transaction, so a
// failed run never leaves a half-written schedule behind.
func (r *MeetingRepository) ReplaceAllMeetings(meetings []*Meeting) error {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("ReplaceAllMeetings"))
	defer timer.ObserveDuration()
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&Meeting{}).Error; err != nil {
			return err
		}
		if len(meetings) == 0 {
			return nil
		}
		return tx.Create(meetings).Error
	})
}

// AddMeetings appends newly generated meetings without touching existing ones.
func (r *MeetingRepository) AddMeetings(meetings []*Meeting) error {
	if len(meetings) == 0 {
		return nil
	}
	return r.DB.Create(meetings).Error
}

func (r *MeetingRepository) SaveMeeting(meeting *Meeting) (*Meeting, error) {
	result := r.DB.Save(meeting)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save meeting: %v", result.Error)
	}
	return meeting, nil
}

func (r *MeetingRepository) DeleteAllMeetings() error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Rating{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&Meeting{}).Error
	})
}
