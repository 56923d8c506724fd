package repository

import (
	"gorm.io/gorm"
)

type Rating struct {
	Id        int     `gorm:"primaryKey"`
	MeetingId string  `gorm:"not null;index"`
	FromId    int     `gorm:"not null"`
	ToId      int     `gorm:"not null;index"`
	Score     int     `gorm:"not null"`
	Comment   *string `gorm:"null"`
}

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// SubmitRating records a rating and recomputes the ratee's running average
// over every rating they ever received. Submit and edit share this path: any
// earlier rating from the same rater for the same meeting is replaced, never
// duplicated. The whole read-modify-write runs in one transaction so two
// concurrent submissions cannot clobber each other's contribution.
func (r *RatingRepository) SubmitRating(rating *Rating) (float64, error) {
	var avg float64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ? AND from_id = ?", rating.MeetingId, rating.FromId).Delete(&Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Create(rating).Error; err != nil {
			return err
		}
		row := tx.Model(&Rating{}).Select("coalesce(avg(score), 0)").Where("to_id = ?", rating.ToId).Row()
		if err := row.Scan(&avg); err != nil {
			return err
		}
		return tx.Model(&Participant{}).Where("id = ?", rating.ToId).Update("avg_score", avg).Error
	})
	if err != nil {
		return 0, err
	}
	return avg, nil
}

func (r *RatingRepository) GetRatingsForRatee(participantId int) ([]*Rating, error) {
	ratings := make([]*Rating, 0)
	result := r.DB.Find(&ratings, &Rating{ToId: participantId})
	if result.Error != nil {
		return nil, result.Error
	}
	return ratings, nil
}
