package service

import (
	"fmt"

	"p2p/app_error"
	"p2p/repository"

	"gorm.io/gorm"
)

type RatingService struct {
	ratingRepository  *repository.RatingRepository
	meetingRepository *repository.MeetingRepository
	syncService       *SyncService
}

func NewRatingService(db *gorm.DB, syncService *SyncService) *RatingService {
	return &RatingService{
		ratingRepository:  repository.NewRatingRepository(db),
		meetingRepository: repository.NewMeetingRepository(db),
		syncService:       syncService,
	}
}

type RatingSubmission struct {
	FromId  int     `json:"from_id" binding:"required"`
	Score   int     `json:"score" binding:"required"`
	Comment *string `json:"comment"`
}

// SubmitRating records a rating for a meeting partner and synchronously
// recomputes the ratee's running average. Resubmitting replaces the rater's
// earlier rating for the same meeting.
func (e *RatingService) SubmitRating(meetingId string, submission *RatingSubmission) (*repository.Rating, float64, error) {
	if submission.Score < 1 || submission.Score > 5 {
		return nil, 0, app_error.WithStatus(fmt.Errorf("score must be between 1 and 5"), 400)
	}
	meeting, err := e.meetingRepository.GetMeetingById(meetingId)
	if err != nil {
		return nil, 0, app_error.WithStatus(err, 404)
	}
	if !meeting.Includes(submission.FromId) {
		return nil, 0, app_error.WithStatus(fmt.Errorf("participant %d is not part of meeting %s", submission.FromId, meetingId), 400)
	}
	rating := &repository.Rating{
		MeetingId: meetingId,
		FromId:    submission.FromId,
		ToId:      meeting.OtherParticipantId(submission.FromId),
		Score:     submission.Score,
		Comment:   submission.Comment,
	}
	average, err := e.ratingRepository.SubmitRating(rating)
	if err != nil {
		return nil, 0, err
	}
	e.syncService.Publish(UpdateRatings)
	return rating, average, nil
}

func (e *RatingService) GetRatingsForRatee(participantId int) ([]*repository.Rating, error) {
	return e.ratingRepository.GetRatingsForRatee(participantId)
}
