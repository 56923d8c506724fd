package controller

import (
	"strconv"

	"p2p/app_error"
	"p2p/auth"
	"p2p/service"
	"p2p/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RatingController struct {
	ratingService *service.RatingService
}

func NewRatingController(db *gorm.DB, syncService *service.SyncService) *RatingController {
	return &RatingController{
		ratingService: service.NewRatingService(db, syncService),
	}
}

func setupRatingController(db *gorm.DB, syncService *service.SyncService) []RouteInfo {
	e := NewRatingController(db, syncService)
	routes := []RouteInfo{
		{Method: "POST", Path: "/meetings/:meeting_id/ratings", HandlerFunc: e.submitRatingHandler()},
		{Method: "GET", Path: "/participants/:participant_id/ratings", HandlerFunc: e.getRatingsForParticipantHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
	}
	return routes
}

type RatingResult struct {
	Rating   *MeetingRating `json:"rating" binding:"required"`
	AvgScore float64        `json:"avg_score" binding:"required"`
}

// @id SubmitRating
// @Description Submits a rating for the other participant of a meeting. Resubmitting replaces the earlier rating.
// @Tags rating
// @Accept json
// @Produce json
// @Param meeting_id path string true "Meeting Id"
// @Param rating body service.RatingSubmission true "Rating"
// @Success 201 {object} RatingResult
// @Router /meetings/{meeting_id}/ratings [post]
func (e *RatingController) submitRatingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var submission service.RatingSubmission
		if err := c.BindJSON(&submission); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		rating, avgScore, err := e.ratingService.SubmitRating(c.Param("meeting_id"), &submission)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, RatingResult{Rating: toMeetingRatingResponse(rating), AvgScore: avgScore})
	}
}

// @id GetRatingsForParticipant
// @Description Fetches all ratings received by a participant
// @Tags rating
// @Produce json
// @Param participant_id path int true "Participant Id"
// @Success 200 {array} MeetingRating
// @Security BearerAuth
// @Router /participants/{participant_id}/ratings [get]
func (e *RatingController) getRatingsForParticipantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participantId, err := strconv.Atoi(c.Param("participant_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		ratings, err := e.ratingService.GetRatingsForRatee(participantId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(ratings, toMeetingRatingResponse))
	}
}
