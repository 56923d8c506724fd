package controller

import (
	"time"

	"p2p/app_error"
	"p2p/auth"
	"p2p/repository"
	"p2p/service"
	"p2p/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MeetingController struct {
	meetingService  *service.MeetingService
	matchingService *service.MatchingService
}

func NewMeetingController(db *gorm.DB, syncService *service.SyncService) *MeetingController {
	return &MeetingController{
		meetingService:  service.NewMeetingService(db, syncService),
		matchingService: service.NewMatchingService(db, syncService),
	}
}

func setupMeetingController(db *gorm.DB, syncService *service.SyncService) []RouteInfo {
	e := NewMeetingController(db, syncService)
	routes := []RouteInfo{
		{Method: "GET", Path: "/meetings", HandlerFunc: e.getAllMeetingsHandler()},
		{Method: "GET", Path: "/meetings/:meeting_id", HandlerFunc: e.getMeetingByIdHandler()},
		{Method: "POST", Path: "/meetings/generate", HandlerFunc: e.generateScheduleHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
		{Method: "POST", Path: "/meetings/generate/incremental", HandlerFunc: e.generateIncrementalHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
		{Method: "POST", Path: "/meetings/:meeting_id/start", HandlerFunc: e.startMeetingHandler()},
		{Method: "POST", Path: "/meetings/:meeting_id/finish", HandlerFunc: e.finishMeetingHandler()},
		{Method: "GET", Path: "/meetings/:meeting_id/icebreakers", HandlerFunc: e.getIcebreakersHandler()},
		{Method: "POST", Path: "/admin/reset", HandlerFunc: e.resetSessionHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
	}
	return routes
}

// @id GetAllMeetings
// @Description Fetches the full schedule ordered by round and table
// @Tags meeting
// @Produce json
// @Success 200 {array} Meeting
// @Router /meetings [get]
func (e *MeetingController) getAllMeetingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		meetings, err := e.meetingService.GetAllMeetings()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(meetings, toMeetingResponse))
	}
}

// @id GetMeetingById
// @Description Fetches a single meeting
// @Tags meeting
// @Produce json
// @Param meeting_id path string true "Meeting Id"
// @Success 200 {object} Meeting
// @Router /meetings/{meeting_id} [get]
func (e *MeetingController) getMeetingByIdHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		meeting, err := e.meetingService.GetMeetingById(c.Param("meeting_id"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toMeetingResponse(meeting))
	}
}

// @id GenerateSchedule
// @Description Regenerates the full schedule from the current roster, replacing all meetings and ratings
// @Tags meeting
// @Produce json
// @Success 200 {object} service.MatchRunSummary
// @Security BearerAuth
// @Router /meetings/generate [post]
func (e *MeetingController) generateScheduleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := e.matchingService.GenerateSchedule()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, summary)
	}
}

// @id GenerateIncrementalSchedule
// @Description Schedules meetings for latecomers without touching existing meetings
// @Tags meeting
// @Produce json
// @Success 200 {object} service.MatchRunSummary
// @Security BearerAuth
// @Router /meetings/generate/incremental [post]
func (e *MeetingController) generateIncrementalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := e.matchingService.GenerateIncrementalSchedule()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, summary)
	}
}

// @id StartMeeting
// @Description Marks a meeting as ongoing and stamps the actual start time
// @Tags meeting
// @Produce json
// @Param meeting_id path string true "Meeting Id"
// @Success 200 {object} Meeting
// @Router /meetings/{meeting_id}/start [post]
func (e *MeetingController) startMeetingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		meeting, err := e.meetingService.StartMeeting(c.Param("meeting_id"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toMeetingResponse(meeting))
	}
}

// @id FinishMeeting
// @Description Marks a meeting as completed
// @Tags meeting
// @Produce json
// @Param meeting_id path string true "Meeting Id"
// @Success 200 {object} Meeting
// @Router /meetings/{meeting_id}/finish [post]
func (e *MeetingController) finishMeetingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		meeting, err := e.meetingService.FinishMeeting(c.Param("meeting_id"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toMeetingResponse(meeting))
	}
}

// @id GetIcebreakers
// @Description Fetches conversation starters for a meeting
// @Tags meeting
// @Produce json
// @Param meeting_id path string true "Meeting Id"
// @Success 200 {array} string
// @Router /meetings/{meeting_id}/icebreakers [get]
func (e *MeetingController) getIcebreakersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		questions, err := e.meetingService.GetIcebreakers(c.Request.Context(), c.Param("meeting_id"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, questions)
	}
}

// @id ResetSession
// @Description Wipes meetings and ratings. With wipe_roster=true the roster goes too.
// @Tags meeting
// @Param wipe_roster query bool false "Also delete all participants"
// @Success 204
// @Security BearerAuth
// @Router /admin/reset [post]
func (e *MeetingController) resetSessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		wipeRoster := c.Query("wipe_roster") == "true"
		if err := e.matchingService.ResetSession(wipeRoster); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

type Meeting struct {
	Id              string                   `json:"id" binding:"required"`
	Participant1Id  int                      `json:"participant1_id" binding:"required"`
	Participant2Id  int                      `json:"participant2_id" binding:"required"`
	Round           int                      `json:"round" binding:"required"`
	TableNumber     int                      `json:"table_number" binding:"required"`
	ScheduledTime   string                   `json:"scheduled_time" binding:"required"`
	Category        string                   `json:"category" binding:"required"`
	Status          repository.MeetingStatus `json:"status" binding:"required"`
	ActualStartTime *time.Time               `json:"actual_start_time"`
	Ratings         []*MeetingRating         `json:"ratings" binding:"required"`
}

type MeetingRating struct {
	FromId  int     `json:"from_id" binding:"required"`
	ToId    int     `json:"to_id" binding:"required"`
	Score   int     `json:"score" binding:"required"`
	Comment *string `json:"comment"`
}

func toMeetingResponse(meeting *repository.Meeting) *Meeting {
	if meeting == nil {
		return nil
	}
	return &Meeting{
		Id:              meeting.Id,
		Participant1Id:  meeting.Participant1Id,
		Participant2Id:  meeting.Participant2Id,
		Round:           meeting.Round,
		TableNumber:     meeting.TableNumber,
		ScheduledTime:   meeting.ScheduledTime,
		Category:        string(meeting.Category),
		Status:          meeting.Status,
		ActualStartTime: meeting.ActualStartTime,
		Ratings:         utils.Map(meeting.Ratings, toMeetingRatingResponse),
	}
}

func toMeetingRatingResponse(rating *repository.Rating) *MeetingRating {
	if rating == nil {
		return nil
	}
	return &MeetingRating{
		FromId:  rating.FromId,
		ToId:    rating.ToId,
		Score:   rating.Score,
		Comment: rating.Comment,
	}
}
