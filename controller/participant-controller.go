package controller

import (
	"strconv"

	"p2p/app_error"
	"p2p/auth"
	"p2p/repository"
	"p2p/service"
	"p2p/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ParticipantController struct {
	participantService *service.ParticipantService
	meetingService     *service.MeetingService
}

func NewParticipantController(db *gorm.DB, syncService *service.SyncService) *ParticipantController {
	return &ParticipantController{
		participantService: service.NewParticipantService(db, syncService),
		meetingService:     service.NewMeetingService(db, syncService),
	}
}

func setupParticipantController(db *gorm.DB, syncService *service.SyncService) []RouteInfo {
	e := NewParticipantController(db, syncService)
	basePath := "/participants"
	routes := []RouteInfo{
		{Method: "POST", Path: "", HandlerFunc: e.registerHandler()},
		{Method: "GET", Path: "", HandlerFunc: e.getAllParticipantsHandler()},
		{Method: "GET", Path: "/:participant_id", HandlerFunc: e.getParticipantByIdHandler()},
		{Method: "PATCH", Path: "/:participant_id", HandlerFunc: e.updateParticipantHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
		{Method: "DELETE", Path: "/:participant_id", HandlerFunc: e.deleteParticipantHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
		{Method: "GET", Path: "/:participant_id/meetings", HandlerFunc: e.getMeetingsForParticipantHandler()},
		{Method: "POST", Path: "/import", HandlerFunc: e.importRosterHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type RegistrationBody struct {
	Name       string   `json:"name" binding:"required"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	Categories []string `json:"categories" binding:"required"`
	Bio        string   `json:"bio"`
	Avatar     string   `json:"avatar"`
}

// @id RegisterParticipant
// @Description Registers a participant. Re-registering under an existing name answers 200 with the existing record.
// @Tags participant
// @Accept json
// @Produce json
// @Param participant body RegistrationBody true "Participant"
// @Success 201 {object} Participant
// @Success 200 {object} Participant
// @Router /participants [post]
func (e *ParticipantController) registerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body RegistrationBody
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		participant, created, err := e.participantService.Register(&repository.Participant{
			Name:       body.Name,
			FirstName:  body.FirstName,
			LastName:   body.LastName,
			Company:    body.Company,
			Role:       body.Role,
			Categories: body.Categories,
			Bio:        body.Bio,
			Avatar:     body.Avatar,
		})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		if !created {
			c.JSON(200, toParticipantResponse(participant))
			return
		}
		c.JSON(201, toParticipantResponse(participant))
	}
}

// @id GetAllParticipants
// @Description Fetches the full roster in registration order
// @Tags participant
// @Produce json
// @Success 200 {array} Participant
// @Router /participants [get]
func (e *ParticipantController) getAllParticipantsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participants, err := e.participantService.GetAllParticipants()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(participants, toParticipantResponse))
	}
}

// @id GetParticipantById
// @Description Fetches a participant by id
// @Tags participant
// @Produce json
// @Param participant_id path int true "Participant Id"
// @Success 200 {object} Participant
// @Router /participants/{participant_id} [get]
func (e *ParticipantController) getParticipantByIdHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participantId, err := strconv.Atoi(c.Param("participant_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		participant, err := e.participantService.GetParticipantById(participantId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toParticipantResponse(participant))
	}
}

// @id UpdateParticipant
// @Description Updates parts of a participant record
// @Tags participant
// @Accept json
// @Produce json
// @Param participant_id path int true "Participant Id"
// @Param participant body service.ParticipantUpdate true "Participant"
// @Success 200 {object} Participant
// @Security BearerAuth
// @Router /participants/{participant_id} [patch]
func (e *ParticipantController) updateParticipantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participantId, err := strconv.Atoi(c.Param("participant_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var update service.ParticipantUpdate
		if err := c.BindJSON(&update); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		participant, err := e.participantService.UpdateParticipant(participantId, &update)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toParticipantResponse(participant))
	}
}

// @id DeleteParticipant
// @Description Removes a participant. Their meetings stay in place and are skipped by rankings.
// @Tags participant
// @Param participant_id path int true "Participant Id"
// @Success 204
// @Security BearerAuth
// @Router /participants/{participant_id} [delete]
func (e *ParticipantController) deleteParticipantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participantId, err := strconv.Atoi(c.Param("participant_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.participantService.DeleteParticipant(participantId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

// @id GetMeetingsForParticipant
// @Description Fetches the personal agenda of one participant
// @Tags participant
// @Produce json
// @Param participant_id path int true "Participant Id"
// @Success 200 {array} Meeting
// @Router /participants/{participant_id}/meetings [get]
func (e *ParticipantController) getMeetingsForParticipantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participantId, err := strconv.Atoi(c.Param("participant_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		meetings, err := e.meetingService.GetMeetingsForParticipant(participantId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(meetings, toMeetingResponse))
	}
}

type ImportResult struct {
	Imported int `json:"imported" binding:"required"`
	Skipped  int `json:"skipped" binding:"required"`
}

// @id ImportRoster
// @Description Imports participants from an uploaded CSV file
// @Tags participant
// @Accept mpfd
// @Produce json
// @Param file formData file true "Roster CSV"
// @Success 200 {object} ImportResult
// @Security BearerAuth
// @Router /participants/import [post]
func (e *ParticipantController) importRosterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(400, gin.H{"error": "No file provided"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()
		imported, skipped, err := e.participantService.ImportRoster(file)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, ImportResult{Imported: imported, Skipped: skipped})
	}
}

type Participant struct {
	Id         int      `json:"id" binding:"required"`
	Name       string   `json:"name" binding:"required"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	Categories []string `json:"categories" binding:"required"`
	Bio        string   `json:"bio"`
	Avatar     string   `json:"avatar"`
	AvgScore   float64  `json:"avg_score"`
	PartnerId  *int     `json:"partner_id"`
}

func toParticipantResponse(participant *repository.Participant) *Participant {
	if participant == nil {
		return nil
	}
	return &Participant{
		Id:         participant.Id,
		Name:       participant.Name,
		FirstName:  participant.FirstName,
		LastName:   participant.LastName,
		Company:    participant.Company,
		Role:       participant.Role,
		Categories: participant.Categories,
		Bio:        participant.Bio,
		Avatar:     participant.Avatar,
		AvgScore:   participant.AvgScore,
		PartnerId:  participant.PartnerId,
	}
}
