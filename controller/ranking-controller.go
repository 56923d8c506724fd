package controller

import (
	"time"

	"p2p/app_error"
	"p2p/auth"
	"p2p/matching"
	"p2p/service"
	"p2p/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RankingController struct {
	rankingService *service.RankingService
}

func NewRankingController(db *gorm.DB, syncService *service.SyncService) *RankingController {
	return &RankingController{
		rankingService: service.NewRankingService(db, syncService),
	}
}

func setupRankingController(db *gorm.DB, syncService *service.SyncService, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewRankingController(db, syncService)
	basePath := "/rankings"
	routes := []RouteInfo{
		{Method: "GET", Path: "/duos", HandlerFunc: cache.CachePage(cacheStore, 10*time.Second, e.getDuoRankingHandler())},
		{Method: "POST", Path: "/duos/confirm", HandlerFunc: e.confirmDuoHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetDuoRanking
// @Description Fetches pairs ranked by reciprocal rating synergy
// @Tags ranking
// @Produce json
// @Success 200 {array} Duo
// @Router /rankings/duos [get]
func (e *RankingController) getDuoRankingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		duos, err := e.rankingService.GetDuoRanking()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(duos, toDuoResponse))
	}
}

type ConfirmDuoBody struct {
	Participant1Id int `json:"participant1_id" binding:"required"`
	Participant2Id int `json:"participant2_id" binding:"required"`
}

// @id ConfirmDuo
// @Description Marks two participants as confirmed partners
// @Tags ranking
// @Accept json
// @Param duo body ConfirmDuoBody true "Duo"
// @Success 204
// @Security BearerAuth
// @Router /rankings/duos/confirm [post]
func (e *RankingController) confirmDuoHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body ConfirmDuoBody
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.rankingService.ConfirmDuo(body.Participant1Id, body.Participant2Id); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

type Duo struct {
	Participant1 *Participant `json:"participant1" binding:"required"`
	Participant2 *Participant `json:"participant2" binding:"required"`
	Synergy      int          `json:"synergy" binding:"required"`
	Meeting      *Meeting     `json:"meeting" binding:"required"`
	Confirmed    bool         `json:"confirmed" binding:"required"`
}

func toDuoResponse(duo *matching.Duo) *Duo {
	return &Duo{
		Participant1: toParticipantResponse(duo.Participant1),
		Participant2: toParticipantResponse(duo.Participant2),
		Synergy:      duo.Synergy,
		Meeting:      toMeetingResponse(duo.Meeting),
		Confirmed:    duo.Confirmed,
	}
}
