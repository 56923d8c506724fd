package controller

import (
	"p2p/auth"
	"p2p/config"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

func setupAuthController() []RouteInfo {
	e := NewAuthController()
	basePath := "/auth"
	routes := []RouteInfo{
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type LoginBody struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token" binding:"required"`
}

// @id Login
// @Description Exchanges the organizer passphrase for an admin token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body LoginBody true "Login"
// @Success 200 {object} LoginResponse
// @Router /auth/login [post]
func (e *AuthController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body LoginBody
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		passphrase := config.Env().AdminPassphrase
		if passphrase == "" || body.Passphrase != passphrase {
			c.JSON(401, gin.H{"error": "Invalid passphrase"})
			return
		}
		token, err := auth.CreateAdminToken()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.SetCookie("auth", token, 60*60*24, "/", "", false, true)
		c.JSON(200, LoginResponse{Token: token})
	}
}
