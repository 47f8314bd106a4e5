package controller

import (
	"net/http"

	"echo-journal/web/entity"
	"echo-journal/web/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	tokenService service.TokenService
}

func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/jwt", a.issueToken)
}

// issueToken signs whatever claims the caller supplies. The payload is not
// checked against any user record.
func (a *AuthController) issueToken(c *gin.Context) {
	claims := map[string]any{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid claims payload", err)
		return
	}
	token, err := a.tokenService.Sign(claims)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "sign token failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.TokenResponse{Token: token})
}
