package controller

import (
	"net/http"

	"echo-journal/database"
	"echo-journal/database/model"
	"echo-journal/web/entity"
	"echo-journal/web/service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g.GET("/users", a.getAll)
	g.GET("/user/:email", a.getByEmail)

	g.POST("/social-users", a.socialUpsert)
	g.POST("/register-users", a.register)

	g.PATCH("/users/:id", a.grantAdmin)
	g.PATCH("/premium/:email", a.grantPremium)
}

func (a *UserController) getAll(c *gin.Context) {
	users, err := a.userService.GetAll()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "get users failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// getByEmail answers 200 with a null body when the user does not exist.
func (a *UserController) getByEmail(c *gin.Context) {
	user, err := a.userService.GetByEmail(c.Param("email"))
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "get user failed", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (a *UserController) socialUpsert(c *gin.Context) {
	user := &model.User{}
	if err := c.ShouldBindJSON(user); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid user", err)
		return
	}
	result, err := a.userService.SocialUpsert(user)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "social login failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (a *UserController) register(c *gin.Context) {
	user := &model.User{}
	if err := c.ShouldBindJSON(user); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid user", err)
		return
	}
	id, err := a.userService.Register(user)
	if err != nil {
		if database.IsDuplicateKey(err) {
			jsonError(c, http.StatusConflict, "user already registered", nil)
			return
		}
		jsonError(c, http.StatusInternalServerError, "register user failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.InsertResult{InsertedId: id})
}

func (a *UserController) grantAdmin(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	matched, err := a.userService.GrantAdmin(id)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "grant admin failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.UpdateResult{MatchedCount: matched, ModifiedCount: matched})
}

func (a *UserController) grantPremium(c *gin.Context) {
	req := &entity.GrantPremiumRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid premium request", err)
		return
	}
	matched, err := a.userService.GrantPremium(c.Param("email"), req.PremiumExpireDate)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "grant premium failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.UpdateResult{MatchedCount: matched, ModifiedCount: matched})
}
