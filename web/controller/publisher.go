package controller

import (
	"net/http"

	"echo-journal/database/model"
	"echo-journal/web/entity"
	"echo-journal/web/service"

	"github.com/gin-gonic/gin"
)

type PublisherController struct {
	publisherService service.PublisherService
}

func NewPublisherController(g *gin.RouterGroup) *PublisherController {
	a := &PublisherController{}
	a.initRouter(g)
	return a
}

func (a *PublisherController) initRouter(g *gin.RouterGroup) {
	g.GET("/publishers", a.getAll)
	g.POST("/add-publisher", a.add)
}

func (a *PublisherController) getAll(c *gin.Context) {
	publishers, err := a.publisherService.GetAll()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "get publishers failed", err)
		return
	}
	c.JSON(http.StatusOK, publishers)
}

func (a *PublisherController) add(c *gin.Context) {
	publisher := &model.Publisher{}
	if err := c.ShouldBindJSON(publisher); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid publisher", err)
		return
	}
	id, err := a.publisherService.Add(publisher)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "add publisher failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.InsertResult{InsertedId: id})
}
