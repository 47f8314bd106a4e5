package controller

import (
	"net/http"

	"echo-journal/web/service"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	statsService  service.StatsService
	serverService service.ServerService
}

func NewStatsController(g *gin.RouterGroup) *StatsController {
	a := &StatsController{}
	a.initRouter(g)
	return a
}

func (a *StatsController) initRouter(g *gin.RouterGroup) {
	g.GET("/statistics", a.global)
	g.GET("/publisher-statistics", a.perPublisher)
	g.GET("/server-status", a.serverStatus)
}

func (a *StatsController) global(c *gin.Context) {
	stats, err := a.statsService.Global()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "get statistics failed", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *StatsController) perPublisher(c *gin.Context) {
	stats, err := a.statsService.PerPublisher()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "get publisher statistics failed", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *StatsController) serverStatus(c *gin.Context) {
	c.JSON(http.StatusOK, a.serverService.Status())
}
