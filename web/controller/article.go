// Package controller provides the HTTP handlers of the echo-journal API.
// Each handler extracts its parameters, issues one service call, and returns
// the raw result.
package controller

import (
	"net/http"

	"echo-journal/database/model"
	"echo-journal/web/entity"
	"echo-journal/web/service"

	"github.com/gin-gonic/gin"
)

// ArticleController handles article reads, submissions, the editorial
// actions, and deletion.
type ArticleController struct {
	articleService service.ArticleService
}

func NewArticleController(g *gin.RouterGroup) *ArticleController {
	a := &ArticleController{}
	a.initRouter(g)
	return a
}

func (a *ArticleController) initRouter(g *gin.RouterGroup) {
	g.GET("/articles", a.getAll)
	g.GET("/articles-trend", a.getTrending)
	g.GET("/approved-articles", a.getApproved)
	g.GET("/premium-articles", a.getPremium)
	g.GET("/article/:id", a.getByID)
	g.GET("/my-articles", a.getByAuthor)

	g.POST("/add-article", a.add)

	g.PATCH("/update-view-count/:id", a.incrementView)
	g.PATCH("/approve/:id", a.approve)
	g.PATCH("/decline/:id", a.decline)
	g.PATCH("/make-premium/:id", a.makePremium)
	g.PATCH("/update-article/:id", a.update)
	g.PATCH("/delete/:id", a.delete)

	g.DELETE("/delete-article/:id", a.delete)
}

func (a *ArticleController) getAll(c *gin.Context) {
	articles, err := a.articleService.GetAll()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "get articles failed", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (a *ArticleController) getTrending(c *gin.Context) {
	articles, err := a.articleService.GetTrending()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "get trending articles failed", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (a *ArticleController) getApproved(c *gin.Context) {
	articles, err := a.articleService.GetApproved(c.Query("search"))
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "get approved articles failed", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (a *ArticleController) getPremium(c *gin.Context) {
	articles, err := a.articleService.GetPremium()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "get premium articles failed", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// getByID answers 200 with a null body when the article does not exist;
// callers of this surface handle absence themselves.
func (a *ArticleController) getByID(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	article, err := a.articleService.GetByID(id)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "get article failed", err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (a *ArticleController) getByAuthor(c *gin.Context) {
	articles, err := a.articleService.GetByAuthor(c.Query("email"))
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "get my articles failed", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (a *ArticleController) add(c *gin.Context) {
	article := &model.Article{}
	if err := c.ShouldBindJSON(article); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid article", err)
		return
	}
	id, err := a.articleService.Add(article)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "add article failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.InsertResult{InsertedId: id})
}

func (a *ArticleController) incrementView(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	matched, err := a.articleService.IncrementView(id)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "update view count failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.UpdateResult{MatchedCount: matched, ModifiedCount: matched})
}

func (a *ArticleController) approve(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	matched, err := a.articleService.Approve(id)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "approve article failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.UpdateResult{MatchedCount: matched, ModifiedCount: matched})
}

func (a *ArticleController) decline(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	req := &entity.DeclineRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid decline request", err)
		return
	}
	if req.DeclinedText == "" {
		jsonError(c, http.StatusBadRequest, "declined_text is required", nil)
		return
	}
	matched, err := a.articleService.Decline(id, req.DeclinedText)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "decline article failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.UpdateResult{MatchedCount: matched, ModifiedCount: matched})
}

func (a *ArticleController) makePremium(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	matched, err := a.articleService.MakePremium(id)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "make article premium failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.UpdateResult{MatchedCount: matched, ModifiedCount: matched})
}

func (a *ArticleController) update(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	upd := &entity.ArticleUpdate{}
	if err := c.ShouldBindJSON(upd); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid article update", err)
		return
	}
	matched, err := a.articleService.Update(id, upd.Fields())
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "update article failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.UpdateResult{MatchedCount: matched, ModifiedCount: matched})
}

func (a *ArticleController) delete(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	deleted, err := a.articleService.Delete(id)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "delete article failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.DeleteResult{DeletedCount: deleted})
}
