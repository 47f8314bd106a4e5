package controller

import (
	"errors"
	"net/http"

	"echo-journal/web/entity"
	"echo-journal/web/payment"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	gateway *payment.Gateway
}

func NewPaymentController(g *gin.RouterGroup, gateway *payment.Gateway) *PaymentController {
	a := &PaymentController{gateway: gateway}
	a.initRouter(g)
	return a
}

func (a *PaymentController) initRouter(g *gin.RouterGroup) {
	g.POST("/create-payment-intent", a.createPaymentIntent)
}

func (a *PaymentController) createPaymentIntent(c *gin.Context) {
	req := &entity.PaymentIntentRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid payment request", err)
		return
	}
	clientSecret, err := a.gateway.CreatePaymentIntent(req.Price)
	if err != nil {
		if errors.Is(err, payment.ErrAmountTooSmall) {
			jsonError(c, http.StatusBadRequest, "price must amount to at least 1 cent", nil)
			return
		}
		jsonError(c, http.StatusInternalServerError, "create payment intent failed", err)
		return
	}
	c.JSON(http.StatusOK, entity.PaymentIntentResponse{ClientSecret: clientSecret})
}
