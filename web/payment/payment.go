// Package payment wraps the Stripe SDK behind the small surface the API needs.
package payment

import (
	"errors"

	"echo-journal/logger"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// ErrAmountTooSmall rejects prices that convert to less than one cent.
var ErrAmountTooSmall = errors.New("amount must be at least 1 cent")

type Gateway struct {
	api *client.API
}

func New(secretKey string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api}
}

// AmountFromPrice converts a dollar price to the smallest currency unit,
// truncating fractional cents.
func AmountFromPrice(price float64) int64 {
	return int64(price * 100)
}

// CreatePaymentIntent authorizes a card charge for the given price and
// returns the client secret the frontend completes the payment with.
func (g *Gateway) CreatePaymentIntent(price float64) (string, error) {
	amount := AmountFromPrice(price)
	if price <= 0 || amount < 1 {
		return "", ErrAmountTooSmall
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.IdempotencyKey = stripe.String(uuid.NewString())

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		logger.Warning("error occurred while creating payment intent:", err)
		return "", err
	}
	return intent.ClientSecret, nil
}
