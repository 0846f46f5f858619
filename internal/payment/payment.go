package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Client talks to the payment authority. It only creates intents: the actual
// charge is confirmed client-side and reported back through the payments
// endpoint, which this service does not independently verify.
type Client struct {
	api      *client.API
	currency string
}

func New(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api, currency: "usd"}
}

// CreateIntent registers an authorized-but-unsettled amount (minor units)
// and returns the client-usable secret. No local records are written.
func (c *Client) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.SetIdempotencyKey(uuid.NewString())

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

// MinorUnits converts a decimal price to integer minor units, truncating
// toward zero.
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}
