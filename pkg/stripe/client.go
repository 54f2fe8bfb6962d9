package stripe

import (
	"context"

	stripesdk "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type Client struct {
	api *client.API
}

func NewClient(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

// CreateIntent opens a card payment intent for the given amount in cents.
func (c *Client) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripesdk.PaymentIntentParams{
		Amount:             stripesdk.Int64(amountCents),
		Currency:           stripesdk.String(string(stripesdk.CurrencyUSD)),
		PaymentMethodTypes: stripesdk.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
