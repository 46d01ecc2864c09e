// File: services/payment/gateway.go
package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeGateway creates orders as Stripe PaymentIntents. The API key is set
// globally at startup.
type StripeGateway struct{}

func (StripeGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	params.AddMetadata("receipt", receipt)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ID, nil
}
