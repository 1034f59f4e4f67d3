// Package payment implements the checkout provider port against Stripe
// hosted Checkout Sessions.
package payment

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"github.com/nailyse/salon-api/internal/core/ports"
)

// StripeProvider creates hosted Checkout Sessions. Prices arrive in euros
// and are converted to Stripe's minor-unit (cent) representation.
type StripeProvider struct {
	successURL string
	cancelURL  string
}

// NewStripeProvider configures the Stripe SDK with the secret key and the
// post-payment redirect targets derived from the frontend base URL.
func NewStripeProvider(secretKey, frontendURL string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{
		// {CHECKOUT_SESSION_ID} is substituted by Stripe on redirect.
		successURL: frontendURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  frontendURL + "/payment/cancel",
	}
}

func (p *StripeProvider) CreateSession(ctx context.Context, items []ports.OrderItem) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyEUR)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
			},
			Quantity: stripe.Int64(int64(qty)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(p.successURL),
		CancelURL:          stripe.String(p.cancelURL),
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}
