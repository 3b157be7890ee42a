package payments

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// IntentCreator creates a card payment intent with the payment processor
// and returns its client secret.
type IntentCreator interface {
	CreateIntent(amount int64, currency string) (string, error)
}

// MinorUnits converts a price in major currency units to minor units.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// StripeClient talks to Stripe's PaymentIntents API.
type StripeClient struct{}

// NewStripeClient sets the account secret key used by all subsequent calls.
func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

func (s *StripeClient) CreateIntent(amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
