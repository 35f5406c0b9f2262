package payment

import (
	"context"

	"food-ordering/order-svc/internal/domain"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

const giropay = "giropay"

type StripeClient struct {
	intents *paymentintent.Client
}

// NewStripeClient talks to baseURL when set, otherwise to the live Stripe API.
// Network retries are disabled.
func NewStripeClient(secretKey, baseURL string) *StripeClient {
	cfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if baseURL != "" {
		cfg.URL = stripe.String(baseURL)
	}
	return &StripeClient{
		intents: &paymentintent.Client{B: stripe.GetBackendWithConfig(stripe.APIBackend, cfg), Key: secretKey},
	}
}

// CreatePaymentIntent expects amount in minor units (cents).
func (c *StripeClient) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{giropay}),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := c.intents.New(params)
	if err != nil {
		return domain.PaymentIntent{}, err
	}
	return domain.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}

func (c *StripeClient) PaymentIntentStatus(ctx context.Context, id string) (string, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := c.intents.Get(id, params)
	if err != nil {
		return "", err
	}
	return string(pi.Status), nil
}
