package payment

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/apperrors"
)

type stripeClient struct {
	api *client.API
}

// NewStripe builds the processor client used in production.
func NewStripe(secretKey string) Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeClient{api: api}
}

// CreateIntent provisions a customer, an ephemeral key for the mobile SDK,
// and the payment intent itself, each under a derivative of the request's
// idempotency key.
func (s *stripeClient) CreateIntent(ctx context.Context, req IntentRequest) (Intent, error) {
	customerParams := &stripe.CustomerParams{}
	customerParams.Context = ctx
	customerParams.IdempotencyKey = stripe.String("customer_" + req.IdempotencyKey)
	customerParams.AddMetadata("userId", req.UserID)

	customer, err := s.api.Customers.New(customerParams)
	if err != nil {
		return Intent{}, apperrors.Upstream("Failed to create payment intent", err)
	}

	ephemeralParams := &stripe.EphemeralKeyParams{
		Customer:      stripe.String(customer.ID),
		StripeVersion: stripe.String(stripe.APIVersion),
	}
	ephemeralParams.Context = ctx
	ephemeralParams.IdempotencyKey = stripe.String("ephemeral_" + req.IdempotencyKey)

	ephemeral, err := s.api.EphemeralKeys.New(ephemeralParams)
	if err != nil {
		return Intent{}, apperrors.Upstream("Failed to create payment intent", err)
	}

	intentParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Customer: stripe.String(customer.ID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	intentParams.Context = ctx
	intentParams.IdempotencyKey = stripe.String(req.IdempotencyKey)
	intentParams.AddMetadata("productId", req.ProductID)
	intentParams.AddMetadata("userId", req.UserID)

	intent, err := s.api.PaymentIntents.New(intentParams)
	if err != nil {
		return Intent{}, apperrors.Upstream("Failed to create payment intent", err)
	}

	return Intent{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		EphemeralKey:    ephemeral.Secret,
		CustomerID:      customer.ID,
	}, nil
}
