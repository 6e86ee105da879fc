package payment

import "context"

// IntentRequest carries everything needed to open a payment flow for one
// product purchase. Amount is in integer minor currency units.
type IntentRequest struct {
	Amount         int64
	ProductID      string
	UserID         string
	IdempotencyKey string
}

// Intent is the client-facing handle for a created payment flow.
type Intent struct {
	ClientSecret    string
	PaymentIntentID string
	EphemeralKey    string
	CustomerID      string
}

type Client interface {
	CreateIntent(ctx context.Context, req IntentRequest) (Intent, error)
}
