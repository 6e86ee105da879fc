package payment

import "context"

type mockClient struct{}

// NewMock stands in for the processor when no secret key is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) CreateIntent(ctx context.Context, req IntentRequest) (Intent, error) {
	return Intent{
		ClientSecret:    "pi_mock_secret_" + req.IdempotencyKey,
		PaymentIntentID: "pi_mock_" + req.ProductID,
		EphemeralKey:    "ek_mock",
		CustomerID:      "cus_mock_" + req.UserID,
	}, nil
}
