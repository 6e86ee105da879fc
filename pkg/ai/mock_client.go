package ai

import "context"

type mockClient struct{}

// NewMock answers a canned, well-formed response so the suggestion flow
// works without a configured API key.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return `1. Rice
Reason: Tolerates the wet season and suits clay-heavy lowland soil.
Best Planting Month: May
Estimated Yield: 4 tons per hectare
Care Instructions: Keep paddies flooded for the first six weeks and weed by hand.

2. Maize
Reason: Short growing cycle fits between monsoon seasons.
Best Planting Month: September
Estimated Yield: 3 tons per hectare
Care Instructions: Apply nitrogen fertilizer twice and watch for stem borers.`, nil
}
