package service

import (
	"context"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"
)

type SuggestionService interface {
	// Generate asks the AI for crop suggestions for the field, persists the
	// parsed batch and returns it.
	Generate(ctx context.Context, fieldID string) ([]entities.CropSuggestion, error)

	// Saved returns the most recent persisted batch for the field.
	Saved(ctx context.Context, fieldID string) (*entities.SuggestionBatch, error)
}
