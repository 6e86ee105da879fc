package repository

import "github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"

type SuggestionRepository interface {
	SaveBatch(b *entities.SuggestionBatch) error
	LatestByField(fieldID string) (*entities.SuggestionBatch, error)
}
