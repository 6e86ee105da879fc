package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/suggestion/repository"
)

type suggestionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SuggestionRepository { return &suggestionRepo{db} }

func (r *suggestionRepo) SaveBatch(b *entities.SuggestionBatch) error {
	return r.db.Create(b).Error
}

func (r *suggestionRepo) LatestByField(fieldID string) (*entities.SuggestionBatch, error) {
	var b entities.SuggestionBatch
	if err := r.db.Where("field_id = ?", fieldID).Order("generated_at DESC").First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}
