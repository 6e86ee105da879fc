package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/ai"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/apperrors"
	fieldRepo "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/field/repository"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/suggestion/repository"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/suggestion/service"
)

type suggestionSvc struct {
	llm    ai.Client
	fields fieldRepo.FieldRepository
	repo   repository.SuggestionRepository
}

func New(llm ai.Client, fields fieldRepo.FieldRepository, repo repository.SuggestionRepository) service.SuggestionService {
	return &suggestionSvc{llm: llm, fields: fields, repo: repo}
}

func (s *suggestionSvc) Generate(ctx context.Context, fieldID string) ([]entities.CropSuggestion, error) {
	field, err := s.fields.FindByID(fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Field not found")
		}
		return nil, err
	}

	text, err := s.llm.GenerateText(ctx, renderPrompt(field))
	if err != nil {
		return nil, err
	}

	suggestions := ai.ParseSuggestions(text)
	if len(suggestions) == 0 {
		return nil, apperrors.Upstream("Failed to parse crop suggestions from AI response", nil)
	}

	batch := &entities.SuggestionBatch{
		FieldID:     fieldID,
		Suggestions: suggestions,
		GeneratedAt: time.Now().UTC(),
	}
	if err := s.repo.SaveBatch(batch); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (s *suggestionSvc) Saved(ctx context.Context, fieldID string) (*entities.SuggestionBatch, error) {
	batch, err := s.repo.LatestByField(fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("No suggestions found for this field")
		}
		return nil, err
	}
	return batch, nil
}

func renderPrompt(f *entities.Field) string {
	return fmt.Sprintf(`As an agricultural expert, provide crop suggestions for a field in Sri Lanka with the following characteristics:

Location: %s
Soil Type: %s
Field Size: %s
Field Name: %s

Please suggest 5 suitable crops that would grow well in these conditions. Format your response exactly as follows for each crop (including the numbering):

1. [Crop Name]
Reason: [Why it's suitable for this field]
Best Planting Month: [Month]
Estimated Yield: [Amount per hectare]
Care Instructions: [Basic care instructions]

2. [Next crop...]`, f.FieldLocation, f.FieldType, f.FieldSize, f.FieldName)
}
