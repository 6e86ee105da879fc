package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CropSuggestion is one structured entry extracted from the AI response.
// Stored as part of a SuggestionBatch, never as its own row.
type CropSuggestion struct {
	CropName          string `json:"cropName"`
	Reason            string `json:"reason"`
	BestPlantingMonth string `json:"bestPlantingMonth"`
	EstimatedYield    string `json:"estimatedYield"`
	CareInstructions  string `json:"careInstructions"`
}

// SuggestionBatch is the ordered result of one AI call for one field.
// Batches are immutable; a newer batch supersedes, never updates.
type SuggestionBatch struct {
	ID          string           `gorm:"primaryKey" json:"id"`
	FieldID     string           `gorm:"index" json:"fieldId"`
	Suggestions []CropSuggestion `gorm:"serializer:json" json:"suggestions"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

func (b *SuggestionBatch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
