package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Field struct {
	ID            string `gorm:"primaryKey" json:"id"`
	FieldName     string `gorm:"index" json:"fieldname"`
	FieldLocation string `json:"fieldlocation"`
	FieldSize     string `json:"fieldsize"`
	FieldType     string `json:"fieldtype"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *Field) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
