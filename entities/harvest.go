package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Harvest struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	FieldName   string  `json:"fieldName"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	FarmerID    string  `gorm:"index" json:"farmerId"`
	FarmerName  string  `json:"farmerName"`

	CreatedAt time.Time `json:"createdAt"`
}

func (h *Harvest) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
