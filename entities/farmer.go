package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Farmer struct {
	ID                  string    `gorm:"primaryKey" json:"id"`
	Email               string    `gorm:"uniqueIndex" json:"email"`
	Password            string    `json:"-"`
	Name                string    `json:"name"`
	Phone               string    `json:"phone"`
	Location            string    `json:"location"`
	InsurancePreference string    `json:"insurancePreference"`
	ExperienceLevel     string    `json:"experienceLevel"`
	CreatedAt           time.Time `json:"createdAt"`
}

func (f *Farmer) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
