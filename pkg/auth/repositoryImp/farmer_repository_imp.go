package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/auth/repository"
)

type farmerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmerRepository { return &farmerRepo{db} }

func (r *farmerRepo) Create(f *entities.Farmer) error { return r.db.Create(f).Error }

func (r *farmerRepo) FindByEmail(email string) (*entities.Farmer, error) {
	var f entities.Farmer
	if err := r.db.Where("email = ?", email).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmerRepo) FindByID(id string) (*entities.Farmer, error) {
	var f entities.Farmer
	if err := r.db.Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}
