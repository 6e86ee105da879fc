package repository

import "github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"

type FarmerRepository interface {
	Create(f *entities.Farmer) error
	FindByEmail(email string) (*entities.Farmer, error)
	FindByID(id string) (*entities.Farmer, error)
}
