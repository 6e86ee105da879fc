package repository

import "github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"

type FieldRepository interface {
	Create(f *entities.Field) error
	FindAll() ([]entities.Field, error)
	FindByID(id string) (*entities.Field, error)
	FindByName(name string) (*entities.Field, error)
	Update(id string, changes map[string]any) (int64, error)
	Delete(id string) (int64, error)
}
