package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(f *entities.Field) error { return r.db.Create(f).Error }

func (r *fieldRepo) FindAll() ([]entities.Field, error) {
	var out []entities.Field
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fieldRepo) FindByID(id string) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) FindByName(name string) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.Where("field_name = ?", name).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) Update(id string, changes map[string]any) (int64, error) {
	res := r.db.Model(&entities.Field{}).Where("id = ?", id).Updates(changes)
	return res.RowsAffected, res.Error
}

func (r *fieldRepo) Delete(id string) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&entities.Field{})
	return res.RowsAffected, res.Error
}
