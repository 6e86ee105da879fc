package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/product/repository"
)

type harvestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HarvestRepository { return &harvestRepo{db} }

func (r *harvestRepo) Create(h *entities.Harvest) error { return r.db.Create(h).Error }

func (r *harvestRepo) FindAll() ([]entities.Harvest, error) {
	var out []entities.Harvest
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *harvestRepo) FindByID(id string) (*entities.Harvest, error) {
	var h entities.Harvest
	if err := r.db.Where("id = ?", id).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *harvestRepo) DecrementQuantity(id string, qty float64) (bool, error) {
	res := r.db.Model(&entities.Harvest{}).
		Where("id = ? AND quantity >= ?", id, qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
