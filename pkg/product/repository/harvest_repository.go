package repository

import "github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"

type HarvestRepository interface {
	Create(h *entities.Harvest) error
	FindAll() ([]entities.Harvest, error)
	FindByID(id string) (*entities.Harvest, error)

	// DecrementQuantity subtracts qty from the listing in one conditional
	// update. It reports whether a row matched; no row matches when the
	// available quantity is smaller than qty, and nothing is written.
	DecrementQuantity(id string, qty float64) (bool, error)
}
