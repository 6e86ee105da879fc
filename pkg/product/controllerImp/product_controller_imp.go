package controllerImp

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"
	authRepo "github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/auth/repository"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/middleware"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/product/controller"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/product/repository"
)

var validate = validator.New()

type ProductCtrl struct {
	repo    repository.HarvestRepository
	farmers authRepo.FarmerRepository
}

func New(repo repository.HarvestRepository, farmers authRepo.FarmerRepository) controller.ProductController {
	return &ProductCtrl{repo: repo, farmers: farmers}
}

type createReq struct {
	FieldName   string  `json:"fieldName" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
	Location    string  `json:"location" validate:"required"`
}

func (h *ProductCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Required fields are missing"})
	}

	farmerID, _ := c.Get(middleware.CtxUserID).(string)
	farmerName := "Anonymous Farmer"
	if farmerID != "" {
		if f, err := h.farmers.FindByID(farmerID); err == nil {
			farmerName = f.Name
		}
	}

	harvest := &entities.Harvest{
		FieldName:   req.FieldName,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Description: req.Description,
		Location:    req.Location,
		FarmerID:    farmerID,
		FarmerName:  farmerName,
	}
	if err := h.repo.Create(harvest); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Harvest listed successfully", "id": harvest.ID})
}

func (h *ProductCtrl) List(c echo.Context) error {
	harvests, err := h.repo.FindAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}
	return c.JSON(http.StatusOK, harvests)
}

type buyReq struct {
	Quantity float64 `json:"quantity"`
}

func (h *ProductCtrl) Buy(c echo.Context) error {
	id := c.Param("id")
	var req buyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Quantity must be greater than 0"})
	}

	if _, err := h.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Harvest not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}

	// One conditional update; an oversized purchase matches no row and
	// leaves the stored quantity untouched.
	ok, err := h.repo.DecrementQuantity(id, req.Quantity)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Insufficient quantity available"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Purchase successful"})
}
