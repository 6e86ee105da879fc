package controllerImp

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/field/controller"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/field/repository"
)

var validate = validator.New()

type FieldCtrl struct{ repo repository.FieldRepository }

func New(repo repository.FieldRepository) controller.FieldController {
	return &FieldCtrl{repo}
}

type createReq struct {
	FieldName     string `json:"fieldname" validate:"required"`
	FieldLocation string `json:"fieldlocation" validate:"required"`
	FieldSize     string `json:"fieldsize" validate:"required"`
	FieldType     string `json:"fieldtype" validate:"required"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "All fields are required"})
	}

	if _, err := h.repo.FindByName(req.FieldName); err == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Field already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}

	f := &entities.Field{
		FieldName:     req.FieldName,
		FieldLocation: req.FieldLocation,
		FieldSize:     req.FieldSize,
		FieldType:     req.FieldType,
	}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Field created successfully", "id": f.ID})
}

func (h *FieldCtrl) List(c echo.Context) error {
	fields, err := h.repo.FindAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}
	return c.JSON(http.StatusOK, fields)
}

type updateReq struct {
	FieldName     *string `json:"fieldname"`
	FieldLocation *string `json:"fieldlocation"`
	FieldSize     *string `json:"fieldsize"`
	FieldType     *string `json:"fieldtype"`
}

func (h *FieldCtrl) Update(c echo.Context) error {
	id := c.Param("id")
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	changes := map[string]any{}
	if req.FieldName != nil {
		changes["field_name"] = *req.FieldName
	}
	if req.FieldLocation != nil {
		changes["field_location"] = *req.FieldLocation
	}
	if req.FieldSize != nil {
		changes["field_size"] = *req.FieldSize
	}
	if req.FieldType != nil {
		changes["field_type"] = *req.FieldType
	}
	if len(changes) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No fields to update"})
	}

	n, err := h.repo.Update(id, changes)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}
	if n == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Field not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Field updated successfully"})
}

func (h *FieldCtrl) Delete(c echo.Context) error {
	id := c.Param("id")
	n, err := h.repo.Delete(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}
	if n == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Field not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Field deleted successfully"})
}
