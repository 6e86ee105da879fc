package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/apperrors"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/suggestion/service"
)

type SuggestionCtrl struct{ svc service.SuggestionService }

func New(svc service.SuggestionService) *SuggestionCtrl { return &SuggestionCtrl{svc} }

func (h *SuggestionCtrl) Generate(c echo.Context) error {
	fieldID := c.Param("fieldId")
	if fieldID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Field ID is required"})
	}

	suggestions, err := h.svc.Generate(c.Request().Context(), fieldID)
	if err != nil {
		return c.JSON(apperrors.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"suggestions": suggestions,
	})
}

func (h *SuggestionCtrl) Saved(c echo.Context) error {
	fieldID := c.Param("fieldId")
	if fieldID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Field ID is required"})
	}

	batch, err := h.svc.Saved(c.Request().Context(), fieldID)
	if err != nil {
		return c.JSON(apperrors.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"suggestions": batch.Suggestions,
		"generatedAt": batch.GeneratedAt,
	})
}
