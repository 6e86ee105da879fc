package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/auth/controller"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/auth/repository"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/middleware"
)

var validate = validator.New()

type AuthCtrl struct {
	repo      repository.FarmerRepository
	jwtSecret string
}

func New(repo repository.FarmerRepository, jwtSecret string) controller.AuthController {
	return &AuthCtrl{repo: repo, jwtSecret: jwtSecret}
}

type registerReq struct {
	Email               string `json:"email" validate:"required,email"`
	Password            string `json:"password" validate:"required"`
	Name                string `json:"name" validate:"required"`
	Phone               string `json:"phone" validate:"required"`
	Location            string `json:"location" validate:"required"`
	InsurancePreference string `json:"insurancePreference" validate:"required"`
	ExperienceLevel     string `json:"experienceLevel" validate:"required"`
}

func (h *AuthCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "All fields are required"})
	}

	if _, err := h.repo.FindByEmail(req.Email); err == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "User already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}

	f := &entities.Farmer{
		Email:               req.Email,
		Password:            string(hashed),
		Name:                req.Name,
		Phone:               req.Phone,
		Location:            req.Location,
		InsurancePreference: req.InsurancePreference,
		ExperienceLevel:     req.ExperienceLevel,
	}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "User created successfully",
		"userId":  f.ID,
	})
}

type loginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "All fields are required"})
	}

	f, err := h.repo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "User does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if bcrypt.CompareHashAndPassword([]byte(f.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid credentials"})
	}

	token, err := h.signToken(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user": map[string]string{
			"id":    f.ID,
			"name":  f.Name,
			"email": f.Email,
		},
	})
}

func (h *AuthCtrl) Profile(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	f, err := h.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	// Password carries json:"-", so the hash never leaves the process.
	return c.JSON(http.StatusOK, map[string]any{"user": f})
}

func (h *AuthCtrl) signToken(f *entities.Farmer) (string, error) {
	claims := jwt.MapClaims{
		"id":    f.ID,
		"email": f.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.jwtSecret))
}
