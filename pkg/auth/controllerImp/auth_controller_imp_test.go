package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/auth/controller"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/auth/repositoryImp"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/middleware"
)

const testSecret = "unit-test-secret"

const registerBody = `{
	"email": "w@farm.lk",
	"password": "hunter22",
	"name": "W. Perera",
	"phone": "0771234567",
	"location": "Galle",
	"insurancePreference": "basic",
	"experienceLevel": "beginner"
}`

func setup(t *testing.T) (*gorm.DB, *echo.Echo, controller.AuthController) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Farmer{}))
	return db, echo.New(), New(repositoryImp.New(db), testSecret)
}

func post(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_CreatesFarmerWithHashedPassword(t *testing.T) {
	db, e, ctrl := setup(t)

	c, rec := post(e, "/api/auth/register", registerBody)
	require.NoError(t, ctrl.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully", resp["message"])
	assert.NotEmpty(t, resp["userId"])

	var f entities.Farmer
	require.NoError(t, db.First(&f, "email = ?", "w@farm.lk").Error)
	assert.NotEqual(t, "hunter22", f.Password) // stored hashed
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, e, ctrl := setup(t)

	c, _ := post(e, "/api/auth/register", registerBody)
	require.NoError(t, ctrl.Register(c))

	c, rec := post(e, "/api/auth/register", registerBody)
	require.NoError(t, ctrl.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
}

func TestRegister_MissingFields(t *testing.T) {
	_, e, ctrl := setup(t)

	c, rec := post(e, "/api/auth/register", `{"email":"w@farm.lk","password":"x"}`)
	require.NoError(t, ctrl.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "All fields are required")
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	_, e, ctrl := setup(t)

	c, _ := post(e, "/api/auth/register", registerBody)
	require.NoError(t, ctrl.Register(c))

	c, rec := post(e, "/api/auth/login", `{"email":"w@farm.lk","password":"hunter22"}`)
	require.NoError(t, ctrl.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "W. Perera", resp.User.Name)

	token, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.User.ID, claims["id"])
	assert.Equal(t, "w@farm.lk", claims["email"])
	assert.NotNil(t, claims["exp"])
}

func TestLogin_WrongPassword(t *testing.T) {
	_, e, ctrl := setup(t)

	c, _ := post(e, "/api/auth/register", registerBody)
	require.NoError(t, ctrl.Register(c))

	c, rec := post(e, "/api/auth/login", `{"email":"w@farm.lk","password":"nope"}`)
	require.NoError(t, ctrl.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestLogin_UnknownUser(t *testing.T) {
	_, e, ctrl := setup(t)

	c, rec := post(e, "/api/auth/login", `{"email":"nobody@farm.lk","password":"x"}`)
	require.NoError(t, ctrl.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User does not exist")
}

func TestProfile_NeverReturnsPassword(t *testing.T) {
	db, e, ctrl := setup(t)

	c, _ := post(e, "/api/auth/register", registerBody)
	require.NoError(t, ctrl.Register(c))

	var f entities.Farmer
	require.NoError(t, db.First(&f, "email = ?", "w@farm.lk").Error)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/get", nil)
	rec := httptest.NewRecorder()
	pc := e.NewContext(req, rec)
	pc.Set(middleware.CtxUserID, f.ID)

	require.NoError(t, ctrl.Profile(pc))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "w@farm.lk")
	assert.NotContains(t, rec.Body.String(), f.Password)
	assert.NotContains(t, rec.Body.String(), `"password"`)
}

func TestProfile_UnknownUser(t *testing.T) {
	_, e, ctrl := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/get", nil)
	rec := httptest.NewRecorder()
	pc := e.NewContext(req, rec)
	pc.Set(middleware.CtxUserID, "no-such-id")

	require.NoError(t, ctrl.Profile(pc))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
