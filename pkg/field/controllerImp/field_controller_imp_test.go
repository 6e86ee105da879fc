package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/field/controller"
	"github.com/nethmalgunawardhana/AgriConnect-Backend2/pkg/field/repositoryImp"
)

const createBody = `{"fieldname":"North Paddy","fieldlocation":"Galle","fieldsize":"2 hectares","fieldtype":"Clay"}`

func setup(t *testing.T) (*gorm.DB, *echo.Echo, controller.FieldController) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Field{}))
	return db, echo.New(), New(repositoryImp.New(db))
}

func jsonRequest(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreate_PersistsField(t *testing.T) {
	db, e, ctrl := setup(t)

	c, rec := jsonRequest(e, http.MethodPost, "/api/fields/create", createBody)
	require.NoError(t, ctrl.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["id"])

	var f entities.Field
	require.NoError(t, db.First(&f, "id = ?", resp["id"]).Error)
	assert.Equal(t, "North Paddy", f.FieldName)
	assert.Equal(t, "Clay", f.FieldType)
}

func TestCreate_DuplicateName(t *testing.T) {
	_, e, ctrl := setup(t)

	c, _ := jsonRequest(e, http.MethodPost, "/api/fields/create", createBody)
	require.NoError(t, ctrl.Create(c))

	c, rec := jsonRequest(e, http.MethodPost, "/api/fields/create", createBody)
	require.NoError(t, ctrl.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Field already exists")
}

func TestCreate_MissingFields(t *testing.T) {
	_, e, ctrl := setup(t)

	c, rec := jsonRequest(e, http.MethodPost, "/api/fields/create", `{"fieldname":"North Paddy"}`)
	require.NoError(t, ctrl.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "All fields are required")
}

func TestList_NewestFirst(t *testing.T) {
	db, e, ctrl := setup(t)

	require.NoError(t, db.Create(&entities.Field{FieldName: "older"}).Error)
	require.NoError(t, db.Exec(`UPDATE fields SET created_at = datetime('now', '-1 hour')`).Error)
	require.NoError(t, db.Create(&entities.Field{FieldName: "newer"}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/fields", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.List(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var fields []entities.Field
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	require.Len(t, fields, 2)
	assert.Equal(t, "newer", fields[0].FieldName)
}

func TestUpdate_PartialChanges(t *testing.T) {
	db, e, ctrl := setup(t)
	f := &entities.Field{FieldName: "North Paddy", FieldLocation: "Galle", FieldSize: "2 hectares", FieldType: "Clay"}
	require.NoError(t, db.Create(f).Error)

	c, rec := jsonRequest(e, http.MethodPatch, "/api/fields/"+f.ID, `{"fieldsize":"3 hectares"}`)
	c.SetParamNames("id")
	c.SetParamValues(f.ID)
	require.NoError(t, ctrl.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got entities.Field
	require.NoError(t, db.First(&got, "id = ?", f.ID).Error)
	assert.Equal(t, "3 hectares", got.FieldSize)
	assert.Equal(t, "Galle", got.FieldLocation) // untouched
}

func TestUpdate_EmptyBody(t *testing.T) {
	db, e, ctrl := setup(t)
	f := &entities.Field{FieldName: "North Paddy"}
	require.NoError(t, db.Create(f).Error)

	c, rec := jsonRequest(e, http.MethodPatch, "/api/fields/"+f.ID, `{}`)
	c.SetParamNames("id")
	c.SetParamValues(f.ID)
	require.NoError(t, ctrl.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No fields to update")
}

func TestUpdate_UnknownField(t *testing.T) {
	_, e, ctrl := setup(t)

	c, rec := jsonRequest(e, http.MethodPatch, "/api/fields/no-such", `{"fieldsize":"3 hectares"}`)
	c.SetParamNames("id")
	c.SetParamValues("no-such")
	require.NoError(t, ctrl.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete_RemovesField(t *testing.T) {
	db, e, ctrl := setup(t)
	f := &entities.Field{FieldName: "North Paddy"}
	require.NoError(t, db.Create(f).Error)

	c, rec := jsonRequest(e, http.MethodDelete, "/api/fields/"+f.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(f.ID)
	require.NoError(t, ctrl.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, db.Model(&entities.Field{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDelete_UnknownField(t *testing.T) {
	_, e, ctrl := setup(t)

	c, rec := jsonRequest(e, http.MethodDelete, "/api/fields/no-such", "")
	c.SetParamNames("id")
	c.SetParamValues("no-such")
	require.NoError(t, ctrl.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
