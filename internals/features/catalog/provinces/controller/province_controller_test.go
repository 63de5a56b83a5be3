package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	productModel "pasarku_backend/internals/features/catalog/products/model"
	"pasarku_backend/internals/features/catalog/provinces/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.ProvinceModel{},
		&productModel.ProductModel{},
	))

	ctrl := NewProvinceController(db)
	app := fiber.New()
	app.Post("/provinces", ctrl.Create)
	app.Delete("/provinces/:id", ctrl.Delete)
	return app, db
}

func createProvinceRequest(name, code string) *http.Request {
	payload := fiber.Map{"province_name": name, "province_island": "Sumatera", "province_capital": "Banda Aceh"}
	if code != "" {
		payload["province_code"] = code
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/provinces", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateProvince_DuplicateNameRejected(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(createProvinceRequest("Aceh", "AC"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(createProvinceRequest("Aceh", "XX"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteProvince_BlockedWhileReferenced(t *testing.T) {
	app, db := newTestApp(t)

	province := model.ProvinceModel{ProvinceName: "Jawa Barat", ProvinceCapital: "Bandung"}
	require.NoError(t, db.Create(&province).Error)

	product := productModel.ProductModel{
		ProductName:       "Batik Trusmi",
		ProductPrice:      250000,
		ProductProvinceID: &province.ProvinceID,
		ProductIsActive:   true,
	}
	require.NoError(t, db.Create(&product).Error)

	url := "/provinces/" + province.ProvinceID.String()
	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, url, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// setelah produk dilepas, hapus boleh jalan
	require.NoError(t, db.Model(&product).Update("product_province_id", nil).Error)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, url, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&model.ProvinceModel{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteProvince_MalformedIDNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/provinces/bukan-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
