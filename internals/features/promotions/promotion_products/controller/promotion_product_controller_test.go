package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	productModel "pasarku_backend/internals/features/catalog/products/model"
	"pasarku_backend/internals/features/promotions/promotion_products/model"
	promotionModel "pasarku_backend/internals/features/promotions/promotions/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&promotionModel.PromotionModel{},
		&productModel.ProductModel{},
		&model.PromotionProductModel{},
	))

	ctrl := NewPromotionProductController(db)
	app := fiber.New()
	app.Post("/promotions/:id/products", ctrl.Link)
	app.Get("/promotions/:id/products", ctrl.ListProducts)
	app.Delete("/promotions/:id/products/:product_id", ctrl.Unlink)
	return app, db
}

func seedPromoAndProduct(t *testing.T, db *gorm.DB) (promotionModel.PromotionModel, productModel.ProductModel) {
	t.Helper()
	promo := promotionModel.PromotionModel{
		PromotionCode:          "DISKON10",
		PromotionName:          "Diskon Sepuluh Persen",
		PromotionDiscountType:  "percent",
		PromotionDiscountValue: 10,
		PromotionIsActive:      true,
	}
	require.NoError(t, db.Create(&promo).Error)

	product := productModel.ProductModel{
		ProductName:     "Kopi Gayo",
		ProductPrice:    85000,
		ProductIsActive: true,
	}
	require.NoError(t, db.Create(&product).Error)
	return promo, product
}

func linkRequest(promoID uuid.UUID, productID uuid.UUID) *http.Request {
	body, _ := json.Marshal(fiber.Map{"product_id": productID.String()})
	req := httptest.NewRequest(http.MethodPost, "/promotions/"+promoID.String()+"/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLink_DuplicatePairRejected(t *testing.T) {
	app, db := newTestApp(t)
	promo, product := seedPromoAndProduct(t, db)

	resp, err := app.Test(linkRequest(promo.PromotionID, product.ProductID))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(linkRequest(promo.PromotionID, product.ProductID))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// hanya satu relasi yang tersimpan
	var count int64
	db.Model(&model.PromotionProductModel{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLink_UnknownPromoOrProduct(t *testing.T) {
	app, db := newTestApp(t)
	promo, product := seedPromoAndProduct(t, db)

	resp, err := app.Test(linkRequest(uuid.New(), product.ProductID))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(linkRequest(promo.PromotionID, uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListProducts_ReturnsLinkedOnly(t *testing.T) {
	app, db := newTestApp(t)
	promo, product := seedPromoAndProduct(t, db)

	other := productModel.ProductModel{ProductName: "Teh Tubruk", ProductPrice: 20000, ProductIsActive: true}
	require.NoError(t, db.Create(&other).Error)

	resp, err := app.Test(linkRequest(promo.PromotionID, product.ProductID))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/promotions/"+promo.PromotionID.String()+"/products", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Data []struct {
			ProductID string `json:"product_id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Data, 1)
	assert.Equal(t, product.ProductID.String(), payload.Data[0].ProductID)
}

func TestUnlink_RemovesPair(t *testing.T) {
	app, db := newTestApp(t)
	promo, product := seedPromoAndProduct(t, db)

	resp, err := app.Test(linkRequest(promo.PromotionID, product.ProductID))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	url := "/promotions/" + promo.PromotionID.String() + "/products/" + product.ProductID.String()
	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, url, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// unlink kedua: relasi sudah tidak ada
	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, url, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
