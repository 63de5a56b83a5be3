package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	productDto "pasarku_backend/internals/features/catalog/products/dto"
	productModel "pasarku_backend/internals/features/catalog/products/model"
	"pasarku_backend/internals/features/promotions/promotion_products/dto"
	"pasarku_backend/internals/features/promotions/promotion_products/model"
	promotionModel "pasarku_backend/internals/features/promotions/promotions/model"
	helper "pasarku_backend/internals/helpers"
)

var validateLink = validator.New()

type PromotionProductController struct {
	DB *gorm.DB
}

func NewPromotionProductController(db *gorm.DB) *PromotionProductController {
	return &PromotionProductController{DB: db}
}

// =======================
// 🔗 Daftarkan produk ke promo
// =======================
func (ctrl *PromotionProductController) Link(c *fiber.Ctx) error {
	promoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Promo tidak ditemukan")
	}

	var body dto.LinkProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLink.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}
	productID, err := uuid.Parse(body.ProductID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "product_id tidak valid")
	}

	// Promo & produk harus ada dulu
	var promo promotionModel.PromotionModel
	if err := ctrl.DB.First(&promo, "promotion_id = ?", promoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Promo tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat promo")
	}
	var product productModel.ProductModel
	if err := ctrl.DB.First(&product, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat produk")
	}

	var count int64
	if err := ctrl.DB.Model(&model.PromotionProductModel{}).
		Where("promotion_product_promotion_id = ? AND promotion_product_product_id = ?", promoID, productID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa relasi promo")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Produk sudah terdaftar di promo ini")
	}

	link := model.PromotionProductModel{
		PromotionProductPromotionID: promoID,
		PromotionProductProductID:   productID,
	}
	if err := ctrl.DB.Create(&link).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Produk sudah terdaftar di promo ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan produk ke promo")
	}
	return helper.JsonCreated(c, "Produk terdaftar di promo", dto.ToPromotionProductDTO(link))
}

// =======================
// ✂️ Cabut produk dari promo
// =======================
func (ctrl *PromotionProductController) Unlink(c *fiber.Ctx) error {
	promoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Promo tidak ditemukan")
	}
	productID, err := helper.ParseUUIDParam(c, "product_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak terdaftar di promo ini")
	}

	res := ctrl.DB.Delete(&model.PromotionProductModel{},
		"promotion_product_promotion_id = ? AND promotion_product_product_id = ?", promoID, productID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencabut produk dari promo")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak terdaftar di promo ini")
	}
	return helper.JsonDeleted(c, "Produk dicabut dari promo", fiber.Map{
		"promotion_id": promoID.String(),
		"product_id":   productID.String(),
	})
}

// =======================
// 📄 Produk dalam satu promo
// =======================
func (ctrl *PromotionProductController) ListProducts(c *fiber.Ctx) error {
	promoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Promo tidak ditemukan")
	}

	var promo promotionModel.PromotionModel
	if err := ctrl.DB.First(&promo, "promotion_id = ?", promoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Promo tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat promo")
	}

	var products []productModel.ProductModel
	if err := ctrl.DB.
		Joins("JOIN promotion_products ON promotion_products.promotion_product_product_id = products.product_id").
		Where("promotion_products.promotion_product_promotion_id = ?", promoID).
		Order("products.product_name ASC").
		Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat produk promo")
	}

	resp := make([]productDto.ProductDTO, 0, len(products))
	for _, p := range products {
		resp = append(resp, productDto.ToProductDTO(p))
	}
	return helper.JsonOK(c, "", resp)
}
