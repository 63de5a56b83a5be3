package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/catalog/products/dto"
	"pasarku_backend/internals/features/catalog/products/model"
	helper "pasarku_backend/internals/helpers"
)

var validateProduct = validator.New()

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// =======================
// ➕ Create Product
// =======================
func (ctrl *ProductController) Create(c *fiber.Ctx) error {
	var body dto.CreateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProduct.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	product := model.ProductModel{
		ProductName:     strings.TrimSpace(body.ProductName),
		ProductPrice:    body.ProductPrice,
		ProductIsActive: true,
	}
	if body.ProductProvinceID != nil {
		pid, err := uuid.Parse(*body.ProductProvinceID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Provinsi tidak valid")
		}
		product.ProductProvinceID = &pid
	}

	if err := ctrl.DB.Create(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat produk")
	}
	return helper.JsonCreated(c, "Produk ditambahkan", dto.ToProductDTO(product))
}

// =======================
// 📄 List Product (paginated, filter provinsi opsional)
// =======================
func (ctrl *ProductController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ProductModel{})
	if provinceID := strings.TrimSpace(c.Query("province_id")); provinceID != "" {
		pid, err := uuid.Parse(provinceID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "province_id tidak valid")
		}
		q = q.Where("product_province_id = ?", pid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung produk")
	}

	var products []model.ProductModel
	if err := q.
		Order("product_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat produk")
	}

	resp := make([]dto.ProductDTO, 0, len(products))
	for _, prod := range products {
		resp = append(resp, dto.ToProductDTO(prod))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, p))
}

// =======================
// 🔍 Detail Product
// =======================
func (ctrl *ProductController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat produk")
	}
	return helper.JsonOK(c, "", dto.ToProductDTO(product))
}

// =======================
// ✏️ Update Product (parsial)
// =======================
func (ctrl *ProductController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	var body dto.UpdateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProduct.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat produk")
	}

	updates := map[string]interface{}{}
	if body.ProductName != nil {
		updates["product_name"] = strings.TrimSpace(*body.ProductName)
	}
	if body.ProductPrice != nil {
		updates["product_price"] = *body.ProductPrice
	}
	if body.ProductProvinceID != nil {
		pid, err := uuid.Parse(*body.ProductProvinceID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Provinsi tidak valid")
		}
		updates["product_province_id"] = pid
	}
	if body.ProductIsActive != nil {
		updates["product_is_active"] = *body.ProductIsActive
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&product).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update produk")
		}
	}
	return helper.JsonUpdated(c, "Produk diperbarui", dto.ToProductDTO(product))
}

// =======================
// 🗑️ Delete Product
// =======================
func (ctrl *ProductController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	res := ctrl.DB.Delete(&model.ProductModel{}, "product_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus produk")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Produk dihapus", fiber.Map{
		"product_id": id.String(),
	})
}
