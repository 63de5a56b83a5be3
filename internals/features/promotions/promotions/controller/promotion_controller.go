package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/promotions/promotions/dto"
	"pasarku_backend/internals/features/promotions/promotions/model"
	helper "pasarku_backend/internals/helpers"
)

var validatePromotion = validator.New()

type PromotionController struct {
	DB *gorm.DB
}

func NewPromotionController(db *gorm.DB) *PromotionController {
	return &PromotionController{DB: db}
}

// =======================
// ➕ Create Promotion
// =======================
func (ctrl *PromotionController) Create(c *fiber.Ctx) error {
	var body dto.CreatePromotionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePromotion.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	promo := model.PromotionModel{
		PromotionCode:          strings.ToUpper(strings.TrimSpace(body.PromotionCode)),
		PromotionName:          strings.TrimSpace(body.PromotionName),
		PromotionDiscountType:  body.PromotionDiscountType,
		PromotionDiscountValue: body.PromotionDiscountValue,
		PromotionScope:         body.PromotionScope,
		PromotionIsActive:      true,
		PromotionStartsAt:      body.PromotionStartsAt,
		PromotionEndsAt:        body.PromotionEndsAt,
	}
	if err := ctrl.DB.Create(&promo).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode promo sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat promo")
	}
	return helper.JsonCreated(c, "Promo ditambahkan", dto.ToPromotionDTO(promo))
}

// =======================
// 📄 List Promotion (paginated)
// =======================
func (ctrl *PromotionController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.PromotionModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung promo")
	}

	var promos []model.PromotionModel
	if err := ctrl.DB.
		Order("promotion_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&promos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat promo")
	}

	resp := make([]dto.PromotionDTO, 0, len(promos))
	for _, promo := range promos {
		resp = append(resp, dto.ToPromotionDTO(promo))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, p))
}

// =======================
// 🔍 Detail Promotion
// =======================
func (ctrl *PromotionController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Promo tidak ditemukan")
	}

	var promo model.PromotionModel
	if err := ctrl.DB.First(&promo, "promotion_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Promo tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat promo")
	}
	return helper.JsonOK(c, "", dto.ToPromotionDTO(promo))
}

// =======================
// ✏️ Update Promotion (parsial)
// =======================
func (ctrl *PromotionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Promo tidak ditemukan")
	}

	var body dto.UpdatePromotionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePromotion.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	var promo model.PromotionModel
	if err := ctrl.DB.First(&promo, "promotion_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Promo tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat promo")
	}

	updates := map[string]interface{}{}
	if body.PromotionCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*body.PromotionCode))
		var count int64
		if err := ctrl.DB.Model(&model.PromotionModel{}).
			Where("promotion_code = ? AND promotion_id <> ?", code, id).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kode promo")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode promo sudah dipakai")
		}
		updates["promotion_code"] = code
	}
	if body.PromotionName != nil {
		updates["promotion_name"] = strings.TrimSpace(*body.PromotionName)
	}
	if body.PromotionDiscountType != nil {
		updates["promotion_discount_type"] = *body.PromotionDiscountType
	}
	if body.PromotionDiscountValue != nil {
		updates["promotion_discount_value"] = *body.PromotionDiscountValue
	}
	if body.PromotionScope != nil {
		updates["promotion_scope"] = body.PromotionScope
	}
	if body.PromotionIsActive != nil {
		updates["promotion_is_active"] = *body.PromotionIsActive
	}
	if body.PromotionStartsAt != nil {
		updates["promotion_starts_at"] = *body.PromotionStartsAt
	}
	if body.PromotionEndsAt != nil {
		updates["promotion_ends_at"] = *body.PromotionEndsAt
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&promo).Updates(updates).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Kode promo sudah dipakai")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update promo")
		}
	}
	return helper.JsonUpdated(c, "Promo diperbarui", dto.ToPromotionDTO(promo))
}

// =======================
// 🗑️ Delete Promotion
// =======================
func (ctrl *PromotionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Promo tidak ditemukan")
	}

	res := ctrl.DB.Delete(&model.PromotionModel{}, "promotion_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus promo")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Promo tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Promo dihapus", fiber.Map{
		"promotion_id": id.String(),
	})
}

// =======================
// ✅ Validasi kode promo (user)
// =======================
func (ctrl *PromotionController) ValidateCode(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kode promo wajib diisi")
	}

	var promo model.PromotionModel
	if err := ctrl.DB.Where("promotion_code = ?", code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kode promo tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat promo")
	}

	if !promo.ActiveAt(time.Now()) {
		return helper.JsonError(c, fiber.StatusNotFound, "Kode promo tidak ditemukan")
	}
	return helper.JsonOK(c, "Kode promo valid", dto.ToPromotionDTO(promo))
}
