package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/catalog/provinces/dto"
	"pasarku_backend/internals/features/catalog/provinces/model"
	productModel "pasarku_backend/internals/features/catalog/products/model"
	helper "pasarku_backend/internals/helpers"
)

var validateProvince = validator.New()

type ProvinceController struct {
	DB *gorm.DB
}

func NewProvinceController(db *gorm.DB) *ProvinceController {
	return &ProvinceController{DB: db}
}

// =======================
// ➕ Create Province
// =======================
func (ctrl *ProvinceController) Create(c *fiber.Ctx) error {
	var body dto.CreateProvinceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProvince.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	name := strings.TrimSpace(body.ProvinceName)
	if err := ctrl.ensureUnique(name, body.ProvinceCode, uuid.Nil); err != nil {
		return helper.JsonFromError(c, err)
	}

	province := model.ProvinceModel{
		ProvinceName:        name,
		ProvinceCode:        body.ProvinceCode,
		ProvinceIsland:      body.ProvinceIsland,
		ProvinceCapital:     body.ProvinceCapital,
		ProvinceCoordinates: body.ProvinceCoordinates,
		ProvinceMapImageURL: body.ProvinceMapImageURL,
	}
	if err := ctrl.DB.Create(&province).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama atau kode provinsi sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat provinsi")
	}
	return helper.JsonCreated(c, "Provinsi ditambahkan", dto.ToProvinceDTO(province))
}

// =======================
// 📄 List Province (paginated)
// =======================
func (ctrl *ProvinceController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ProvinceModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung provinsi")
	}

	var provinces []model.ProvinceModel
	if err := ctrl.DB.
		Order("province_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&provinces).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat provinsi")
	}

	resp := make([]dto.ProvinceDTO, 0, len(provinces))
	for _, prov := range provinces {
		resp = append(resp, dto.ToProvinceDTO(prov))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, p))
}

// =======================
// 🔍 Detail Province
// =======================
func (ctrl *ProvinceController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Provinsi tidak ditemukan")
	}

	var province model.ProvinceModel
	if err := ctrl.DB.First(&province, "province_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Provinsi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat provinsi")
	}
	return helper.JsonOK(c, "", dto.ToProvinceDTO(province))
}

// =======================
// ✏️ Update Province (parsial)
// =======================
func (ctrl *ProvinceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Provinsi tidak ditemukan")
	}

	var body dto.UpdateProvinceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProvince.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	var province model.ProvinceModel
	if err := ctrl.DB.First(&province, "province_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Provinsi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat provinsi")
	}

	// uniqueness check exclude id sendiri
	name := province.ProvinceName
	if body.ProvinceName != nil {
		name = strings.TrimSpace(*body.ProvinceName)
	}
	code := province.ProvinceCode
	if body.ProvinceCode != nil {
		code = body.ProvinceCode
	}
	if err := ctrl.ensureUnique(name, code, id); err != nil {
		return helper.JsonFromError(c, err)
	}

	updates := map[string]interface{}{}
	if body.ProvinceName != nil {
		updates["province_name"] = name
	}
	if body.ProvinceCode != nil {
		updates["province_code"] = code
	}
	if body.ProvinceIsland != nil {
		updates["province_island"] = *body.ProvinceIsland
	}
	if body.ProvinceCapital != nil {
		updates["province_capital"] = *body.ProvinceCapital
	}
	if body.ProvinceCoordinates != nil {
		updates["province_coordinates"] = *body.ProvinceCoordinates
	}
	if body.ProvinceMapImageURL != nil {
		updates["province_map_image_url"] = *body.ProvinceMapImageURL
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&province).Updates(updates).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Nama atau kode provinsi sudah dipakai")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update provinsi")
		}
	}
	return helper.JsonUpdated(c, "Provinsi diperbarui", dto.ToProvinceDTO(province))
}

// =======================
// 🗑️ Delete Province
// =======================
// Hapus ditolak selama masih ada produk yang menunjuk provinsi ini,
// supaya tidak meninggalkan referensi menggantung.
func (ctrl *ProvinceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Provinsi tidak ditemukan")
	}

	var province model.ProvinceModel
	if err := ctrl.DB.First(&province, "province_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Provinsi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat provinsi")
	}

	var refs int64
	if err := ctrl.DB.Model(&productModel.ProductModel{}).
		Where("product_province_id = ?", id).
		Count(&refs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa produk terkait")
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Provinsi masih direferensikan produk")
	}

	if err := ctrl.DB.Delete(&province).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus provinsi")
	}
	return helper.JsonDeleted(c, "Provinsi dihapus", fiber.Map{
		"province_id": id.String(),
	})
}

// ensureUnique: nama & kode harus unik; excludeID mengecualikan record sendiri.
func (ctrl *ProvinceController) ensureUnique(name string, code *string, excludeID uuid.UUID) error {
	var count int64
	q := ctrl.DB.Model(&model.ProvinceModel{}).Where("province_name = ?", name)
	if excludeID != uuid.Nil {
		q = q.Where("province_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa nama provinsi")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Nama provinsi sudah dipakai")
	}

	if code != nil && strings.TrimSpace(*code) != "" {
		q = ctrl.DB.Model(&model.ProvinceModel{}).Where("province_code = ?", *code)
		if excludeID != uuid.Nil {
			q = q.Where("province_id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kode provinsi")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Kode provinsi sudah dipakai")
		}
	}
	return nil
}
