package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/users/admins/dto"
	"pasarku_backend/internals/features/users/admins/model"
	"pasarku_backend/internals/features/users/admins/service"
	helper "pasarku_backend/internals/helpers"
)

var validateAdmin = validator.New()

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// =======================
// ➕ Register Admin
// =======================
func (ctrl *AdminController) Register(c *fiber.Ctx) error {
	var body dto.RegisterAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAdmin.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	admin, err := service.Register(ctrl.DB, body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Admin terdaftar", dto.ToAdminDTO(*admin))
}

// =======================
// 🔑 Login Admin
// =======================
func (ctrl *AdminController) Login(c *fiber.Ctx) error {
	var body dto.LoginAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAdmin.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	token, admin, err := service.Login(ctrl.DB, body.AdminEmail, body.AdminPassword)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"token": token,
		"admin": dto.ToAdminDTO(*admin),
	})
}

// =======================
// ✏️ Update Admin (parsial, tanpa password)
// =======================
func (ctrl *AdminController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
	}

	var body dto.UpdateAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAdmin.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	admin, err := service.Update(ctrl.DB, id, body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Admin diperbarui", dto.ToAdminDTO(*admin))
}

// =======================
// 📄 List Admin (paginated)
// =======================
func (ctrl *AdminController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.AdminModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung admin")
	}

	var admins []model.AdminModel
	if err := ctrl.DB.
		Order("admin_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&admins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat admin")
	}

	resp := make([]dto.AdminDTO, 0, len(admins))
	for _, a := range admins {
		resp = append(resp, dto.ToAdminDTO(a))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, p))
}

// =======================
// 🔍 Detail Admin
// =======================
func (ctrl *AdminController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
	}

	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat admin")
	}
	return helper.JsonOK(c, "", dto.ToAdminDTO(admin))
}
