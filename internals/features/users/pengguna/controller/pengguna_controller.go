package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/users/pengguna/dto"
	"pasarku_backend/internals/features/users/pengguna/model"
	"pasarku_backend/internals/features/users/pengguna/service"
	helper "pasarku_backend/internals/helpers"
)

var validatePengguna = validator.New()

type PenggunaController struct {
	DB *gorm.DB
}

func NewPenggunaController(db *gorm.DB) *PenggunaController {
	return &PenggunaController{DB: db}
}

// =======================
// ➕ Register
// =======================
func (ctrl *PenggunaController) Register(c *fiber.Ctx) error {
	var body dto.RegisterPenggunaRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePengguna.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	user, err := service.Register(ctrl.DB, body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Pengguna terdaftar", dto.ToPenggunaDTO(*user))
}

// =======================
// 🔑 Login
// =======================
func (ctrl *PenggunaController) Login(c *fiber.Ctx) error {
	var body dto.LoginPenggunaRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePengguna.Struct(&body); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", helper.ValidationMap(err))
	}

	token, user, err := service.Login(ctrl.DB, body.UserEmail, body.UserPassword)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"token": token,
		"user":  dto.ToPenggunaDTO(*user),
	})
}

// =======================
// 👤 Me
// =======================
func (ctrl *PenggunaController) Me(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.PenggunaModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengguna tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pengguna")
	}
	return helper.JsonOK(c, "", dto.ToPenggunaDTO(user))
}
