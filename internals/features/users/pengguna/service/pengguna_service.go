package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/users/admins/service"
	"pasarku_backend/internals/features/users/pengguna/dto"
	"pasarku_backend/internals/features/users/pengguna/model"
	helper "pasarku_backend/internals/helpers"
)

const msgInvalidCredentials = "Email atau password salah"

// ========================== REGISTER ==========================
func Register(db *gorm.DB, req dto.RegisterPenggunaRequest) (*model.PenggunaModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var count int64
	if err := db.Model(&model.PenggunaModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Email sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := model.PenggunaModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    email,
		UserPassword: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat pengguna")
	}
	return &user, nil
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, email, password string) (string, *model.PenggunaModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.PenggunaModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, msgInvalidCredentials)
		}
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat pengguna")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)); err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, msgInvalidCredentials)
	}

	token, err := service.CreateToken(user.UserID, "user")
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return token, &user, nil
}
