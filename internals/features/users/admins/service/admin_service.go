package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pasarku_backend/internals/configs"
	"pasarku_backend/internals/constants"
	"pasarku_backend/internals/features/users/admins/dto"
	"pasarku_backend/internals/features/users/admins/model"
	helper "pasarku_backend/internals/helpers"
)

const tokenTTL = 24 * time.Hour

// Pesan sengaja sama untuk email tak dikenal & password salah
// supaya tidak bisa dipakai enumerasi akun.
const msgInvalidCredentials = "Email atau password salah"

// ========================== REGISTER ==========================
func Register(db *gorm.DB, req dto.RegisterAdminRequest) (*model.AdminModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.AdminEmail))

	// pre-check: email sudah dipakai?
	var count int64
	if err := db.Model(&model.AdminModel{}).
		Where("admin_email = ?", email).
		Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Email sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}

	admin := model.AdminModel{
		AdminName:     strings.TrimSpace(req.AdminName),
		AdminEmail:    email,
		AdminPassword: string(hash),
		AdminRole:     constants.RoleModerator,
		AdminStatus:   constants.StatusAktif,
	}
	if req.AdminRole != "" {
		admin.AdminRole = req.AdminRole
	}
	if req.AdminStatus != "" {
		admin.AdminStatus = req.AdminStatus
	}

	if err := db.Create(&admin).Error; err != nil {
		// unique index sebagai penjaga terakhir saat pre-check balapan
		if helper.IsDuplicateKey(err) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat admin")
	}
	return &admin, nil
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, email, password string) (string, *model.AdminModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var admin model.AdminModel
	if err := db.Where("admin_email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, msgInvalidCredentials)
		}
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat admin")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(password)); err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, msgInvalidCredentials)
	}

	if admin.AdminStatus != constants.StatusAktif {
		return "", nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	now := time.Now()
	if err := db.Model(&admin).
		UpdateColumn("admin_last_login_at", now).Error; err != nil {
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal update last login")
	}
	admin.AdminLastLoginAt = &now

	token, err := CreateToken(admin.AdminID, admin.AdminRole)
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return token, &admin, nil
}

// ========================== UPDATE (tanpa password) ==========================
func Update(db *gorm.DB, id uuid.UUID, req dto.UpdateAdminRequest) (*model.AdminModel, error) {
	var admin model.AdminModel
	if err := db.First(&admin, "admin_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Admin tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat admin")
	}

	updates := map[string]interface{}{}
	if req.AdminName != nil {
		updates["admin_name"] = strings.TrimSpace(*req.AdminName)
	}
	if req.AdminEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*req.AdminEmail))
		// unik, exclude id sendiri
		var count int64
		if err := db.Model(&model.AdminModel{}).
			Where("admin_email = ? AND admin_id <> ?", email, id).
			Count(&count).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa email")
		}
		if count > 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		updates["admin_email"] = email
	}
	if req.AdminRole != nil {
		updates["admin_role"] = *req.AdminRole
	}
	if req.AdminStatus != nil {
		updates["admin_status"] = *req.AdminStatus
	}

	if len(updates) > 0 {
		if err := db.Model(&admin).Updates(updates).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Email sudah terdaftar")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal update admin")
		}
	}
	return &admin, nil
}

// ========================== TOKEN ==========================
// CreateToken menerbitkan JWT HS256 berisi {id, role}, berlaku 1 hari.
func CreateToken(id uuid.UUID, role string) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   id.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
