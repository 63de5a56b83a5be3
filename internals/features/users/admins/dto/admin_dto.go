package dto

import (
	"time"

	"pasarku_backend/internals/features/users/admins/model"
)

// ============================
// Response DTO (tanpa password)
// ============================

type AdminDTO struct {
	AdminID          string     `json:"admin_id"`
	AdminName        string     `json:"admin_name"`
	AdminEmail       string     `json:"admin_email"`
	AdminRole        string     `json:"admin_role"`
	AdminStatus      string     `json:"admin_status"`
	AdminLastLoginAt *time.Time `json:"admin_last_login_at"`
	AdminCreatedAt   time.Time  `json:"admin_created_at"`
}

// ============================
// Request DTO
// ============================

type RegisterAdminRequest struct {
	AdminName     string `json:"admin_name" validate:"required,min=3"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8"`
	AdminRole     string `json:"admin_role" validate:"omitempty,oneof=super_admin moderator"`
	AdminStatus   string `json:"admin_status" validate:"omitempty,oneof=aktif nonaktif"`
}

type LoginAdminRequest struct {
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required"`
}

// Update parsial: password sengaja tidak ada di sini (rotasi password
// bukan bagian dari update umum).
type UpdateAdminRequest struct {
	AdminName   *string `json:"admin_name" validate:"omitempty,min=3"`
	AdminEmail  *string `json:"admin_email" validate:"omitempty,email"`
	AdminRole   *string `json:"admin_role" validate:"omitempty,oneof=super_admin moderator"`
	AdminStatus *string `json:"admin_status" validate:"omitempty,oneof=aktif nonaktif"`
}

// ============================
// Converter
// ============================

func ToAdminDTO(m model.AdminModel) AdminDTO {
	return AdminDTO{
		AdminID:          m.AdminID.String(),
		AdminName:        m.AdminName,
		AdminEmail:       m.AdminEmail,
		AdminRole:        m.AdminRole,
		AdminStatus:      m.AdminStatus,
		AdminLastLoginAt: m.AdminLastLoginAt,
		AdminCreatedAt:   m.AdminCreatedAt,
	}
}
