package dto

import (
	"time"

	"pasarku_backend/internals/features/users/pengguna/model"
)

type PenggunaDTO struct {
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

type RegisterPenggunaRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
}

type LoginPenggunaRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

func ToPenggunaDTO(m model.PenggunaModel) PenggunaDTO {
	return PenggunaDTO{
		UserID:        m.UserID.String(),
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserCreatedAt: m.UserCreatedAt,
	}
}
