package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PenggunaModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;primaryKey;type:uuid" json:"user_id"`
	UserName      string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (PenggunaModel) TableName() string {
	return "pengguna"
}

func (m *PenggunaModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
