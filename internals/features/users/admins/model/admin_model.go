package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	AdminID          uuid.UUID  `gorm:"column:admin_id;primaryKey;type:uuid" json:"admin_id"`
	AdminName        string     `gorm:"column:admin_name;type:varchar(100);not null" json:"admin_name"`
	AdminEmail       string     `gorm:"column:admin_email;type:varchar(255);not null;uniqueIndex" json:"admin_email"`
	AdminPassword    string     `gorm:"column:admin_password;type:varchar(255);not null" json:"-"`
	AdminRole        string     `gorm:"column:admin_role;type:varchar(20);not null;default:moderator" json:"admin_role"`
	AdminStatus      string     `gorm:"column:admin_status;type:varchar(10);not null;default:aktif" json:"admin_status"`
	AdminLastLoginAt *time.Time `gorm:"column:admin_last_login_at" json:"admin_last_login_at"`
	AdminCreatedAt   time.Time  `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt   time.Time  `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}
