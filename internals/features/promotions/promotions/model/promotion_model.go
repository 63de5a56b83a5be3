package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PromotionModel struct {
	PromotionID            uuid.UUID      `gorm:"column:promotion_id;primaryKey;type:uuid" json:"promotion_id"`
	PromotionCode          string         `gorm:"column:promotion_code;type:varchar(50);not null;uniqueIndex" json:"promotion_code"`
	PromotionName          string         `gorm:"column:promotion_name;type:varchar(150);not null" json:"promotion_name"`
	PromotionDiscountType  string         `gorm:"column:promotion_discount_type;type:varchar(20);not null" json:"promotion_discount_type"` // percent | nominal
	PromotionDiscountValue int64          `gorm:"column:promotion_discount_value;not null" json:"promotion_discount_value"`
	PromotionScope         datatypes.JSON `gorm:"column:promotion_scope" json:"promotion_scope"`
	PromotionIsActive      bool           `gorm:"column:promotion_is_active;not null;default:true" json:"promotion_is_active"`
	PromotionStartsAt      *time.Time     `gorm:"column:promotion_starts_at" json:"promotion_starts_at"`
	PromotionEndsAt        *time.Time     `gorm:"column:promotion_ends_at" json:"promotion_ends_at"`
	PromotionCreatedAt     time.Time      `gorm:"column:promotion_created_at;autoCreateTime" json:"promotion_created_at"`
	PromotionUpdatedAt     time.Time      `gorm:"column:promotion_updated_at;autoUpdateTime" json:"promotion_updated_at"`
}

func (PromotionModel) TableName() string {
	return "promotions"
}

func (m *PromotionModel) BeforeCreate(tx *gorm.DB) error {
	if m.PromotionID == uuid.Nil {
		m.PromotionID = uuid.New()
	}
	return nil
}

// ActiveAt: promo hidup dan berada dalam jendela waktunya.
func (m *PromotionModel) ActiveAt(t time.Time) bool {
	if !m.PromotionIsActive {
		return false
	}
	if m.PromotionStartsAt != nil && t.Before(*m.PromotionStartsAt) {
		return false
	}
	if m.PromotionEndsAt != nil && t.After(*m.PromotionEndsAt) {
		return false
	}
	return true
}
