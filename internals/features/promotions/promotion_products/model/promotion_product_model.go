package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromotionProductModel: relasi promo ↔ produk.
// Pasangan (promotion_id, product_id) unik supaya produk tidak
// terdaftar dua kali di promo yang sama.
type PromotionProductModel struct {
	PromotionProductID uuid.UUID `json:"promotion_product_id" gorm:"column:promotion_product_id;type:uuid;primaryKey"`

	PromotionProductPromotionID uuid.UUID `json:"promotion_id" gorm:"column:promotion_product_promotion_id;type:uuid;not null;uniqueIndex:idx_promotion_products_pair,priority:1"`
	PromotionProductProductID   uuid.UUID `json:"product_id" gorm:"column:promotion_product_product_id;type:uuid;not null;uniqueIndex:idx_promotion_products_pair,priority:2"`

	PromotionProductCreatedAt time.Time `json:"created_at" gorm:"column:promotion_product_created_at;autoCreateTime"`
}

func (PromotionProductModel) TableName() string {
	return "promotion_products"
}

func (m *PromotionProductModel) BeforeCreate(tx *gorm.DB) error {
	if m.PromotionProductID == uuid.Nil {
		m.PromotionProductID = uuid.New()
	}
	return nil
}
