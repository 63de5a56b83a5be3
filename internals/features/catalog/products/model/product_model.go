package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductModel struct {
	ProductID         uuid.UUID  `gorm:"column:product_id;primaryKey;type:uuid" json:"product_id"`
	ProductName       string     `gorm:"column:product_name;type:varchar(150);not null" json:"product_name"`
	ProductPrice      int64      `gorm:"column:product_price;not null" json:"product_price"`
	ProductProvinceID *uuid.UUID `gorm:"column:product_province_id;type:uuid;index" json:"product_province_id"`
	ProductIsActive   bool       `gorm:"column:product_is_active;not null;default:true" json:"product_is_active"`
	ProductCreatedAt  time.Time  `gorm:"column:product_created_at;autoCreateTime" json:"product_created_at"`
	ProductUpdatedAt  time.Time  `gorm:"column:product_updated_at;autoUpdateTime" json:"product_updated_at"`
}

func (ProductModel) TableName() string {
	return "products"
}

func (m *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProductID == uuid.Nil {
		m.ProductID = uuid.New()
	}
	return nil
}
