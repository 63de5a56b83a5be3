package dto

import (
	"time"

	"pasarku_backend/internals/features/catalog/products/model"
)

type ProductDTO struct {
	ProductID         string    `json:"product_id"`
	ProductName       string    `json:"product_name"`
	ProductPrice      int64     `json:"product_price"`
	ProductProvinceID *string   `json:"product_province_id"`
	ProductIsActive   bool      `json:"product_is_active"`
	ProductCreatedAt  time.Time `json:"product_created_at"`
}

type CreateProductRequest struct {
	ProductName       string  `json:"product_name" validate:"required,min=3"`
	ProductPrice      int64   `json:"product_price" validate:"required,gt=0"`
	ProductProvinceID *string `json:"product_province_id" validate:"omitempty,uuid4"`
}

type UpdateProductRequest struct {
	ProductName       *string `json:"product_name" validate:"omitempty,min=3"`
	ProductPrice      *int64  `json:"product_price" validate:"omitempty,gt=0"`
	ProductProvinceID *string `json:"product_province_id" validate:"omitempty,uuid4"`
	ProductIsActive   *bool   `json:"product_is_active"`
}

func ToProductDTO(m model.ProductModel) ProductDTO {
	var provinceID *string
	if m.ProductProvinceID != nil {
		s := m.ProductProvinceID.String()
		provinceID = &s
	}
	return ProductDTO{
		ProductID:         m.ProductID.String(),
		ProductName:       m.ProductName,
		ProductPrice:      m.ProductPrice,
		ProductProvinceID: provinceID,
		ProductIsActive:   m.ProductIsActive,
		ProductCreatedAt:  m.ProductCreatedAt,
	}
}
