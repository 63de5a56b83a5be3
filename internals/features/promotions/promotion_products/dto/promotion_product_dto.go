package dto

import (
	"time"

	"pasarku_backend/internals/features/promotions/promotion_products/model"
)

type LinkProductRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
}

type PromotionProductDTO struct {
	PromotionProductID string    `json:"promotion_product_id"`
	PromotionID        string    `json:"promotion_id"`
	ProductID          string    `json:"product_id"`
	CreatedAt          time.Time `json:"created_at"`
}

func ToPromotionProductDTO(m model.PromotionProductModel) PromotionProductDTO {
	return PromotionProductDTO{
		PromotionProductID: m.PromotionProductID.String(),
		PromotionID:        m.PromotionProductPromotionID.String(),
		ProductID:          m.PromotionProductProductID.String(),
		CreatedAt:          m.PromotionProductCreatedAt,
	}
}
