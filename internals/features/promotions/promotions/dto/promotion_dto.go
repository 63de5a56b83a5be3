package dto

import (
	"time"

	"gorm.io/datatypes"

	"pasarku_backend/internals/features/promotions/promotions/model"
)

type PromotionDTO struct {
	PromotionID            string         `json:"promotion_id"`
	PromotionCode          string         `json:"promotion_code"`
	PromotionName          string         `json:"promotion_name"`
	PromotionDiscountType  string         `json:"promotion_discount_type"`
	PromotionDiscountValue int64          `json:"promotion_discount_value"`
	PromotionScope         datatypes.JSON `json:"promotion_scope"`
	PromotionIsActive      bool           `json:"promotion_is_active"`
	PromotionStartsAt      *time.Time     `json:"promotion_starts_at"`
	PromotionEndsAt        *time.Time     `json:"promotion_ends_at"`
	PromotionCreatedAt     time.Time      `json:"promotion_created_at"`
}

type CreatePromotionRequest struct {
	PromotionCode          string         `json:"promotion_code" validate:"required,min=3,max=50"`
	PromotionName          string         `json:"promotion_name" validate:"required,min=3"`
	PromotionDiscountType  string         `json:"promotion_discount_type" validate:"required,oneof=percent nominal"`
	PromotionDiscountValue int64          `json:"promotion_discount_value" validate:"required,gt=0"`
	PromotionScope         datatypes.JSON `json:"promotion_scope"`
	PromotionStartsAt      *time.Time     `json:"promotion_starts_at"`
	PromotionEndsAt        *time.Time     `json:"promotion_ends_at"`
}

type UpdatePromotionRequest struct {
	PromotionCode          *string        `json:"promotion_code" validate:"omitempty,min=3,max=50"`
	PromotionName          *string        `json:"promotion_name" validate:"omitempty,min=3"`
	PromotionDiscountType  *string        `json:"promotion_discount_type" validate:"omitempty,oneof=percent nominal"`
	PromotionDiscountValue *int64         `json:"promotion_discount_value" validate:"omitempty,gt=0"`
	PromotionScope         datatypes.JSON `json:"promotion_scope"`
	PromotionIsActive      *bool          `json:"promotion_is_active"`
	PromotionStartsAt      *time.Time     `json:"promotion_starts_at"`
	PromotionEndsAt        *time.Time     `json:"promotion_ends_at"`
}

func ToPromotionDTO(m model.PromotionModel) PromotionDTO {
	return PromotionDTO{
		PromotionID:            m.PromotionID.String(),
		PromotionCode:          m.PromotionCode,
		PromotionName:          m.PromotionName,
		PromotionDiscountType:  m.PromotionDiscountType,
		PromotionDiscountValue: m.PromotionDiscountValue,
		PromotionScope:         m.PromotionScope,
		PromotionIsActive:      m.PromotionIsActive,
		PromotionStartsAt:      m.PromotionStartsAt,
		PromotionEndsAt:        m.PromotionEndsAt,
		PromotionCreatedAt:     m.PromotionCreatedAt,
	}
}
