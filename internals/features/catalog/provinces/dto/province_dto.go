package dto

import (
	"time"

	"pasarku_backend/internals/features/catalog/provinces/model"
)

type ProvinceDTO struct {
	ProvinceID          string    `json:"province_id"`
	ProvinceName        string    `json:"province_name"`
	ProvinceCode        *string   `json:"province_code"`
	ProvinceIsland      string    `json:"province_island"`
	ProvinceCapital     string    `json:"province_capital"`
	ProvinceCoordinates string    `json:"province_coordinates"`
	ProvinceMapImageURL string    `json:"province_map_image_url"`
	ProvinceCreatedAt   time.Time `json:"province_created_at"`
}

type CreateProvinceRequest struct {
	ProvinceName        string  `json:"province_name" validate:"required,min=3"`
	ProvinceCode        *string `json:"province_code" validate:"omitempty,min=2,max=10"`
	ProvinceIsland      string  `json:"province_island"`
	ProvinceCapital     string  `json:"province_capital"`
	ProvinceCoordinates string  `json:"province_coordinates"`
	ProvinceMapImageURL string  `json:"province_map_image_url" validate:"omitempty,url"`
}

type UpdateProvinceRequest struct {
	ProvinceName        *string `json:"province_name" validate:"omitempty,min=3"`
	ProvinceCode        *string `json:"province_code" validate:"omitempty,min=2,max=10"`
	ProvinceIsland      *string `json:"province_island"`
	ProvinceCapital     *string `json:"province_capital"`
	ProvinceCoordinates *string `json:"province_coordinates"`
	ProvinceMapImageURL *string `json:"province_map_image_url" validate:"omitempty,url"`
}

func ToProvinceDTO(m model.ProvinceModel) ProvinceDTO {
	return ProvinceDTO{
		ProvinceID:          m.ProvinceID.String(),
		ProvinceName:        m.ProvinceName,
		ProvinceCode:        m.ProvinceCode,
		ProvinceIsland:      m.ProvinceIsland,
		ProvinceCapital:     m.ProvinceCapital,
		ProvinceCoordinates: m.ProvinceCoordinates,
		ProvinceMapImageURL: m.ProvinceMapImageURL,
		ProvinceCreatedAt:   m.ProvinceCreatedAt,
	}
}
