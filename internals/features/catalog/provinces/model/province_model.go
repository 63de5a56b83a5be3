package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProvinceModel struct {
	ProvinceID          uuid.UUID `gorm:"column:province_id;primaryKey;type:uuid" json:"province_id"`
	ProvinceName        string    `gorm:"column:province_name;type:varchar(100);not null;uniqueIndex" json:"province_name"`
	ProvinceCode        *string   `gorm:"column:province_code;type:varchar(10);uniqueIndex" json:"province_code"`
	ProvinceIsland      string    `gorm:"column:province_island;type:varchar(100)" json:"province_island"`
	ProvinceCapital     string    `gorm:"column:province_capital;type:varchar(100)" json:"province_capital"`
	ProvinceCoordinates string    `gorm:"column:province_coordinates;type:varchar(100)" json:"province_coordinates"`
	ProvinceMapImageURL string    `gorm:"column:province_map_image_url;type:text" json:"province_map_image_url"`
	ProvinceCreatedAt   time.Time `gorm:"column:province_created_at;autoCreateTime" json:"province_created_at"`
	ProvinceUpdatedAt   time.Time `gorm:"column:province_updated_at;autoUpdateTime" json:"province_updated_at"`
}

func (ProvinceModel) TableName() string {
	return "provinces"
}

func (m *ProvinceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProvinceID == uuid.Nil {
		m.ProvinceID = uuid.New()
	}
	return nil
}
