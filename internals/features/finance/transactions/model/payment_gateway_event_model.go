package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentGatewayEventModel: arsip mentah notifikasi webhook gateway pembayaran.
// Payload disimpan apa adanya supaya bisa diaudit ulang.
type PaymentGatewayEventModel struct {
	PaymentGatewayEventID uuid.UUID `json:"payment_gateway_event_id" gorm:"column:payment_gateway_event_id;type:uuid;primaryKey"`

	PaymentGatewayEventOrderID string         `json:"payment_gateway_event_order_id" gorm:"column:payment_gateway_event_order_id;type:varchar(64);not null;index"`
	PaymentGatewayEventStatus  string         `json:"payment_gateway_event_status" gorm:"column:payment_gateway_event_status;type:varchar(30);not null"`
	PaymentGatewayEventPayload datatypes.JSON `json:"payment_gateway_event_payload" gorm:"column:payment_gateway_event_payload;type:jsonb"`

	PaymentGatewayEventCreatedAt time.Time `json:"payment_gateway_event_created_at" gorm:"column:payment_gateway_event_created_at;autoCreateTime"`
}

func (PaymentGatewayEventModel) TableName() string {
	return "payment_gateway_events"
}

func (m *PaymentGatewayEventModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentGatewayEventID == uuid.Nil {
		m.PaymentGatewayEventID = uuid.New()
	}
	return nil
}
