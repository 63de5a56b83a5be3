package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionModel: entri ledger transaksi. Append-mostly; status hanya
// bergerak pending → success atau pending → failed.
type TransactionModel struct {
	TransactionID uuid.UUID `json:"transaction_id" gorm:"column:transaction_id;type:uuid;primaryKey"`

	TransactionUserID  uuid.UUID `json:"transaction_user_id" gorm:"column:transaction_user_id;type:uuid;not null;index"`
	TransactionOrderID string    `json:"transaction_order_id" gorm:"column:transaction_order_id;type:varchar(64);not null;uniqueIndex"`
	TransactionPaymentID *string `json:"transaction_payment_id,omitempty" gorm:"column:transaction_payment_id;type:varchar(128)"`

	TransactionType          string `json:"transaction_type" gorm:"column:transaction_type;type:varchar(20);not null"` // pemasukan|pengeluaran
	TransactionAmount        int64  `json:"transaction_amount" gorm:"column:transaction_amount;not null"`
	TransactionPaymentMethod string `json:"transaction_payment_method" gorm:"column:transaction_payment_method;type:varchar(50)"`
	TransactionStatus        string `json:"transaction_status" gorm:"column:transaction_status;type:varchar(20);not null;default:pending;index"` // pending|success|failed

	TransactionPaidAt    *time.Time `json:"transaction_paid_at,omitempty" gorm:"column:transaction_paid_at"`
	TransactionCreatedAt time.Time  `json:"transaction_created_at" gorm:"column:transaction_created_at;autoCreateTime"`
	TransactionUpdatedAt time.Time  `json:"transaction_updated_at" gorm:"column:transaction_updated_at;autoUpdateTime"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (m *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if m.TransactionID == uuid.Nil {
		m.TransactionID = uuid.New()
	}
	return nil
}
