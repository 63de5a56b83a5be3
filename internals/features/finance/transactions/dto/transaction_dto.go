package dto

import (
	"time"

	"pasarku_backend/internals/features/finance/transactions/model"
)

type CreateTransactionRequest struct {
	TransactionType          string `json:"transaction_type" validate:"required,oneof=pemasukan pengeluaran"`
	TransactionAmount        int64  `json:"transaction_amount" validate:"required,gt=0"`
	TransactionPaymentMethod string `json:"transaction_payment_method" validate:"omitempty,max=50"`
}

type UpdateTransactionStatusRequest struct {
	TransactionStatus string `json:"transaction_status" validate:"required,oneof=success failed"`
}

type ChangePaymentMethodRequest struct {
	TransactionPaymentMethod string `json:"transaction_payment_method" validate:"required,max=50"`
}

type TransactionDTO struct {
	TransactionID            string     `json:"transaction_id"`
	TransactionUserID        string     `json:"transaction_user_id"`
	TransactionOrderID       string     `json:"transaction_order_id"`
	TransactionPaymentID     *string    `json:"transaction_payment_id,omitempty"`
	TransactionType          string     `json:"transaction_type"`
	TransactionAmount        int64      `json:"transaction_amount"`
	TransactionPaymentMethod string     `json:"transaction_payment_method"`
	TransactionStatus        string     `json:"transaction_status"`
	TransactionPaidAt        *time.Time `json:"transaction_paid_at,omitempty"`
	TransactionCreatedAt     time.Time  `json:"transaction_created_at"`
	SnapToken                string     `json:"snap_token,omitempty"`
}

func ToTransactionDTO(m model.TransactionModel) TransactionDTO {
	return TransactionDTO{
		TransactionID:            m.TransactionID.String(),
		TransactionUserID:        m.TransactionUserID.String(),
		TransactionOrderID:       m.TransactionOrderID,
		TransactionPaymentID:     m.TransactionPaymentID,
		TransactionType:          m.TransactionType,
		TransactionAmount:        m.TransactionAmount,
		TransactionPaymentMethod: m.TransactionPaymentMethod,
		TransactionStatus:        m.TransactionStatus,
		TransactionPaidAt:        m.TransactionPaidAt,
		TransactionCreatedAt:     m.TransactionCreatedAt,
	}
}
