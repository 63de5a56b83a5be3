package dto

import (
	"time"

	"pasarku_backend/internals/features/chat/conversations/model"
)

// ============================
// Request DTO
// ============================

type SendMessageRequest struct {
	ReceiverID string  `json:"receiver_id" validate:"required,uuid4"`
	Body       string  `json:"body" validate:"required,min=1"`
	ProductID  *string `json:"product_id" validate:"omitempty,uuid4"` // hanya dipakai saat thread baru dibuat
}

// ============================
// Response DTO
// ============================

type MessageDTO struct {
	MessageID        string    `json:"message_id"`
	SenderID         string    `json:"sender_id"`
	SenderName       string    `json:"sender_name,omitempty"`
	Body             string    `json:"body"`
	IsRead           bool      `json:"is_read"`
	MessageCreatedAt time.Time `json:"created_at"`
}

type ConversationDTO struct {
	ConversationID string       `json:"conversation_id"`
	SenderID       string       `json:"sender_id"`
	ReceiverID     string       `json:"receiver_id"`
	ProductID      *string      `json:"product_id"`
	IsArchived     bool         `json:"is_archived"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Messages       []MessageDTO `json:"messages,omitempty"`
}

// Ringkasan untuk daftar percakapan (inbox)
type ConversationSummaryDTO struct {
	ConversationID  string    `json:"conversation_id"`
	CounterpartID   string    `json:"counterpart_id"`
	CounterpartName string    `json:"counterpart_name,omitempty"`
	ProductID       *string   `json:"product_id"`
	ProductName     string    `json:"product_name,omitempty"`
	LastMessage     string    `json:"last_message,omitempty"`
	UnreadCount     int64     `json:"unread_count"`
	IsArchived      bool      `json:"is_archived"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ============================
// Converter
// ============================

func ToMessageDTO(m model.ConversationMessageModel, senderName string) MessageDTO {
	return MessageDTO{
		MessageID:        m.MessageID.String(),
		SenderID:         m.MessageSenderID.String(),
		SenderName:       senderName,
		Body:             m.MessageBody,
		IsRead:           m.MessageIsRead,
		MessageCreatedAt: m.MessageCreatedAt,
	}
}

func ToConversationDTO(m model.ConversationModel) ConversationDTO {
	var productID *string
	if m.ConversationProductID != nil {
		s := m.ConversationProductID.String()
		productID = &s
	}
	msgs := make([]MessageDTO, 0, len(m.Messages))
	for _, msg := range m.Messages {
		msgs = append(msgs, ToMessageDTO(msg, ""))
	}
	return ConversationDTO{
		ConversationID: m.ConversationID.String(),
		SenderID:       m.ConversationSenderID.String(),
		ReceiverID:     m.ConversationReceiverID.String(),
		ProductID:      productID,
		IsArchived:     m.ConversationIsArchived,
		CreatedAt:      m.ConversationCreatedAt,
		UpdatedAt:      m.ConversationUpdatedAt,
		Messages:       msgs,
	}
}
