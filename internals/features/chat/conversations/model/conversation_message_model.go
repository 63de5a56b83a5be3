package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationMessageModel struct {
	MessageID             uuid.UUID `gorm:"column:message_id;primaryKey;type:uuid" json:"message_id"`
	MessageConversationID uuid.UUID `gorm:"column:message_conversation_id;type:uuid;not null;index" json:"message_conversation_id"`
	MessageSenderID       uuid.UUID `gorm:"column:message_sender_id;type:uuid;not null" json:"message_sender_id"`
	MessageBody           string    `gorm:"column:message_body;type:text;not null" json:"message_body"`
	MessageIsRead         bool      `gorm:"column:message_is_read;not null;default:false" json:"message_is_read"`
	MessageCreatedAt      time.Time `gorm:"column:message_created_at;autoCreateTime" json:"message_created_at"`
}

func (ConversationMessageModel) TableName() string {
	return "conversation_messages"
}

func (m *ConversationMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.MessageID == uuid.Nil {
		m.MessageID = uuid.New()
	}
	return nil
}
