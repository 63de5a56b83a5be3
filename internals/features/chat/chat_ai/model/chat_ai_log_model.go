package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatAILogModel struct {
	ChatAIID        uuid.UUID `gorm:"column:chat_ai_id;primaryKey;type:uuid" json:"chat_ai_id"`
	ChatAIUserID    uuid.UUID `gorm:"column:chat_ai_user_id;type:uuid;not null;index" json:"chat_ai_user_id"`
	ChatAIPrompt    string    `gorm:"column:chat_ai_prompt;type:text;not null" json:"chat_ai_prompt"`
	ChatAIResponse  string    `gorm:"column:chat_ai_response;type:text" json:"chat_ai_response"`
	ChatAICreatedAt time.Time `gorm:"column:chat_ai_created_at;autoCreateTime" json:"chat_ai_created_at"`
}

func (ChatAILogModel) TableName() string {
	return "chat_ai_logs"
}

func (m *ChatAILogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChatAIID == uuid.Nil {
		m.ChatAIID = uuid.New()
	}
	return nil
}
