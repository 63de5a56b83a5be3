package dto

import (
	"time"

	"pasarku_backend/internals/features/chat/chat_ai/model"
)

type ChatAILogDTO struct {
	ChatAIID        string    `json:"chat_ai_id"`
	ChatAIPrompt    string    `json:"chat_ai_prompt"`
	ChatAIResponse  string    `json:"chat_ai_response"`
	ChatAICreatedAt time.Time `json:"chat_ai_created_at"`
}

type CreateChatAILogRequest struct {
	ChatAIPrompt   string `json:"chat_ai_prompt" validate:"required,min=1"`
	ChatAIResponse string `json:"chat_ai_response"`
}

func ToChatAILogDTO(m model.ChatAILogModel) ChatAILogDTO {
	return ChatAILogDTO{
		ChatAIID:        m.ChatAIID.String(),
		ChatAIPrompt:    m.ChatAIPrompt,
		ChatAIResponse:  m.ChatAIResponse,
		ChatAICreatedAt: m.ChatAICreatedAt,
	}
}
