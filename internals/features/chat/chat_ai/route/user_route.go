package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/chat/chat_ai/controller"
)

func ChatAIUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChatAIController(db)

	chat := api.Group("/chat-ai")
	chat.Post("/", ctrl.Create)
	chat.Get("/", ctrl.GetMine)
	chat.Delete("/:id", ctrl.Delete)
}
