package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/chat/conversations/controller"
)

func ConversationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewConversationController(db)

	chat := api.Group("/chats")
	chat.Post("/", ctrl.SendMessage)            // 📨 kirim pesan (thread otomatis)
	chat.Get("/", ctrl.ListConversations)       // 📥 inbox
	chat.Get("/:id/messages", ctrl.GetThreadMessages)
	chat.Patch("/:id/read", ctrl.MarkRead)      // ✅ read receipt
	chat.Patch("/:id/archive", ctrl.Archive)    // 🗂️ flag arsip
}
