package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatAIRoute "pasarku_backend/internals/features/chat/chat_ai/route"
	conversationRoute "pasarku_backend/internals/features/chat/conversations/route"
	transactionRoute "pasarku_backend/internals/features/finance/transactions/route"
	promotionRoute "pasarku_backend/internals/features/promotions/promotions/route"
	penggunaRoute "pasarku_backend/internals/features/users/pengguna/route"
)

// UserRoutes: seluruh fitur yang butuh login pengguna
func UserRoutes(api fiber.Router, db *gorm.DB) {
	penggunaRoute.PenggunaRoutes(api, db)
	conversationRoute.ConversationUserRoutes(api, db)
	chatAIRoute.ChatAIUserRoutes(api, db)
	transactionRoute.TransactionUserRoutes(api, db)
	promotionRoute.PromotionUserRoutes(api, db)
}
