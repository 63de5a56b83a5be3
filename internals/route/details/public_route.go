package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	productRoute "pasarku_backend/internals/features/catalog/products/route"
	provinceRoute "pasarku_backend/internals/features/catalog/provinces/route"
	transactionRoute "pasarku_backend/internals/features/finance/transactions/route"
)

// PublicRoutes: katalog read-only tanpa login
func PublicRoutes(api fiber.Router, db *gorm.DB) {
	provinceRoute.ProvincePublicRoutes(api, db)
	productRoute.ProductPublicRoutes(api, db)
}

// WebhookRoutes: callback gateway pembayaran (auth di-skip)
func WebhookRoutes(api fiber.Router, db *gorm.DB) {
	transactionRoute.PaymentWebhookRoutes(api, db)
}
