package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	productRoute "pasarku_backend/internals/features/catalog/products/route"
	provinceRoute "pasarku_backend/internals/features/catalog/provinces/route"
	transactionRoute "pasarku_backend/internals/features/finance/transactions/route"
	promotionProductRoute "pasarku_backend/internals/features/promotions/promotion_products/route"
	promotionRoute "pasarku_backend/internals/features/promotions/promotions/route"
	adminRoute "pasarku_backend/internals/features/users/admins/route"
)

// AdminRoutes: seluruh fitur yang digate role admin
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	adminRoute.AdminDirectoryRoutes(api, db)
	provinceRoute.ProvinceAdminRoutes(api, db)
	productRoute.ProductAdminRoutes(api, db)
	promotionRoute.PromotionAdminRoutes(api, db)
	promotionProductRoute.PromotionProductAdminRoutes(api, db)
	transactionRoute.TransactionAdminRoutes(api, db)
}
