package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/promotions/promotion_products/controller"
)

// PromotionProductAdminRoutes: kelola produk di dalam promo (khusus admin)
func PromotionProductAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPromotionProductController(db)

	promos := router.Group("/promotions")
	promos.Post("/:id/products", ctrl.Link)
	promos.Get("/:id/products", ctrl.ListProducts)
	promos.Delete("/:id/products/:product_id", ctrl.Unlink)
}
