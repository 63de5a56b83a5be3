package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/promotions/promotions/controller"
)

// PromotionAdminRoutes: kelola promo (khusus admin)
func PromotionAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPromotionController(db)

	promos := router.Group("/promotions")
	promos.Post("/", ctrl.Create)
	promos.Get("/", ctrl.GetAll)
	promos.Get("/:id", ctrl.GetByID)
	promos.Put("/:id", ctrl.Update)
	promos.Delete("/:id", ctrl.Delete)
}

// PromotionUserRoutes: validasi kode promo dari sisi pembeli
func PromotionUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPromotionController(db)

	promos := router.Group("/promotions")
	promos.Get("/validate/:code", ctrl.ValidateCode)
}
