package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/catalog/products/controller"
)

// ProductAdminRoutes: CRUD produk untuk admin
func ProductAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProductController(db)

	products := api.Group("/products")
	products.Post("/", ctrl.Create)
	products.Get("/", ctrl.GetAll)
	products.Get("/:id", ctrl.GetByID)
	products.Patch("/:id", ctrl.Update)
	products.Delete("/:id", ctrl.Delete)
}

// ProductPublicRoutes: read-only untuk SPA publik
func ProductPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProductController(db)

	products := api.Group("/products")
	products.Get("/", ctrl.GetAll)
	products.Get("/:id", ctrl.GetByID)
}
