package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/catalog/provinces/controller"
)

// ProvinceAdminRoutes: CRUD provinsi untuk admin
func ProvinceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProvinceController(db)

	provinces := api.Group("/provinces")
	provinces.Post("/", ctrl.Create)
	provinces.Get("/", ctrl.GetAll)
	provinces.Get("/:id", ctrl.GetByID)
	provinces.Patch("/:id", ctrl.Update)
	provinces.Delete("/:id", ctrl.Delete)
}

// ProvincePublicRoutes: read-only untuk SPA publik
func ProvincePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProvinceController(db)

	provinces := api.Group("/provinces")
	provinces.Get("/", ctrl.GetAll)
	provinces.Get("/:id", ctrl.GetByID)
}
