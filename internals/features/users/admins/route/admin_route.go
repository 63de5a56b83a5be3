package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/users/admins/controller"
	"pasarku_backend/internals/middlewares"
)

// AdminAuthRoutes: register & login (public, rate-limited)
func AdminAuthRoutes(api fiber.Router, db *gorm.DB) {
	adminCtrl := controller.NewAdminController(db)

	auth := api.Group("/admin")
	auth.Post("/register", middlewares.RegisterRateLimiter(), adminCtrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), adminCtrl.Login)
}

// AdminDirectoryRoutes: kelola admin (di belakang gate admin)
func AdminDirectoryRoutes(api fiber.Router, db *gorm.DB) {
	adminCtrl := controller.NewAdminController(db)

	admins := api.Group("/admins")
	admins.Get("/", adminCtrl.GetAll)
	admins.Get("/:id", adminCtrl.GetByID)
	admins.Patch("/:id", adminCtrl.Update)
}
