package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pasarku_backend/internals/features/users/pengguna/controller"
	"pasarku_backend/internals/middlewares"
)

// PenggunaAuthRoutes: register & login pengguna (public, rate-limited)
func PenggunaAuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPenggunaController(db)

	auth := api.Group("/user")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// PenggunaRoutes: profil pengguna login
func PenggunaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPenggunaController(db)
	api.Get("/me", ctrl.Me)
}
