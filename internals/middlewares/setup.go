package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares memasang middleware global (urutan penting).
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Setting up global middlewares...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
