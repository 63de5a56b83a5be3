package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "pasarku_backend/internals/middlewares/auth"
	routeDetails "pasarku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	auth := app.Group("/api/auth")
	routeDetails.AuthRoutes(auth, db)

	// ===================== WEBHOOK (tanpa auth) =====================
	log.Println("[INFO] Setting up Webhook routes...")
	api := app.Group("/api")
	routeDetails.WebhookRoutes(api, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.PublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group (JWT)...")
	user := app.Group("/api/u", authMiddleware.AuthPengguna())
	routeDetails.UserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT + RoleCheck)...")
	admin := app.Group("/api/a", authMiddleware.AuthAdmin(db))
	routeDetails.AdminRoutes(admin, db)
}
