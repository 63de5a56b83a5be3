package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "pasarku_backend/internals/features/users/admins/route"
	penggunaRoute "pasarku_backend/internals/features/users/pengguna/route"
)

// AuthRoutes: register & login untuk admin dan pengguna (tanpa JWT)
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	adminRoute.AdminAuthRoutes(api, db)
	penggunaRoute.PenggunaAuthRoutes(api, db)
}
