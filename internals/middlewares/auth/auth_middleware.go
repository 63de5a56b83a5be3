package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pasarku_backend/internals/configs"
	"pasarku_backend/internals/constants"
	adminModel "pasarku_backend/internals/features/users/admins/model"
)

// Public webhook path yang di-skip auth
var skipPaths = map[string]struct{}{
	"/api/payments/notification": {},
}

// AuthPengguna memverifikasi bearer token & menaruh identitas pengguna di Locals.
func AuthPengguna() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		claims, err := parseToken(c)
		if err != nil {
			return err
		}

		userID, err := extractID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", userID.String())
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
		return c.Next()
	}
}

// AuthAdmin memverifikasi bearer token admin: role harus super_admin/moderator
// dan akun masih aktif.
func AuthAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseToken(c)
		if err != nil {
			return err
		}

		adminID, err := extractID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing admin ID")
		}

		role, _ := claims["role"].(string)
		if !constants.IsAdminRole(role) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(c.Path()))
		}

		// akun nonaktif tidak boleh lewat walau token masih hidup
		var admin adminModel.AdminModel
		if err := db.Select("admin_id", "admin_status").
			First(&admin, "admin_id = ?", adminID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Admin not found")
			}
			log.Println("[ERROR] DB error saat cek admin:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if admin.AdminStatus != constants.StatusAktif {
			return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}

		c.Locals("admin_id", adminID.String())
		c.Locals("role", role)
		return c.Next()
	}
}

/* ==========================
   Internal helpers
========================== */

func parseToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	tokenString, err := extractBearerToken(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	secretKey := configs.JWTSecret
	if secretKey == "" {
		log.Println("[ERROR] JWT_SECRET kosong")
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}); err != nil {
		log.Println("[ERROR] Gagal parse token:", err)
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
	}

	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
	}
	return claims, nil
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Unauthorized - No token provided")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("Unauthorized - Invalid token format")
	}
	return strings.TrimSpace(parts[1]), nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim missing")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp claim invalid")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("id claim missing")
	}
	return uuid.Parse(raw)
}
