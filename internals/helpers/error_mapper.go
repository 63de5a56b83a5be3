package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IsDuplicateKey mendeteksi pelanggaran unique Postgres (SQLSTATE 23505).
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "unique failed") || // sqlite (test driver)
		strings.Contains(s, "23505")
}

// ParseUUIDParam membaca path param sebagai UUID.
// Format id yang rusak diperlakukan sama dengan id yang tidak ada (404).
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return id, nil
}

// ValidationMap meratakan error validator.v10 menjadi map field → tag.
func ValidationMap(err error) map[string]string {
	out := make(map[string]string)
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
