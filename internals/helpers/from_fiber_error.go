package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// JsonFromError menerjemahkan *fiber.Error dari service layer ke response JSON;
// error lain dibungkus sebagai 500 generik (detail sudah dilog di service).
func JsonFromError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
