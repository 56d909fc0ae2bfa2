package middleware

import (
	"errors"

	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the fiber fallback for errors returned from handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"message": fe.Message,
			"data":    nil,
			"error":   fe.Message,
		})
	}
	return utils.RespondError(c, err)
}
