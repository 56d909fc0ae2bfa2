package utils

import (
	"licensing-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RespondError writes err in the standard envelope. Server-side failures are
// logged with their cause, client errors at debug level only.
func RespondError(c *fiber.Ctx, err error) error {
	status := StatusCode(err)
	msg := PublicMessage(err)

	if status >= fiber.StatusInternalServerError {
		config.Logger.Error(msg,
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Error(err))
	} else {
		config.Logger.Debug(msg, zap.String("path", c.Path()), zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{
		"message": msg,
		"data":    nil,
		"error":   msg,
	})
}

func RespondOK(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"data":    data,
		"error":   nil,
	})
}
