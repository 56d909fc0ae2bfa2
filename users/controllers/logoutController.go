package controllers

import (
	"licensing-backend/config"
	"licensing-backend/middleware"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (ac *AuthController) SignOut(c *fiber.Ctx) error {
	if err := middleware.RevokeSession(c, ac.App); err != nil {
		return utils.RespondError(c, utils.NewInternalError("could not end session", err))
	}
	config.Logger.Info("User signed out", zap.String("client_ip", c.IP()))
	return utils.RespondOK(c, fiber.StatusOK, "Signed out", nil)
}
