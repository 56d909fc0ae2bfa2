package controllers

import (
	"licensing-backend/middleware"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// Me returns the signed-in user.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	payload := middleware.CurrentUser(c)
	if payload == nil {
		return utils.RespondError(c, utils.NewUnauthorizedError("Authentication required"))
	}

	user, err := ac.Service.GetUser(c.Context(), payload.UserID)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "User retrieved", user)
}
