package controllers

import (
	"licensing-backend/db/models"
	"licensing-backend/middleware"
	"licensing-backend/users/services"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SignUp is public. A requested Admin role is only honoured for a
// signed-in administrator; anyone else is registered as a User.
func (ac *AuthController) SignUp(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.RespondError(c, utils.NewBadRequestError("invalid request body"))
	}

	caller := middleware.CurrentUser(c)
	allowAdmin := caller != nil && caller.Role == models.RoleAdmin

	user, err := ac.Service.Register(c.Context(), input, allowAdmin)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, fiber.StatusCreated, "User registered", user)
}
