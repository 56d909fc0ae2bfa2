package controllers

import (
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// DeleteClientController tombstones an individual; companies get a 400.
func (cc *ClientController) DeleteClientController(c *fiber.Ctx) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}

	if _, err := cc.Service.DeleteClient(c.Context(), id); err != nil {
		return utils.RespondError(c, err)
	}

	return utils.RespondOK(c, fiber.StatusOK, "Client deleted", nil)
}
