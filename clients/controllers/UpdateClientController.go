package controllers

import (
	"licensing-backend/clients/services"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func (cc *ClientController) UpdateClientController(c *fiber.Ctx) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}

	var input services.UpdateClientInput
	if err := c.BodyParser(&input); err != nil {
		return utils.RespondError(c, utils.NewBadRequestError("invalid request body"))
	}

	client, err := cc.Service.UpdateClient(c.Context(), id, input)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.RespondOK(c, fiber.StatusOK, "Client updated", client)
}
