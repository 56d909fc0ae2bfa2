package controllers

import (
	"licensing-backend/clients/services"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func (cc *ClientController) AddClientController(c *fiber.Ctx) error {
	var input services.AddClientInput
	if err := c.BodyParser(&input); err != nil {
		return utils.RespondError(c, utils.NewBadRequestError("invalid request body"))
	}

	client, err := cc.Service.AddClient(c.Context(), input)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.RespondOK(c, fiber.StatusCreated, "Client created", client)
}
