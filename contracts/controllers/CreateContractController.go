package controllers

import (
	"licensing-backend/contracts/services"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func (cc *ContractController) CreateContractController(c *fiber.Ctx) error {
	var input services.CreateContractInput
	if err := c.BodyParser(&input); err != nil {
		return utils.RespondError(c, utils.NewBadRequestError("invalid request body"))
	}

	contract, err := cc.Contracts.CreateContract(c.Context(), input)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.RespondOK(c, fiber.StatusCreated, "Contract created", contract)
}
