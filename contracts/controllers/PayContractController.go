package controllers

import (
	"licensing-backend/contracts/services"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func (cc *ContractController) PayContractController(c *fiber.Ctx) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}

	var input services.PayContractInput
	if err := c.BodyParser(&input); err != nil {
		return utils.RespondError(c, utils.NewBadRequestError("invalid request body"))
	}

	result, err := cc.Contracts.PayContract(c.Context(), id, input)
	if err != nil {
		return utils.RespondError(c, err)
	}

	message := "Payment recorded"
	if result.Signed {
		message = "Payment recorded, contract signed"
	}
	return utils.RespondOK(c, fiber.StatusOK, message, result)
}

func (cc *ContractController) ReturnPaymentController(c *fiber.Ctx) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}

	payment, err := cc.Contracts.ReturnPayment(c.Context(), id)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "Payment returned", payment)
}
