package controllers

import (
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func (cc *ContractController) GetContractController(c *fiber.Ctx) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}

	summary, err := cc.Contracts.GetContract(c.Context(), id)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "Contract retrieved", summary)
}

func (cc *ContractController) GetContractPaymentsController(c *fiber.Ctx) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}

	payments, err := cc.Contracts.ListPayments(c.Context(), id)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "Payments retrieved", payments)
}
