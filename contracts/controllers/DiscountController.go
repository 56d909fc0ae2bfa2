package controllers

import (
	"licensing-backend/contracts/services"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func (cc *ContractController) AddDiscountController(c *fiber.Ctx) error {
	var input services.AddDiscountInput
	if err := c.BodyParser(&input); err != nil {
		return utils.RespondError(c, utils.NewBadRequestError("invalid request body"))
	}

	discount, err := cc.Discounts.AddDiscount(c.Context(), input)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, fiber.StatusCreated, "Discount added", discount)
}

func (cc *ContractController) GetDiscountsController(c *fiber.Ctx) error {
	discounts, err := cc.Discounts.ListDiscounts(c.Context())
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "Discounts retrieved", discounts)
}
