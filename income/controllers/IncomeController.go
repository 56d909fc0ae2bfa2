package controllers

import (
	"context"

	"licensing-backend/income/services"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IncomeController struct {
	Service *services.IncomeService
}

func NewIncomeController(service *services.IncomeService) *IncomeController {
	return &IncomeController{Service: service}
}

type incomeFunc func(ctx context.Context, id uuid.UUID, currency string) (*services.Income, error)

func respondIncome(c *fiber.Ctx, message string, fn incomeFunc) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}

	income, err := fn(c.Context(), id, c.Query("currency"))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, message, income)
}

func (ic *IncomeController) ClientIncomeController(c *fiber.Ctx) error {
	return respondIncome(c, "Client income retrieved", ic.Service.ClientIncome)
}

func (ic *IncomeController) ClientExpectedIncomeController(c *fiber.Ctx) error {
	return respondIncome(c, "Client expected income retrieved", ic.Service.ClientExpectedIncome)
}

func (ic *IncomeController) SoftwareIncomeController(c *fiber.Ctx) error {
	return respondIncome(c, "Software income retrieved", ic.Service.SoftwareIncome)
}

func (ic *IncomeController) SoftwareExpectedIncomeController(c *fiber.Ctx) error {
	return respondIncome(c, "Software expected income retrieved", ic.Service.SoftwareExpectedIncome)
}
