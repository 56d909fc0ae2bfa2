package controllers

import (
	"licensing-backend/softwares/services"
	"licensing-backend/utils"
	"licensing-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type SoftwareController struct {
	Service *services.SoftwareService
}

func NewSoftwareController(service *services.SoftwareService) *SoftwareController {
	return &SoftwareController{Service: service}
}

func (sc *SoftwareController) AddSoftwareController(c *fiber.Ctx) error {
	var input services.AddSoftwareInput
	if err := c.BodyParser(&input); err != nil {
		return utils.RespondError(c, utils.NewBadRequestError("invalid request body"))
	}

	software, err := sc.Service.AddSoftware(c.Context(), input)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, fiber.StatusCreated, "Software added", software)
}

func (sc *SoftwareController) GetSoftwareController(c *fiber.Ctx) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}

	software, err := sc.Service.GetSoftware(c.Context(), id)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "Software retrieved", software)
}

func (sc *SoftwareController) GetSoftwaresController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return utils.RespondError(c, utils.NewBadRequestError("%s", err.Error()))
	}

	softwares, total, err := sc.Service.ListSoftwares(c.Context(), params.Offset(), params.PageSize)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "Softwares retrieved", pagination.NewPaginatedResponse(c, softwares, total, params))
}
