package controllers

import (
	"strings"

	"licensing-backend/db/models"
	"licensing-backend/utils"
	"licensing-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

func (cc *ClientController) GetClientController(c *fiber.Ctx) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.RespondError(c, err)
	}

	client, err := cc.Service.GetClient(c.Context(), id)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.RespondOK(c, fiber.StatusOK, "Client retrieved", client)
}

// GetFilteredClientsController lists clients page by page, optionally
// narrowed with ?kind=COMPANY|INDIVIDUAL.
func (cc *ClientController) GetFilteredClientsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return utils.RespondError(c, utils.NewBadRequestError("%s", err.Error()))
	}

	kind := models.ClientKind(strings.ToUpper(params.Filters["kind"]))
	clients, total, err := cc.Service.ListClients(c.Context(), kind, params.Offset(), params.PageSize)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.RespondOK(c, fiber.StatusOK, "Clients retrieved", pagination.NewPaginatedResponse(c, clients, total, params))
}

func (cc *ClientController) ReindexClientsController(c *fiber.Ctx) error {
	count, err := cc.Service.ReindexClients(c.Context())
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "Clients reindexed", fiber.Map{"indexed": count})
}
