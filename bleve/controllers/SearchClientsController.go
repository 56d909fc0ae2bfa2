package controllers

import (
	"strings"

	"licensing-backend/bleve/repositories"
	"licensing-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultSearchSize = 20
	maxSearchSize     = 100
)

// SearchController answers full-text client lookups from the bleve index.
type SearchController struct {
	clients repositories.BleveRepositoryInterface
}

func NewSearchController(clients repositories.BleveRepositoryInterface) *SearchController {
	return &SearchController{clients: clients}
}

func (sc *SearchController) SearchClientsController(ctx *fiber.Ctx) error {
	query := strings.TrimSpace(ctx.Query("q"))
	if query == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Search query is required",
			"data":    nil,
			"error":   "Missing q parameter",
		})
	}

	size := ctx.QueryInt("size", defaultSearchSize)
	if size < 1 || size > maxSearchSize {
		size = defaultSearchSize
	}

	results, err := sc.clients.SearchClients(query, size)
	if err != nil {
		config.Logger.Error("Client search failed", zap.String("query", query), zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Search failed",
			"data":    nil,
			"error":   "Search failed",
		})
	}

	return ctx.JSON(fiber.Map{
		"message": "Search completed",
		"data":    results,
		"error":   nil,
	})
}
