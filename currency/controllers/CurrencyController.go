package controllers

import (
	"licensing-backend/config"
	"licensing-backend/currency/services"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CurrencyController struct {
	Converter *services.Converter
	Rates     services.RateProvider
	Cache     *services.CachedRateProvider
}

func NewCurrencyController(converter *services.Converter, cache *services.CachedRateProvider) *CurrencyController {
	return &CurrencyController{Converter: converter, Rates: cache, Cache: cache}
}

// GetRate returns the rate from the base currency to :code.
func (cc *CurrencyController) GetRate(c *fiber.Ctx) error {
	target, err := services.ValidateCurrency(c.Params("code"))
	if err != nil {
		return utils.RespondError(c, err)
	}

	rate, err := cc.Rates.GetRate(c.Context(), cc.Converter.Base(), target)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.RespondOK(c, fiber.StatusOK, "Exchange rate retrieved", fiber.Map{
		"base":   cc.Converter.Base(),
		"target": target,
		"rate":   rate,
	})
}

func (cc *CurrencyController) InvalidateCache(c *fiber.Ctx) error {
	removed, err := cc.Cache.Invalidate(c.Context())
	if err != nil {
		return utils.RespondError(c, utils.NewInternalError("could not clear rate cache", err))
	}
	config.Logger.Info("Exchange rate cache cleared", zap.Int("removed", removed))
	return utils.RespondOK(c, fiber.StatusOK, "Exchange rate cache cleared", fiber.Map{"removed": removed})
}
