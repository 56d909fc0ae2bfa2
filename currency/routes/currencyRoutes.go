package routes

import (
	"licensing-backend/currency/controllers"
	"licensing-backend/db/models"
	"licensing-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func CurrencyInitRoutes(api fiber.Router, controller *controllers.CurrencyController) {
	group := api.Group("/currency")
	group.Get("/rates/:code", controller.GetRate)
	group.Delete("/cache", middleware.RequireRole(models.RoleAdmin), controller.InvalidateCache)
}
