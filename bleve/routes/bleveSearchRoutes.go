package routes

import (
	"licensing-backend/bleve/controllers"

	"github.com/gofiber/fiber/v2"
)

// InitBleveRoutes must be registered before the client routes so that
// /clients/search is not taken for a client id.
func InitBleveRoutes(api fiber.Router, controller *controllers.SearchController) {
	api.Get("/clients/search", controller.SearchClientsController)
}
