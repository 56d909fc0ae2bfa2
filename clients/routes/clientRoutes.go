package routes

import (
	"licensing-backend/clients/controllers"
	"licensing-backend/db/models"
	"licensing-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

// ClientInitRoutes registers the client endpoints on an authenticated router.
// Income endpoints live with the income module.
func ClientInitRoutes(api fiber.Router, controller *controllers.ClientController) {
	admin := middleware.RequireRole(models.RoleAdmin)

	group := api.Group("/clients")
	group.Get("/", controller.GetFilteredClientsController)
	group.Post("/", admin, controller.AddClientController)
	group.Post("/reindex", admin, controller.ReindexClientsController)
	group.Get("/:id", controller.GetClientController)
	group.Put("/:id", admin, controller.UpdateClientController)
	group.Delete("/:id", admin, controller.DeleteClientController)
}
