package routes

import (
	"licensing-backend/db/models"
	"licensing-backend/middleware"
	"licensing-backend/softwares/controllers"

	"github.com/gofiber/fiber/v2"
)

func SoftwareInitRoutes(api fiber.Router, controller *controllers.SoftwareController) {
	group := api.Group("/softwares")
	group.Get("/", controller.GetSoftwaresController)
	group.Post("/", middleware.RequireRole(models.RoleAdmin), controller.AddSoftwareController)
	group.Get("/:id", controller.GetSoftwareController)
}
