package routes

import (
	"licensing-backend/income/controllers"

	"github.com/gofiber/fiber/v2"
)

// IncomeInitRoutes serves income totals to any authenticated user.
func IncomeInitRoutes(api fiber.Router, controller *controllers.IncomeController) {
	api.Get("/clients/:id/income", controller.ClientIncomeController)
	api.Get("/clients/:id/expected", controller.ClientExpectedIncomeController)
	api.Get("/softwares/:id/income", controller.SoftwareIncomeController)
	api.Get("/softwares/:id/expected", controller.SoftwareExpectedIncomeController)
}
