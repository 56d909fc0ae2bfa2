package routes

import (
	"licensing-backend/contracts/controllers"
	"licensing-backend/db/models"
	"licensing-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func ContractInitRoutes(api fiber.Router, controller *controllers.ContractController) {
	admin := middleware.RequireRole(models.RoleAdmin)

	contracts := api.Group("/contracts")
	contracts.Post("/", admin, controller.CreateContractController)
	contracts.Get("/:id", controller.GetContractController)
	contracts.Get("/:id/payments", controller.GetContractPaymentsController)
	contracts.Put("/:id/pay", admin, controller.PayContractController)

	api.Put("/payments/:id/return", admin, controller.ReturnPaymentController)

	api.Get("/discounts", controller.GetDiscountsController)
	api.Post("/discounts", admin, controller.AddDiscountController)

	api.Get("/softwares/:id/contracts/export", controller.ExportSoftwareContractsController)
}
