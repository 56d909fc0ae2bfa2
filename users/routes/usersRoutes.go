package routes

import (
	"licensing-backend/middleware"
	"licensing-backend/users/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitRoutes(api fiber.Router, controller *controllers.AuthController) {
	auth := api.Group("/authentication")
	auth.Post("/sign-in", controller.SignIn)
	auth.Post("/sign-up", middleware.OptionalUser(controller.App), controller.SignUp)
	auth.Post("/sign-out", controller.SignOut)
	auth.Get("/me", middleware.ProtectedRoute(controller.App), controller.Me)
}
