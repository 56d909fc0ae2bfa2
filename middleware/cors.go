package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// InitCors lets the configured frontends call the API with cookies. origins
// is a comma separated list. Content-Disposition is exposed so browsers can
// read the file name of contract exports.
func InitCors(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Disposition",
		AllowCredentials: true,
		MaxAge:           600,
	}))
}
