package controllers

import (
	"licensing-backend/middleware"
	"licensing-backend/users/services"
)

type AuthController struct {
	Service *services.AuthService
	App     *middleware.AppContext
}

func NewAuthController(service *services.AuthService, app *middleware.AppContext) *AuthController {
	return &AuthController{Service: service, App: app}
}
