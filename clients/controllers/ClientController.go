package controllers

import (
	"licensing-backend/clients/services"
)

type ClientController struct {
	Service *services.ClientService
}

func NewClientController(service *services.ClientService) *ClientController {
	return &ClientController{Service: service}
}
