package controllers

import (
	"licensing-backend/contracts/services"
)

type ContractController struct {
	Contracts *services.ContractService
	Discounts *services.DiscountService
}

func NewContractController(contracts *services.ContractService, discounts *services.DiscountService) *ContractController {
	return &ContractController{Contracts: contracts, Discounts: discounts}
}
