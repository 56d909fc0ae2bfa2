package services

import (
	"context"

	clientRepositories "licensing-backend/clients/repositories"
	"licensing-backend/config"
	"licensing-backend/income/repositories"
	softwareRepositories "licensing-backend/softwares/repositories"
	"licensing-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CurrencyConverter converts an amount held in the base currency.
type CurrencyConverter interface {
	ConvertFromBase(ctx context.Context, amount decimal.Decimal, target string) (decimal.Decimal, string, error)
}

// Income is a total in the requested currency.
type Income struct {
	Income   decimal.Decimal `json:"income"`
	Currency string          `json:"currency"`
}

type IncomeService struct {
	income    repositories.IncomeRepository
	clients   clientRepositories.ClientRepository
	softwares softwareRepositories.SoftwareRepository
	converter CurrencyConverter
}

func NewIncomeService(
	income repositories.IncomeRepository,
	clients clientRepositories.ClientRepository,
	softwares softwareRepositories.SoftwareRepository,
	converter CurrencyConverter,
) *IncomeService {
	return &IncomeService{income: income, clients: clients, softwares: softwares, converter: converter}
}

// ClientIncome is what the client has paid for as a buyer, counting fully
// paid and signed contracts only.
func (s *IncomeService) ClientIncome(ctx context.Context, clientID uuid.UUID, currency string) (*Income, error) {
	if err := s.clientExists(ctx, clientID); err != nil {
		return nil, err
	}
	return s.total(ctx, repositories.ByBuyer, clientID, true, currency)
}

// ClientExpectedIncome is the value of every contract the client sold,
// whatever their payment state.
func (s *IncomeService) ClientExpectedIncome(ctx context.Context, clientID uuid.UUID, currency string) (*Income, error) {
	if err := s.clientExists(ctx, clientID); err != nil {
		return nil, err
	}
	return s.total(ctx, repositories.BySeller, clientID, false, currency)
}

func (s *IncomeService) SoftwareIncome(ctx context.Context, softwareID uuid.UUID, currency string) (*Income, error) {
	if err := s.softwareExists(ctx, softwareID); err != nil {
		return nil, err
	}
	return s.total(ctx, repositories.BySoftware, softwareID, true, currency)
}

func (s *IncomeService) SoftwareExpectedIncome(ctx context.Context, softwareID uuid.UUID, currency string) (*Income, error) {
	if err := s.softwareExists(ctx, softwareID); err != nil {
		return nil, err
	}
	return s.total(ctx, repositories.BySoftware, softwareID, false, currency)
}

func (s *IncomeService) clientExists(ctx context.Context, id uuid.UUID) error {
	ok, err := s.clients.Exists(ctx, id)
	if err != nil {
		return utils.NewInternalError("check client", err)
	}
	if !ok {
		return utils.NewNotFoundError("client not found")
	}
	return nil
}

func (s *IncomeService) softwareExists(ctx context.Context, id uuid.UUID) error {
	ok, err := s.softwares.Exists(ctx, id)
	if err != nil {
		return utils.NewInternalError("check software", err)
	}
	if !ok {
		return utils.NewNotFoundError("software not found")
	}
	return nil
}

func (s *IncomeService) total(ctx context.Context, scope repositories.Scope, id uuid.UUID, realized bool, currency string) (*Income, error) {
	sum, err := s.income.Sum(ctx, scope, id, realized)
	if err != nil {
		return nil, utils.NewInternalError("sum income", err)
	}

	converted, code, err := s.converter.ConvertFromBase(ctx, sum, currency)
	if err != nil {
		return nil, err
	}

	config.Logger.Debug("Income computed",
		zap.String("scope", string(scope)),
		zap.String("id", id.String()),
		zap.Bool("realized", realized),
		zap.String("currency", code))
	return &Income{Income: converted, Currency: code}, nil
}
