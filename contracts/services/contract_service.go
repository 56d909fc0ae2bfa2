package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"licensing-backend/config"
	"licensing-backend/contracts/repositories"
	"licensing-backend/db/models"
	"licensing-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateContractInput struct {
	BuyingClientID    uuid.UUID      `json:"buyingClientId"`
	SellingClientID   uuid.UUID      `json:"sellingClientId"`
	SoftwareID        uuid.UUID      `json:"softwareId"`
	StartDate         utils.DateOnly `json:"startDate"`
	EndDate           utils.DateOnly `json:"endDate"`
	YearsOfUpdates    int            `json:"yearsOfUpdates"`
	SoftwareVersion   string         `json:"softwareVersion"`
	DiscountID        *uuid.UUID     `json:"discountId"`
	IsReturningClient bool           `json:"isReturningClient"`
}

type PayContractInput struct {
	ClientID   uuid.UUID       `json:"clientId"`
	ContractID uuid.UUID       `json:"contractId"`
	Amount     decimal.Decimal `json:"amount"`
	Date       utils.DateOnly  `json:"date"`
}

// PaymentResult is the state of a contract right after a payment landed.
type PaymentResult struct {
	Payment   *models.Payment `json:"payment"`
	PaidTotal decimal.Decimal `json:"paid_total"`
	Signed    bool            `json:"signed"`
}

// ContractSummary is a contract together with its payment standing.
type ContractSummary struct {
	*models.Contract
	PaidTotal decimal.Decimal `json:"paid_total"`
	FullyPaid bool            `json:"fully_paid"`
}

type ContractService struct {
	store repositories.Store
	now   func() time.Time
}

func NewContractService(store repositories.Store) *ContractService {
	return &ContractService{store: store, now: time.Now}
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NewNotFoundError("%s not found", what)
	}
	return err
}

func wrapStoreError(op string, err error) error {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return utils.NewInternalError(op, err)
}

func activeClient(ctx context.Context, st repositories.Store, id uuid.UUID, role string) (*models.Client, error) {
	client, err := st.Clients().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, role)
	}
	if client.IsTombstoned() {
		return nil, utils.NewConflictError("%s has been deleted", role)
	}
	return client, nil
}

// lookupDiscount returns nil when the discount does not exist.
func lookupDiscount(ctx context.Context, st repositories.Store, id *uuid.UUID) (*models.Discount, error) {
	if id == nil {
		return nil, nil
	}
	discount, err := st.Discounts().GetByID(ctx, *id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		config.Logger.Debug("Unknown discount ignored", zap.String("discount_id", id.String()))
		return nil, nil
	}
	return discount, err
}

func (s *ContractService) CreateContract(ctx context.Context, in CreateContractInput) (*models.Contract, error) {
	start, end := in.StartDate.Time(), in.EndDate.Time()
	if start.IsZero() || end.IsZero() {
		return nil, utils.NewBadRequestError("startDate and endDate are required")
	}
	if err := ValidateDuration(start, end); err != nil {
		return nil, err
	}
	if in.BuyingClientID == in.SellingClientID {
		return nil, utils.NewBadRequestError("buyer and seller must be different clients")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.SoftwareVersion)) > models.MaxVersionLength {
		return nil, utils.NewBadRequestError("softwareVersion must be at most %d characters", models.MaxVersionLength)
	}

	var contract *models.Contract
	err := s.store.Transaction(ctx, func(st repositories.Store) error {
		software, err := st.Softwares().GetByID(ctx, in.SoftwareID)
		if err != nil {
			return notFound(err, "software")
		}
		if err := ValidateUpdateYears(in.YearsOfUpdates); err != nil {
			return err
		}
		if _, err := activeClient(ctx, st, in.BuyingClientID, "buying client"); err != nil {
			return err
		}
		if _, err := activeClient(ctx, st, in.SellingClientID, "selling client"); err != nil {
			return err
		}

		discount, err := lookupDiscount(ctx, st, in.DiscountID)
		if err != nil {
			return err
		}
		quote := QuotePrice(software.BasePrice, in.YearsOfUpdates, discount, start, in.IsReturningClient)

		version := strings.TrimSpace(in.SoftwareVersion)
		if version == "" {
			version = software.CurrentVersion
		}

		contract = &models.Contract{
			ID:              uuid.New(),
			SellerID:        in.SellingClientID,
			BuyerID:         in.BuyingClientID,
			SoftwareID:      software.ID,
			StartDate:       start,
			EndDate:         end,
			Price:           quote.Price,
			YearsOfUpdates:  in.YearsOfUpdates,
			SoftwareVersion: version,
			ReturningClient: in.IsReturningClient,
			Signed:          false,
		}
		if quote.DiscountApplied {
			contract.DiscountID = in.DiscountID
		}
		return st.Contracts().Create(ctx, contract)
	})
	if err != nil {
		return nil, wrapStoreError("create contract", err)
	}

	config.Logger.Info("Contract created",
		zap.String("contract_id", contract.ID.String()),
		zap.String("software_id", contract.SoftwareID.String()),
		zap.String("price", contract.Price.StringFixed(2)))
	return contract, nil
}

// PayContract records a payment and signs the contract once the active
// payments reach its price. The contract row stays locked for the whole
// operation. Payments above the price are accepted.
func (s *ContractService) PayContract(ctx context.Context, contractID uuid.UUID, in PayContractInput) (*PaymentResult, error) {
	if in.ContractID != uuid.Nil && in.ContractID != contractID {
		return nil, utils.NewBadRequestError("contractId does not match the contract in the path")
	}
	if !in.Amount.IsPositive() {
		return nil, utils.NewBadRequestError("amount must be greater than zero")
	}
	if in.Date.IsZero() {
		return nil, utils.NewBadRequestError("date is required")
	}

	result := &PaymentResult{}
	var price decimal.Decimal
	err := s.store.Transaction(ctx, func(st repositories.Store) error {
		contract, err := st.Contracts().GetByIDForUpdate(ctx, contractID)
		if err != nil {
			return notFound(err, "contract")
		}
		price = contract.Price

		if in.Date.Time().After(contract.EndDate) {
			return utils.NewBadRequestError("payment date is after the contract end date")
		}

		paid, err := st.Payments().SumActive(ctx, contract.ID)
		if err != nil {
			return err
		}
		if contract.Signed || paid.GreaterThanOrEqual(contract.Price) {
			return utils.NewConflictError("contract is already fully paid")
		}

		exists, err := st.Clients().Exists(ctx, in.ClientID)
		if err != nil {
			return err
		}
		if !exists {
			return utils.NewNotFoundError("paying client not found")
		}

		payment := &models.Payment{
			ID:         uuid.New(),
			ClientID:   in.ClientID,
			ContractID: contract.ID,
			Amount:     utils.RoundMoney(in.Amount),
			PaidAt:     in.Date.Time(),
			Returned:   false,
		}
		if err := st.Payments().Create(ctx, payment); err != nil {
			return err
		}

		signed, err := st.Contracts().MarkSigned(ctx, contract.ID)
		if err != nil {
			return err
		}

		result.Payment = payment
		result.PaidTotal = paid.Add(payment.Amount)
		result.Signed = signed
		return nil
	})
	if err != nil {
		return nil, wrapStoreError("pay contract", err)
	}

	fields := []zap.Field{
		zap.String("contract_id", contractID.String()),
		zap.String("payment_id", result.Payment.ID.String()),
		zap.String("paid_total", result.PaidTotal.StringFixed(2)),
	}
	if result.PaidTotal.GreaterThan(price) {
		config.Logger.Warn("Contract overpaid", append(fields, zap.String("price", price.StringFixed(2)))...)
	}
	if result.Signed {
		config.Logger.Info("Contract fully paid and signed", fields...)
	} else {
		config.Logger.Info("Payment recorded", fields...)
	}
	return result, nil
}

func (s *ContractService) IsContractFullyPaid(ctx context.Context, contractID uuid.UUID) (bool, error) {
	summary, err := s.GetContract(ctx, contractID)
	if err != nil {
		return false, err
	}
	return summary.FullyPaid, nil
}

func (s *ContractService) GetContract(ctx context.Context, contractID uuid.UUID) (*ContractSummary, error) {
	contract, err := s.store.Contracts().GetByID(ctx, contractID)
	if err != nil {
		return nil, wrapStoreError("get contract", notFound(err, "contract"))
	}
	paid, err := s.store.Payments().SumActive(ctx, contractID)
	if err != nil {
		return nil, utils.NewInternalError("sum payments", err)
	}
	return &ContractSummary{
		Contract:  contract,
		PaidTotal: paid,
		FullyPaid: paid.GreaterThanOrEqual(contract.Price),
	}, nil
}

func (s *ContractService) ListPayments(ctx context.Context, contractID uuid.UUID) ([]models.Payment, error) {
	if _, err := s.store.Contracts().GetByID(ctx, contractID); err != nil {
		return nil, wrapStoreError("get contract", notFound(err, "contract"))
	}
	payments, err := s.store.Payments().ListByContract(ctx, contractID)
	if err != nil {
		return nil, utils.NewInternalError("list payments", err)
	}
	return payments, nil
}

// ReturnPayment refunds a payment of a contract that is not signed yet.
// Signed contracts keep their payments so signed never reverts.
func (s *ContractService) ReturnPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	var payment *models.Payment
	err := s.store.Transaction(ctx, func(st repositories.Store) error {
		var err error
		payment, err = st.Payments().GetByID(ctx, paymentID)
		if err != nil {
			return notFound(err, "payment")
		}
		contract, err := st.Contracts().GetByIDForUpdate(ctx, payment.ContractID)
		if err != nil {
			return notFound(err, "contract")
		}
		if payment.Returned {
			return utils.NewConflictError("payment has already been returned")
		}
		if contract.Signed {
			return utils.NewConflictError("payments of a signed contract cannot be returned")
		}

		at := s.now()
		if err := st.Payments().MarkReturned(ctx, payment.ID, at); err != nil {
			return err
		}
		payment.Returned = true
		payment.ReturnedAt = &at
		return nil
	})
	if err != nil {
		return nil, wrapStoreError("return payment", err)
	}

	config.Logger.Info("Payment returned",
		zap.String("payment_id", payment.ID.String()),
		zap.String("contract_id", payment.ContractID.String()))
	return payment, nil
}
