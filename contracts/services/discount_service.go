package services

import (
	"context"
	"strings"

	"licensing-backend/config"
	"licensing-backend/contracts/repositories"
	"licensing-backend/db/models"
	"licensing-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AddDiscountInput struct {
	Name       string         `json:"name"`
	Percentage int            `json:"percentage"`
	StartDate  utils.DateOnly `json:"startDate"`
	EndDate    utils.DateOnly `json:"endDate"`
}

type DiscountService struct {
	store repositories.Store
}

func NewDiscountService(store repositories.Store) *DiscountService {
	return &DiscountService{store: store}
}

func (s *DiscountService) AddDiscount(ctx context.Context, in AddDiscountInput) (*models.Discount, error) {
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return nil, utils.NewBadRequestError("name is required")
	case in.Percentage < 1 || in.Percentage > 100:
		return nil, utils.NewBadRequestError("percentage must be between 1 and 100")
	case in.StartDate.IsZero() || in.EndDate.IsZero():
		return nil, utils.NewBadRequestError("startDate and endDate are required")
	case in.EndDate.Time().Before(in.StartDate.Time()):
		return nil, utils.NewBadRequestError("endDate must not be before startDate")
	}

	discount := &models.Discount{
		ID:         uuid.New(),
		Name:       name,
		Percentage: in.Percentage,
		StartDate:  in.StartDate.Time(),
		EndDate:    in.EndDate.Time(),
	}
	if err := s.store.Discounts().Create(ctx, discount); err != nil {
		return nil, utils.NewInternalError("create discount", err)
	}

	config.Logger.Info("Discount added", zap.String("discount_id", discount.ID.String()), zap.Int("percentage", discount.Percentage))
	return discount, nil
}

func (s *DiscountService) ListDiscounts(ctx context.Context) ([]models.Discount, error) {
	discounts, err := s.store.Discounts().List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("list discounts", err)
	}
	return discounts, nil
}
