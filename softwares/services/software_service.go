package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"licensing-backend/config"
	"licensing-backend/db/models"
	"licensing-backend/softwares/repositories"
	"licensing-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AddSoftwareInput struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	CurrentVersion string          `json:"currentVersion"`
	BasePrice      decimal.Decimal `json:"basePrice"`
}

type SoftwareService struct {
	repo repositories.SoftwareRepository
}

func NewSoftwareService(repo repositories.SoftwareRepository) *SoftwareService {
	return &SoftwareService{repo: repo}
}

func (s *SoftwareService) AddSoftware(ctx context.Context, in AddSoftwareInput) (*models.Software, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, utils.NewBadRequestError("name is required")
	}
	if !in.BasePrice.IsPositive() {
		return nil, utils.NewBadRequestError("basePrice must be greater than zero")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.CurrentVersion)) > models.MaxVersionLength {
		return nil, utils.NewBadRequestError("currentVersion must be at most %d characters", models.MaxVersionLength)
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Category)) > models.MaxCategoryLength {
		return nil, utils.NewBadRequestError("category must be at most %d characters", models.MaxCategoryLength)
	}

	taken, err := s.repo.NameTaken(ctx, name)
	if err != nil {
		return nil, utils.NewInternalError("check software name", err)
	}
	if taken {
		return nil, utils.NewConflictError("software %q already exists", name)
	}

	software := &models.Software{
		ID:             uuid.New(),
		Name:           name,
		Description:    strings.TrimSpace(in.Description),
		Category:       strings.TrimSpace(in.Category),
		CurrentVersion: strings.TrimSpace(in.CurrentVersion),
		BasePrice:      utils.RoundMoney(in.BasePrice),
	}
	if err := s.repo.Create(ctx, software); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewConflictError("software %q already exists", name)
		}
		return nil, utils.NewInternalError("create software", err)
	}

	config.Logger.Info("Software added", zap.String("software_id", software.ID.String()), zap.String("name", software.Name))
	return software, nil
}

func (s *SoftwareService) GetSoftware(ctx context.Context, id uuid.UUID) (*models.Software, error) {
	software, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFoundError("software not found")
	}
	if err != nil {
		return nil, utils.NewInternalError("get software", err)
	}
	return software, nil
}

func (s *SoftwareService) ListSoftwares(ctx context.Context, offset, limit int) ([]models.Software, int64, error) {
	softwares, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, utils.NewInternalError("list softwares", err)
	}
	return softwares, total, nil
}
