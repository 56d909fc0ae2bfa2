package repositories

import (
	"context"

	"licensing-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiscountRepository interface {
	Create(ctx context.Context, discount *models.Discount) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Discount, error)
	List(ctx context.Context) ([]models.Discount, error)
}

type discountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &discountRepository{db: db}
}

func (r *discountRepository) Create(ctx context.Context, discount *models.Discount) error {
	return r.db.WithContext(ctx).Create(discount).Error
}

func (r *discountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Discount, error) {
	var discount models.Discount
	if err := r.db.WithContext(ctx).First(&discount, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &discount, nil
}

func (r *discountRepository) List(ctx context.Context) ([]models.Discount, error) {
	var discounts []models.Discount
	err := r.db.WithContext(ctx).Order("start_date ASC").Find(&discounts).Error
	return discounts, err
}
