package repositories

import (
	"context"

	"licensing-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SoftwareRepository is the catalogue of licensable products. Lookups of a
// missing row return gorm.ErrRecordNotFound.
type SoftwareRepository interface {
	Create(ctx context.Context, software *models.Software) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Software, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, offset, limit int) ([]models.Software, int64, error)
	NameTaken(ctx context.Context, name string) (bool, error)
}

type softwareRepository struct {
	db *gorm.DB
}

func NewSoftwareRepository(db *gorm.DB) SoftwareRepository {
	return &softwareRepository{db: db}
}

func (r *softwareRepository) Create(ctx context.Context, software *models.Software) error {
	return r.db.WithContext(ctx).Create(software).Error
}

func (r *softwareRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Software, error) {
	var software models.Software
	if err := r.db.WithContext(ctx).First(&software, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &software, nil
}

func (r *softwareRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Software{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *softwareRepository) List(ctx context.Context, offset, limit int) ([]models.Software, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Software{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var softwares []models.Software
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&softwares).Error
	return softwares, total, err
}

func (r *softwareRepository) NameTaken(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Software{}).Where("LOWER(name) = LOWER(?)", name).Count(&count).Error
	return count > 0, err
}
