package repositories

import (
	"context"

	"licensing-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContractRepository never loads relations; callers resolve the clients and
// software they need through their own repositories.
type ContractRepository interface {
	Create(ctx context.Context, contract *models.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Contract, error)
	MarkSigned(ctx context.Context, id uuid.UUID) (bool, error)
	ListBySoftware(ctx context.Context, softwareID uuid.UUID) ([]models.Contract, error)
}

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(contract).Error
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	var contract models.Contract
	if err := r.db.WithContext(ctx).First(&contract, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}

// GetByIDForUpdate holds the contract row until the transaction ends, which
// serializes concurrent payments against the same contract.
func (r *contractRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&contract, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// MarkSigned sets signed only while it is false and the active payments cover
// the price, in a single statement. It reports whether the row changed.
func (r *contractRepository) MarkSigned(ctx context.Context, id uuid.UUID) (bool, error) {
	paid := r.db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("contract_id = ? AND returned = ?", id, false)

	res := r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("id = ? AND signed = ?", id, false).
		Where("price <= (?)", paid).
		Update("signed", true)
	return res.RowsAffected == 1, res.Error
}

func (r *contractRepository) ListBySoftware(ctx context.Context, softwareID uuid.UUID) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.WithContext(ctx).
		Where("software_id = ?", softwareID).
		Order("start_date ASC").
		Find(&contracts).Error
	return contracts, err
}
