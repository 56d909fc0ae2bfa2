package repositories

import (
	"context"

	"licensing-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClientRepository reads and writes clients together with their variant row.
// Lookups of a missing client return gorm.ErrRecordNotFound.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Client, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, client *models.Client) error
	List(ctx context.Context, kind models.ClientKind, offset, limit int) ([]models.Client, int64, error)
	All(ctx context.Context) ([]models.Client, error)
	KRSTaken(ctx context.Context, krs string, except uuid.UUID) (bool, error)
	PESELTaken(ctx context.Context, pesel string, except uuid.UUID) (bool, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Individual").
		First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByIDForUpdate locks the client row until the surrounding transaction ends.
func (r *clientRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Company").
		Preload("Individual").
		First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Save writes the shared columns and whichever variant row is present. Maps
// are used so empty values are written too.
func (r *clientRepository) Save(ctx context.Context, client *models.Client) error {
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Client{ID: client.ID}).Updates(map[string]interface{}{
		"address": client.Address,
		"email":   client.Email,
		"phone":   client.Phone,
	}).Error; err != nil {
		return err
	}

	if client.Company != nil {
		if err := db.Model(&models.Company{}).Where("client_id = ?", client.ID).Updates(map[string]interface{}{
			"name": client.Company.Name,
			"krs":  client.Company.KRS,
		}).Error; err != nil {
			return err
		}
	}

	if client.Individual != nil {
		if err := db.Model(&models.Individual{}).Where("client_id = ?", client.ID).Updates(map[string]interface{}{
			"name":          client.Individual.Name,
			"surname":       client.Individual.Surname,
			"pesel":         client.Individual.PESEL,
			"status":        client.Individual.Status,
			"tombstoned_at": client.Individual.TombstonedAt,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *clientRepository) List(ctx context.Context, kind models.ClientKind, offset, limit int) ([]models.Client, int64, error) {
	scoped := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Client{})
		if kind != "" {
			q = q.Where("kind = ?", kind)
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []models.Client
	err := scoped().
		Preload("Company").
		Preload("Individual").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&clients).Error
	return clients, total, err
}

func (r *clientRepository) All(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.WithContext(ctx).Preload("Company").Preload("Individual").Find(&clients).Error
	return clients, err
}

func (r *clientRepository) KRSTaken(ctx context.Context, krs string, except uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("krs = ? AND client_id <> ?", krs, except).
		Count(&count).Error
	return count > 0, err
}

func (r *clientRepository) PESELTaken(ctx context.Context, pesel string, except uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Individual{}).
		Where("pesel = ? AND status = ? AND client_id <> ?", pesel, models.IndividualActive, except).
		Count(&count).Error
	return count > 0, err
}
