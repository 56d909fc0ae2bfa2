package repositories

import (
	"context"
	"errors"
	"time"

	"licensing-backend/db/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExchangeRateRepository interface {
	// SaveRates upserts one row per target currency.
	SaveRates(ctx context.Context, base string, rates map[string]decimal.Decimal, fetchedAt time.Time) error
	// GetLastKnown returns nil, nil when no rate was ever stored for the pair.
	GetLastKnown(ctx context.Context, base, target string) (*models.ExchangeRate, error)
}

type exchangeRateRepository struct {
	db *gorm.DB
}

func NewExchangeRateRepository(db *gorm.DB) ExchangeRateRepository {
	return &exchangeRateRepository{db: db}
}

func (r *exchangeRateRepository) SaveRates(ctx context.Context, base string, rates map[string]decimal.Decimal, fetchedAt time.Time) error {
	if len(rates) == 0 {
		return nil
	}
	rows := make([]models.ExchangeRate, 0, len(rates))
	for target, rate := range rates {
		rows = append(rows, models.ExchangeRate{
			BaseCurrency:   base,
			TargetCurrency: target,
			Rate:           rate,
			FetchedAt:      fetchedAt,
		})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "base_currency"}, {Name: "target_currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "fetched_at", "updated_at"}),
	}).CreateInBatches(&rows, 100).Error
}

func (r *exchangeRateRepository) GetLastKnown(ctx context.Context, base, target string) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate
	err := r.db.WithContext(ctx).
		Where("base_currency = ? AND target_currency = ?", base, target).
		First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}
