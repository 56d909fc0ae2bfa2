package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExchangeRate is the last rate fetched for a currency pair. It backs
// conversions when the upstream service is unavailable.
type ExchangeRate struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	BaseCurrency   string          `gorm:"type:varchar(3);not null;uniqueIndex:idx_exchange_rates_pair" json:"base_currency"`
	TargetCurrency string          `gorm:"type:varchar(3);not null;uniqueIndex:idx_exchange_rates_pair" json:"target_currency"` // always uppercase
	Rate           decimal.Decimal `gorm:"type:decimal(18,8);not null" json:"rate"`
	FetchedAt      time.Time       `gorm:"not null" json:"fetched_at"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *ExchangeRate) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
