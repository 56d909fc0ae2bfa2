package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Column widths of version and category strings, in characters.
const (
	MaxVersionLength  = 50
	MaxCategoryLength = 50
)

type Software struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	Name           string          `gorm:"not null;uniqueIndex" json:"name"`
	Description    string          `gorm:"type:text" json:"description"`
	Category       string          `gorm:"type:varchar(50)" json:"category"`
	CurrentVersion string          `gorm:"type:varchar(50)" json:"current_version"`
	BasePrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_price"` // yearly, base currency
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Software) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
