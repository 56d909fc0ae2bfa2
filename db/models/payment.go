package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is never deleted. A refunded payment is flagged Returned and drops
// out of the paid total.
type Payment struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	ClientID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	ContractID uuid.UUID       `gorm:"type:uuid;not null;index" json:"contract_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaidAt     time.Time       `gorm:"not null" json:"paid_at"`
	Returned   bool            `gorm:"default:false;not null" json:"returned"`
	ReturnedAt *time.Time      `json:"returned_at,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`

	Client *Client `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
