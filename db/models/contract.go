package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Contract is a licence sale. Clients are referenced with RESTRICT so a client
// row can never take its contracts with it; payments belong to the contract.
type Contract struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	SellerID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"seller_id"`
	BuyerID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"buyer_id"`
	SoftwareID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"software_id"`
	DiscountID      *uuid.UUID      `gorm:"type:uuid" json:"discount_id,omitempty"`
	StartDate       time.Time       `gorm:"not null" json:"start_date"`
	EndDate         time.Time       `gorm:"not null" json:"end_date"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	YearsOfUpdates  int             `gorm:"not null;check:years_of_updates BETWEEN 1 AND 3" json:"years_of_updates"`
	SoftwareVersion string          `gorm:"type:varchar(50)" json:"software_version"`
	ReturningClient bool            `gorm:"default:false" json:"returning_client"`
	Signed          bool            `gorm:"default:false;not null" json:"signed"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Seller   *Client   `gorm:"foreignKey:SellerID;constraint:OnDelete:RESTRICT" json:"seller,omitempty"`
	Buyer    *Client   `gorm:"foreignKey:BuyerID;constraint:OnDelete:RESTRICT" json:"buyer,omitempty"`
	Software *Software `gorm:"foreignKey:SoftwareID;constraint:OnDelete:RESTRICT" json:"software,omitempty"`
	Discount *Discount `gorm:"foreignKey:DiscountID;constraint:OnDelete:SET NULL" json:"discount,omitempty"`
	Payments []Payment `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
