package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientKind string

const (
	ClientKindCompany    ClientKind = "COMPANY"
	ClientKindIndividual ClientKind = "INDIVIDUAL"
)

// IndividualStatus is the lifecycle of an individual client. Companies have
// no lifecycle, they cannot be removed.
type IndividualStatus string

const (
	IndividualActive     IndividualStatus = "ACTIVE"
	IndividualTombstoned IndividualStatus = "TOMBSTONED"
)

// Sentinel values written over personal data when an individual is removed.
const (
	TombstoneText  = "DELETED"
	TombstoneEmail = "deleted@example.com"
	TombstonePhone = "0"
	TombstonePESEL = "00000000000"
)

// Client is the shared record of a customer. Exactly one of Company or
// Individual is set, as named by Kind; both variants share the client id.
type Client struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	Kind    ClientKind `gorm:"type:varchar(20);not null;index" json:"kind"`
	Address string     `gorm:"not null" json:"address"`
	Email   string     `gorm:"not null" json:"email"`
	Phone   string     `gorm:"type:varchar(20);not null" json:"phone"`

	Company    *Company    `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
	Individual *Individual `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"individual,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Company struct {
	ClientID uuid.UUID `gorm:"type:uuid;primary_key;" json:"client_id"`
	Name     string    `gorm:"not null" json:"name"`
	KRS      string    `gorm:"column:krs;type:varchar(20);not null;uniqueIndex" json:"krs"`
}

type Individual struct {
	ClientID     uuid.UUID        `gorm:"type:uuid;primary_key;" json:"client_id"`
	Name         string           `gorm:"not null" json:"name"`
	Surname      string           `gorm:"not null" json:"surname"`
	PESEL        string           `gorm:"column:pesel;type:varchar(11);not null" json:"pesel"`
	Status       IndividualStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	TombstonedAt *time.Time       `json:"tombstoned_at,omitempty"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Client) IsCompany() bool {
	return c.Kind == ClientKindCompany
}

func (c *Client) IsTombstoned() bool {
	return c.Kind == ClientKindIndividual && c.Individual != nil && c.Individual.Status == IndividualTombstoned
}

// DisplayName is the company name or "name surname" of an individual.
func (c *Client) DisplayName() string {
	switch {
	case c.Company != nil:
		return c.Company.Name
	case c.Individual != nil:
		return c.Individual.Name + " " + c.Individual.Surname
	}
	return ""
}

// Tombstone overwrites the individual's personal data with sentinel values
// and marks it removed. The row itself is kept for contract history.
func (c *Client) Tombstone(at time.Time) {
	c.Address = TombstoneText
	c.Email = TombstoneEmail
	c.Phone = TombstonePhone
	if c.Individual != nil {
		c.Individual.Name = TombstoneText
		c.Individual.Surname = TombstoneText
		c.Individual.PESEL = TombstonePESEL
		c.Individual.Status = IndividualTombstoned
		c.Individual.TombstonedAt = &at
	}
}
