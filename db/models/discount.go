package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Discount struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Percentage int       `gorm:"not null;check:percentage BETWEEN 1 AND 100" json:"percentage"`
	StartDate  time.Time `gorm:"not null" json:"start_date"`
	EndDate    time.Time `gorm:"not null" json:"end_date"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// ActiveAt reports whether t lies in [StartDate, EndDate], both ends inclusive.
func (d *Discount) ActiveAt(t time.Time) bool {
	return !t.Before(d.StartDate) && !t.After(d.EndDate)
}
