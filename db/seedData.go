package db

import (
	"time"

	"licensing-backend/db/models"

	"github.com/shopspring/decimal"
)

// DemoSoftwares is the catalogue loaded into an empty installation.
func DemoSoftwares() []models.Software {
	return []models.Software{
		{Name: "Ledger Pro", Description: "Double-entry bookkeeping for small firms", Category: "Finance", CurrentVersion: "4.2", BasePrice: decimal.NewFromInt(1200)},
		{Name: "ShopFront", Description: "Point of sale and stock control", Category: "Retail", CurrentVersion: "2.7", BasePrice: decimal.NewFromInt(800)},
		{Name: "ClinicDesk", Description: "Appointment scheduling for clinics", Category: "Healthcare", CurrentVersion: "1.9", BasePrice: decimal.NewFromInt(1500)},
		{Name: "FleetTrack", Description: "Vehicle tracking and route planning", Category: "Logistics", CurrentVersion: "3.0", BasePrice: decimal.NewFromInt(2000)},
	}
}

// DemoDiscount runs for the calendar year containing now.
func DemoDiscount(now time.Time) models.Discount {
	year := now.Year()
	return models.Discount{
		Name:       "Annual promotion",
		Percentage: 10,
		StartDate:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}
