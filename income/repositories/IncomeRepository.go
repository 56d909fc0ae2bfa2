package repositories

import (
	"context"
	"fmt"

	"licensing-backend/db/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Scope names the contract party an income total is computed for.
type Scope string

const (
	ByBuyer    Scope = "buyer"
	BySeller   Scope = "seller"
	BySoftware Scope = "software"
)

func (s Scope) column() (string, error) {
	switch s {
	case ByBuyer:
		return "contracts.buyer_id", nil
	case BySeller:
		return "contracts.seller_id", nil
	case BySoftware:
		return "contracts.software_id", nil
	}
	return "", fmt.Errorf("unknown income scope %q", s)
}

func (s Scope) matches(c models.Contract, id uuid.UUID) bool {
	switch s {
	case ByBuyer:
		return c.BuyerID == id
	case BySeller:
		return c.SellerID == id
	case BySoftware:
		return c.SoftwareID == id
	}
	return false
}

// IncomeRepository sums contract prices. Realized totals only count contracts
// that are signed and covered by their active payments.
type IncomeRepository interface {
	Sum(ctx context.Context, scope Scope, id uuid.UUID, realized bool) (decimal.Decimal, error)
}

type incomeRepository struct {
	db *gorm.DB
}

func NewIncomeRepository(db *gorm.DB) IncomeRepository {
	return &incomeRepository{db: db}
}

func (r *incomeRepository) Sum(ctx context.Context, scope Scope, id uuid.UUID, realized bool) (decimal.Decimal, error) {
	column, err := scope.column()
	if err != nil {
		return decimal.Zero, err
	}

	q := r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Select("COALESCE(SUM(contracts.price), 0) AS total").
		Where(column+" = ?", id)

	if realized {
		paid := r.db.Model(&models.Payment{}).
			Select("COALESCE(SUM(payments.amount), 0)").
			Where("payments.contract_id = contracts.id AND payments.returned = ?", false)
		q = q.Where("contracts.signed = ?", true).Where("contracts.price <= (?)", paid)
	}

	var row struct {
		Total decimal.Decimal
	}
	if err := q.Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}
