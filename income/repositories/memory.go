package repositories

import (
	"context"

	"licensing-backend/db/memory"
	"licensing-backend/db/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type memoryIncomeRepository struct {
	db *memory.DB
}

func NewMemoryIncomeRepository(db *memory.DB) IncomeRepository {
	return &memoryIncomeRepository{db: db}
}

func (r *memoryIncomeRepository) Sum(ctx context.Context, scope Scope, id uuid.UUID, realized bool) (decimal.Decimal, error) {
	if _, err := scope.column(); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, c := range r.db.Contracts().Filter(func(c models.Contract) bool { return scope.matches(c, id) }) {
		if realized {
			if !c.Signed {
				continue
			}
			paid, err := r.db.Payments().SumActive(ctx, c.ID)
			if err != nil {
				return decimal.Zero, err
			}
			if paid.LessThan(c.Price) {
				continue
			}
		}
		total = total.Add(c.Price)
	}
	return total, nil
}
