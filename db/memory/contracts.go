package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"licensing-backend/db/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Discounts struct{ db *DB }

func (db *DB) Discounts() *Discounts { return &Discounts{db: db} }

func (r *Discounts) Create(_ context.Context, discount *models.Discount) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if discount.ID == uuid.Nil {
		discount.ID = uuid.New()
	}
	discount.CreatedAt = r.db.now()
	r.db.discounts[discount.ID] = *discount
	return nil
}

func (r *Discounts) GetByID(_ context.Context, id uuid.UUID) (*models.Discount, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	d, ok := r.db.discounts[id]
	if !ok {
		return nil, errNotFound
	}
	return &d, nil
}

func (r *Discounts) List(_ context.Context) ([]models.Discount, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	rows := make([]models.Discount, 0, len(r.db.discounts))
	for _, d := range r.db.discounts {
		rows = append(rows, d)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StartDate.Before(rows[j].StartDate) })
	return rows, nil
}

type Contracts struct{ db *DB }

func (db *DB) Contracts() *Contracts { return &Contracts{db: db} }

func (r *Contracts) Create(_ context.Context, contract *models.Contract) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if contract.ID == uuid.Nil {
		contract.ID = uuid.New()
	}
	if _, exists := r.db.contracts[contract.ID]; exists {
		return fmt.Errorf("contract %s already exists", contract.ID)
	}
	now := r.db.now()
	contract.CreatedAt, contract.UpdatedAt = now, now
	r.db.contracts[contract.ID] = cloneContract(*contract)
	return nil
}

func (r *Contracts) GetByID(_ context.Context, id uuid.UUID) (*models.Contract, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.contracts[id]
	if !ok {
		return nil, errNotFound
	}
	out := cloneContract(c)
	return &out, nil
}

func (r *Contracts) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	return r.GetByID(ctx, id)
}

// MarkSigned flips signed to true only when the active payments cover the
// price. It never sets signed back to false.
func (r *Contracts) MarkSigned(_ context.Context, id uuid.UUID) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.contracts[id]
	if !ok || c.Signed {
		return false, nil
	}
	if r.db.activeSumLocked(id).LessThan(c.Price) {
		return false, nil
	}
	c.Signed = true
	c.UpdatedAt = r.db.now()
	r.db.contracts[id] = c
	return true, nil
}

func (r *Contracts) ListBySoftware(_ context.Context, softwareID uuid.UUID) ([]models.Contract, error) {
	return r.Filter(func(c models.Contract) bool { return c.SoftwareID == softwareID }), nil
}

// Filter returns copies of the contracts matching keep, oldest first.
func (r *Contracts) Filter(keep func(models.Contract) bool) []models.Contract {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	rows := make([]models.Contract, 0)
	for _, c := range r.db.contracts {
		if keep(c) {
			rows = append(rows, cloneContract(c))
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StartDate.Before(rows[j].StartDate) })
	return rows
}

type Payments struct{ db *DB }

func (db *DB) Payments() *Payments { return &Payments{db: db} }

func (r *Payments) Create(_ context.Context, payment *models.Payment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if _, ok := r.db.contracts[payment.ContractID]; !ok {
		return fmt.Errorf("contract %s does not exist", payment.ContractID)
	}
	payment.CreatedAt = r.db.now()
	r.db.payments[payment.ID] = clonePayment(*payment)
	return nil
}

func (r *Payments) GetByID(_ context.Context, id uuid.UUID) (*models.Payment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.payments[id]
	if !ok {
		return nil, errNotFound
	}
	out := clonePayment(p)
	return &out, nil
}

func (r *Payments) ListByContract(_ context.Context, contractID uuid.UUID) ([]models.Payment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	rows := make([]models.Payment, 0)
	for _, p := range r.db.payments {
		if p.ContractID == contractID {
			rows = append(rows, clonePayment(p))
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PaidAt.Before(rows[j].PaidAt) })
	return rows, nil
}

func (r *Payments) SumActive(_ context.Context, contractID uuid.UUID) (decimal.Decimal, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.activeSumLocked(contractID), nil
}

func (r *Payments) MarkReturned(_ context.Context, id uuid.UUID, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.payments[id]
	if !ok {
		return errNotFound
	}
	p.Returned = true
	p.ReturnedAt = &at
	r.db.payments[id] = p
	return nil
}

// activeSumLocked expects db.mu to be held.
func (db *DB) activeSumLocked(contractID uuid.UUID) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range db.payments {
		if p.ContractID == contractID && !p.Returned {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}
