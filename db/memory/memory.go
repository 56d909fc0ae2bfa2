// Package memory is a thread-safe in-memory implementation of every
// repository in the service. It backs unit tests and local prototyping.
package memory

import (
	"sync"
	"time"

	"licensing-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DB holds every table. Rows are stored and returned as deep copies so
// callers can never alias stored state.
type DB struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	clients   map[uuid.UUID]models.Client
	softwares map[uuid.UUID]models.Software
	discounts map[uuid.UUID]models.Discount
	contracts map[uuid.UUID]models.Contract
	payments  map[uuid.UUID]models.Payment
	users     map[uuid.UUID]models.User
	roles     map[uint]models.Role

	now func() time.Time
}

func New() *DB {
	return &DB{
		clients:   make(map[uuid.UUID]models.Client),
		softwares: make(map[uuid.UUID]models.Software),
		discounts: make(map[uuid.UUID]models.Discount),
		contracts: make(map[uuid.UUID]models.Contract),
		payments:  make(map[uuid.UUID]models.Payment),
		users:     make(map[uuid.UUID]models.User),
		roles:     make(map[uint]models.Role),
		now:       time.Now,
	}
}

// Tx runs fn serialized against other transactions and restores every table
// when fn fails.
func (db *DB) Tx(fn func() error) error {
	db.txMu.Lock()
	defer db.txMu.Unlock()

	snap := db.snapshot()
	if err := fn(); err != nil {
		db.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	clients   map[uuid.UUID]models.Client
	softwares map[uuid.UUID]models.Software
	discounts map[uuid.UUID]models.Discount
	contracts map[uuid.UUID]models.Contract
	payments  map[uuid.UUID]models.Payment
	users     map[uuid.UUID]models.User
	roles     map[uint]models.Role
}

func copyTable[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (db *DB) snapshot() snapshot {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return snapshot{
		clients:   copyTable(db.clients),
		softwares: copyTable(db.softwares),
		discounts: copyTable(db.discounts),
		contracts: copyTable(db.contracts),
		payments:  copyTable(db.payments),
		users:     copyTable(db.users),
		roles:     copyTable(db.roles),
	}
}

func (db *DB) restore(s snapshot) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.clients = s.clients
	db.softwares = s.softwares
	db.discounts = s.discounts
	db.contracts = s.contracts
	db.payments = s.payments
	db.users = s.users
	db.roles = s.roles
}

func cloneClient(c models.Client) models.Client {
	if c.Company != nil {
		company := *c.Company
		c.Company = &company
	}
	if c.Individual != nil {
		individual := *c.Individual
		if individual.TombstonedAt != nil {
			at := *individual.TombstonedAt
			individual.TombstonedAt = &at
		}
		c.Individual = &individual
	}
	return c
}

func cloneContract(c models.Contract) models.Contract {
	if c.DiscountID != nil {
		id := *c.DiscountID
		c.DiscountID = &id
	}
	c.Seller, c.Buyer, c.Software, c.Discount, c.Payments = nil, nil, nil, nil, nil
	return c
}

func clonePayment(p models.Payment) models.Payment {
	if p.ReturnedAt != nil {
		at := *p.ReturnedAt
		p.ReturnedAt = &at
	}
	p.Client = nil
	return p
}

func page[T any](rows []T, offset, limit int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	end := len(rows)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return rows[offset:end]
}

var errNotFound = gorm.ErrRecordNotFound
