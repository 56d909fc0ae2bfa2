package repositories

import (
	"context"

	clientRepositories "licensing-backend/clients/repositories"
	"licensing-backend/db/memory"
	softwareRepositories "licensing-backend/softwares/repositories"

	"gorm.io/gorm"
)

// Store groups every repository the pricing and payment engine touches so
// that one transaction can span all of them.
type Store interface {
	Contracts() ContractRepository
	Payments() PaymentRepository
	Discounts() DiscountRepository
	Softwares() softwareRepositories.SoftwareRepository
	Clients() clientRepositories.ClientRepository
	Transaction(ctx context.Context, fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Contracts() ContractRepository { return NewContractRepository(s.db) }
func (s *gormStore) Payments() PaymentRepository   { return NewPaymentRepository(s.db) }
func (s *gormStore) Discounts() DiscountRepository { return NewDiscountRepository(s.db) }

func (s *gormStore) Softwares() softwareRepositories.SoftwareRepository {
	return softwareRepositories.NewSoftwareRepository(s.db)
}

func (s *gormStore) Clients() clientRepositories.ClientRepository {
	return clientRepositories.NewClientRepository(s.db)
}

func (s *gormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

type memoryStore struct {
	db *memory.DB
}

// NewMemoryStore backs the engine with the in-memory database.
func NewMemoryStore(db *memory.DB) Store {
	return &memoryStore{db: db}
}

func (s *memoryStore) Contracts() ContractRepository { return s.db.Contracts() }
func (s *memoryStore) Payments() PaymentRepository   { return s.db.Payments() }
func (s *memoryStore) Discounts() DiscountRepository { return s.db.Discounts() }

func (s *memoryStore) Softwares() softwareRepositories.SoftwareRepository {
	return s.db.Softwares()
}

func (s *memoryStore) Clients() clientRepositories.ClientRepository {
	return s.db.Clients()
}

func (s *memoryStore) Transaction(_ context.Context, fn func(Store) error) error {
	return s.db.Tx(func() error { return fn(s) })
}
