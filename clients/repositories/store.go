package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Store hands out repositories bound to one connection or transaction.
type Store interface {
	Clients() ClientRepository
	Transaction(ctx context.Context, fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Clients() ClientRepository {
	return NewClientRepository(s.db)
}

func (s *gormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
