package repositories

import (
	"context"

	"licensing-backend/db/memory"
)

type memoryStore struct {
	db *memory.DB
}

// NewMemoryStore backs the clients module with the in-memory database.
func NewMemoryStore(db *memory.DB) Store {
	return &memoryStore{db: db}
}

func (s *memoryStore) Clients() ClientRepository {
	return s.db.Clients()
}

func (s *memoryStore) Transaction(_ context.Context, fn func(Store) error) error {
	return s.db.Tx(func() error { return fn(s) })
}
