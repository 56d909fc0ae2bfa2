package memory

import (
	"context"
	"fmt"
	"sort"

	"licensing-backend/db/models"

	"github.com/google/uuid"
)

type Clients struct{ db *DB }

func (db *DB) Clients() *Clients { return &Clients{db: db} }

func (r *Clients) Create(_ context.Context, client *models.Client) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	if _, exists := r.db.clients[client.ID]; exists {
		return fmt.Errorf("client %s already exists", client.ID)
	}
	now := r.db.now()
	client.CreatedAt, client.UpdatedAt = now, now
	r.db.clients[client.ID] = cloneClient(*client)
	return nil
}

func (r *Clients) GetByID(_ context.Context, id uuid.UUID) (*models.Client, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.clients[id]
	if !ok {
		return nil, errNotFound
	}
	out := cloneClient(c)
	return &out, nil
}

func (r *Clients) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	return r.GetByID(ctx, id)
}

func (r *Clients) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	_, ok := r.db.clients[id]
	return ok, nil
}

func (r *Clients) Save(_ context.Context, client *models.Client) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.clients[client.ID]
	if !ok {
		return errNotFound
	}
	updated := cloneClient(*client)
	updated.Kind = existing.Kind
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = r.db.now()
	r.db.clients[client.ID] = updated
	return nil
}

func (r *Clients) List(_ context.Context, kind models.ClientKind, offset, limit int) ([]models.Client, int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	rows := make([]models.Client, 0, len(r.db.clients))
	for _, c := range r.db.clients {
		if kind == "" || c.Kind == kind {
			rows = append(rows, cloneClient(c))
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return page(rows, offset, limit), int64(len(rows)), nil
}

func (r *Clients) All(ctx context.Context) ([]models.Client, error) {
	rows, _, err := r.List(ctx, "", 0, 0)
	return rows, err
}

func (r *Clients) KRSTaken(_ context.Context, krs string, except uuid.UUID) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for id, c := range r.db.clients {
		if id != except && c.Company != nil && c.Company.KRS == krs {
			return true, nil
		}
	}
	return false, nil
}

func (r *Clients) PESELTaken(_ context.Context, pesel string, except uuid.UUID) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for id, c := range r.db.clients {
		if id != except && c.Individual != nil && c.Individual.Status == models.IndividualActive && c.Individual.PESEL == pesel {
			return true, nil
		}
	}
	return false, nil
}
