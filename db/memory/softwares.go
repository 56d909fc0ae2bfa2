package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"licensing-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Softwares struct{ db *DB }

func (db *DB) Softwares() *Softwares { return &Softwares{db: db} }

func (r *Softwares) Create(_ context.Context, software *models.Software) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if software.ID == uuid.Nil {
		software.ID = uuid.New()
	}
	for _, s := range r.db.softwares {
		if strings.EqualFold(s.Name, software.Name) {
			return fmt.Errorf("software %q: %w", software.Name, gorm.ErrDuplicatedKey)
		}
	}
	now := r.db.now()
	software.CreatedAt, software.UpdatedAt = now, now
	r.db.softwares[software.ID] = *software
	return nil
}

func (r *Softwares) GetByID(_ context.Context, id uuid.UUID) (*models.Software, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	s, ok := r.db.softwares[id]
	if !ok {
		return nil, errNotFound
	}
	return &s, nil
}

func (r *Softwares) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	_, ok := r.db.softwares[id]
	return ok, nil
}

func (r *Softwares) List(_ context.Context, offset, limit int) ([]models.Software, int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	rows := make([]models.Software, 0, len(r.db.softwares))
	for _, s := range r.db.softwares {
		rows = append(rows, s)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return page(rows, offset, limit), int64(len(rows)), nil
}

func (r *Softwares) NameTaken(_ context.Context, name string) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, s := range r.db.softwares {
		if strings.EqualFold(s.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
