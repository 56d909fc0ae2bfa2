package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"licensing-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Users struct{ db *DB }

func (db *DB) Users() *Users { return &Users{db: db} }

func (r *Users) Create(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	for _, u := range r.db.users {
		if strings.EqualFold(u.Login, user.Login) {
			return fmt.Errorf("login %q: %w", user.Login, gorm.ErrDuplicatedKey)
		}
	}
	role, ok := r.db.roles[user.RoleID]
	if !ok {
		return fmt.Errorf("role %d does not exist", user.RoleID)
	}
	now := r.db.now()
	user.CreatedAt, user.UpdatedAt = now, now
	user.Role = role
	r.db.users[user.ID] = *user
	return nil
}

func (r *Users) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.users[id]
	if !ok {
		return nil, errNotFound
	}
	u.Role = r.db.roles[u.RoleID]
	return &u, nil
}

func (r *Users) GetByLogin(_ context.Context, login string) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if strings.EqualFold(u.Login, login) {
			u.Role = r.db.roles[u.RoleID]
			return &u, nil
		}
	}
	return nil, errNotFound
}

func (r *Users) LoginTaken(ctx context.Context, login string) (bool, error) {
	_, err := r.GetByLogin(ctx, login)
	return err == nil, nil
}

func (r *Users) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.users[id]
	if !ok {
		return errNotFound
	}
	u.LastLoginAt = &at
	r.db.users[id] = u
	return nil
}

func (r *Users) GetRoleByName(_ context.Context, name string) (*models.Role, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, role := range r.db.roles {
		if strings.EqualFold(role.Name, name) {
			return &role, nil
		}
	}
	return nil, errNotFound
}

func (r *Users) EnsureRole(_ context.Context, role models.Role) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.roles[role.ID]; !ok {
		r.db.roles[role.ID] = role
	}
	return nil
}
