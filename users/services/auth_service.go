package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"licensing-backend/config"
	"licensing-backend/db/models"
	"licensing-backend/users/repositories"
	"licensing-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const invalidCredentials = "Invalid login or password"

type AuthService struct {
	repo repositories.UserRepository
	now  func() time.Time
}

func NewAuthService(repo repositories.UserRepository) *AuthService {
	return &AuthService{repo: repo, now: time.Now}
}

// Authenticate checks the credentials. Unknown logins and wrong passwords
// produce the same error.
func (s *AuthService) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	user, err := s.repo.GetByLogin(ctx, strings.TrimSpace(login))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		config.Logger.Warn("Sign-in attempt for unknown login", zap.String("login", login))
		return nil, utils.NewUnauthorizedError(invalidCredentials)
	}
	if err != nil {
		return nil, utils.NewInternalError("load user", err)
	}
	if !CheckPassword(password, user.Salt, user.PasswordHash) {
		config.Logger.Warn("Sign-in attempt with wrong password", zap.String("login", user.Login))
		return nil, utils.NewUnauthorizedError(invalidCredentials)
	}

	now := s.now()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		config.Logger.Warn("Could not record last login", zap.String("user_id", user.ID.String()), zap.Error(err))
	} else {
		user.LastLoginAt = &now
	}
	return user, nil
}

// Register creates a user. Unknown role names fall back to the User role,
// and so does Admin unless allowAdmin is set.
func (s *AuthService) Register(ctx context.Context, in RegisterInput, allowAdmin bool) (*models.User, error) {
	if err := ValidateRegistration(in); err != nil {
		return nil, err
	}
	login := strings.TrimSpace(in.Login)

	taken, err := s.repo.LoginTaken(ctx, login)
	if err != nil {
		return nil, utils.NewInternalError("check login", err)
	}
	if taken {
		return nil, utils.NewConflictError("login %q is already registered", login)
	}

	role, err := s.resolveRole(ctx, in.Role)
	if err != nil {
		return nil, err
	}
	if role.Name == models.RoleAdmin && !allowAdmin {
		config.Logger.Warn("Admin role requested without permission, registering as User", zap.String("login", login))
		if role, err = s.resolveRole(ctx, ""); err != nil {
			return nil, err
		}
	}

	salt, err := NewSalt()
	if err != nil {
		return nil, utils.NewInternalError("create user", err)
	}
	user := &models.User{
		ID:           uuid.New(),
		Login:        login,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: HashPassword(in.Password, salt),
		Salt:         salt,
		RoleID:       role.ID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewConflictError("login %q is already registered", login)
		}
		return nil, utils.NewInternalError("create user", err)
	}

	config.Logger.Info("User registered", zap.String("login", user.Login), zap.String("role", role.Name))
	return user, nil
}

func (s *AuthService) resolveRole(ctx context.Context, name string) (*models.Role, error) {
	if strings.TrimSpace(name) != "" {
		role, err := s.repo.GetRoleByName(ctx, strings.TrimSpace(name))
		if err == nil {
			return role, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewInternalError("load role", err)
		}
	}
	role, err := s.repo.GetRoleByName(ctx, models.RoleUser)
	if err != nil {
		return nil, utils.NewInternalError("load default role", err)
	}
	return role, nil
}

func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, utils.NewInternalError("load user", err)
	}
	return user, nil
}

// EnsureRoles creates the Admin and User roles with their fixed ids.
func (s *AuthService) EnsureRoles(ctx context.Context) error {
	for _, role := range []models.Role{
		{ID: models.RoleAdminID, Name: models.RoleAdmin},
		{ID: models.RoleUserID, Name: models.RoleUser},
	} {
		if err := s.repo.EnsureRole(ctx, role); err != nil {
			return err
		}
	}
	return nil
}

// EnsureAdmin registers the initial administrator unless the login exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, login, password, email string) (bool, error) {
	taken, err := s.repo.LoginTaken(ctx, login)
	if err != nil || taken {
		return false, err
	}
	_, err = s.Register(ctx, RegisterInput{Login: login, Password: password, Email: email, Role: models.RoleAdmin}, true)
	return err == nil, err
}
