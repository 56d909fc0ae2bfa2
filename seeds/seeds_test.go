package seeds

import (
	"context"
	"testing"
	"time"

	"licensing-backend/config"
	contractRepositories "licensing-backend/contracts/repositories"
	contractServices "licensing-backend/contracts/services"
	"licensing-backend/db/memory"
	"licensing-backend/db/models"
	softwareServices "licensing-backend/softwares/services"
	userServices "licensing-backend/users/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedLicensingAllIsIdempotent(t *testing.T) {
	config.Logger = zap.NewNop()
	mem := memory.New()
	s := &Seeder{
		Auth:      userServices.NewAuthService(mem.Users()),
		Softwares: softwareServices.NewSoftwareService(mem.Softwares()),
		Discounts: contractServices.NewDiscountService(contractRepositories.NewMemoryStore(mem)),
		Now:       func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) },
	}
	admin := AdminAccount{Login: "admin", Password: "changeme", Email: "admin@example.com"}
	ctx := context.Background()

	require.NoError(t, s.SeedLicensingAll(ctx, admin))
	require.NoError(t, s.SeedLicensingAll(ctx, admin))

	user, err := s.Auth.Authenticate(ctx, "admin", "changeme")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role.Name)

	_, total, err := s.Softwares.ListSoftwares(ctx, 0, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)

	discounts, err := s.Discounts.ListDiscounts(ctx)
	require.NoError(t, err)
	require.Len(t, discounts, 1)
	assert.True(t, discounts[0].ActiveAt(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestSeedAdminSkippedWithoutPassword(t *testing.T) {
	config.Logger = zap.NewNop()
	mem := memory.New()
	auth := userServices.NewAuthService(mem.Users())
	s := &Seeder{Auth: auth}
	ctx := context.Background()
	require.NoError(t, auth.EnsureRoles(ctx))

	require.NoError(t, s.SeedAdmin(ctx, AdminAccount{Login: "admin"}))
	_, err := auth.Authenticate(ctx, "admin", "")
	assert.Error(t, err)
}
