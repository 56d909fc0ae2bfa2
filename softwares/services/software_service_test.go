package services

import (
	"context"
	"strings"
	"testing"

	"licensing-backend/db/memory"
	"licensing-backend/db/models"
	"licensing-backend/softwares/repositories"
	"licensing-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSoftware(t *testing.T) {
	svc := NewSoftwareService(memory.New().Softwares())
	ctx := context.Background()

	software, err := svc.AddSoftware(ctx, AddSoftwareInput{Name: " Office ", Category: "productivity", BasePrice: decimal.RequireFromString("1999.999")})
	require.NoError(t, err)
	assert.Equal(t, "Office", software.Name)
	assert.Equal(t, "2000", software.BasePrice.String())

	_, err = svc.AddSoftware(ctx, AddSoftwareInput{Name: "office", BasePrice: decimal.NewFromInt(1)})
	assert.True(t, utils.IsKind(err, utils.KindConflict))

	got, err := svc.GetSoftware(ctx, software.ID)
	require.NoError(t, err)
	assert.Equal(t, software.ID, got.ID)
}

type staleNameCheck struct {
	repositories.SoftwareRepository
}

func (staleNameCheck) NameTaken(context.Context, string) (bool, error) {
	return false, nil
}

func TestAddSoftwareDuplicateInsertIsConflict(t *testing.T) {
	svc := NewSoftwareService(staleNameCheck{memory.New().Softwares()})
	ctx := context.Background()

	_, err := svc.AddSoftware(ctx, AddSoftwareInput{Name: "Office", BasePrice: decimal.NewFromInt(10)})
	require.NoError(t, err)

	_, err = svc.AddSoftware(ctx, AddSoftwareInput{Name: "OFFICE", BasePrice: decimal.NewFromInt(10)})
	assert.True(t, utils.IsKind(err, utils.KindConflict), "got %v", err)
}

func TestAddSoftwareValidation(t *testing.T) {
	svc := NewSoftwareService(memory.New().Softwares())
	ctx := context.Background()

	_, err := svc.AddSoftware(ctx, AddSoftwareInput{BasePrice: decimal.NewFromInt(10)})
	assert.True(t, utils.IsKind(err, utils.KindBadRequest))

	_, err = svc.AddSoftware(ctx, AddSoftwareInput{Name: "Free", BasePrice: decimal.Zero})
	assert.True(t, utils.IsKind(err, utils.KindBadRequest))

	_, err = svc.AddSoftware(ctx, AddSoftwareInput{Name: "Long", CurrentVersion: strings.Repeat("1", models.MaxVersionLength+1), BasePrice: decimal.NewFromInt(10)})
	assert.True(t, utils.IsKind(err, utils.KindBadRequest))

	_, err = svc.AddSoftware(ctx, AddSoftwareInput{Name: "Wide", Category: strings.Repeat("c", models.MaxCategoryLength+1), BasePrice: decimal.NewFromInt(10)})
	assert.True(t, utils.IsKind(err, utils.KindBadRequest))
}

func TestGetSoftwareNotFound(t *testing.T) {
	svc := NewSoftwareService(memory.New().Softwares())
	_, err := svc.GetSoftware(context.Background(), uuid.New())
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}
