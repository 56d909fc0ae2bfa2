package bootstrap

import (
	"context"
	"testing"

	bleveRepositories "licensing-backend/bleve/repositories"
	bleveServices "licensing-backend/bleve/services"
	"licensing-backend/db/memory"
	"licensing-backend/db/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIndexBleveDataIndexesAllClients(t *testing.T) {
	mem := memory.New()
	ctx := context.Background()
	for _, name := range []string{"Initech", "Globex"} {
		id := uuid.New()
		require.NoError(t, mem.Clients().Create(ctx, &models.Client{
			ID:      id,
			Kind:    models.ClientKindCompany,
			Address: "Main St 1",
			Email:   "office@example.com",
			Phone:   "123456789",
			Company: &models.Company{ClientID: id, Name: name, KRS: uuid.NewString()[:10]},
		}))
	}

	indexer := bleveServices.NewIndexingService(zap.NewNop(), "")
	t.Cleanup(func() { _ = indexer.Close() })
	repo := bleveRepositories.NewBleveRepository(indexer)

	assert.Equal(t, 2, IndexBleveData(ctx, mem.Clients(), repo))

	res, err := repo.SearchClients("globex", 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Total)
}
