package bootstrap

import (
	"context"

	bleveRepositories "licensing-backend/bleve/repositories"
	clientRepositories "licensing-backend/clients/repositories"
	"licensing-backend/config"

	"go.uber.org/zap"
)

// IndexBleveData rebuilds the client search index from the database. Failures
// are logged and leave search degraded rather than stopping the server.
func IndexBleveData(
	ctx context.Context,
	clientRepo clientRepositories.ClientRepository,
	bleveRepo bleveRepositories.BleveRepositoryInterface,
) int {
	if err := bleveRepo.ResetClients(); err != nil {
		config.Logger.Error("Error resetting client index", zap.Error(err))
		return 0
	}

	clients, err := clientRepo.All(ctx)
	if err != nil {
		config.Logger.Error("Error fetching clients for Bleve indexing", zap.Error(err))
		return 0
	}
	if err := bleveRepo.IndexExistingClients(clients); err != nil {
		config.Logger.Error("Failed to index clients into Bleve", zap.Error(err))
		return 0
	}

	config.Logger.Info("Client search index rebuilt", zap.Int("clients", len(clients)))
	return len(clients)
}
