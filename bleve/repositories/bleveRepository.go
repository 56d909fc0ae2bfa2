package repositories

import (
	bleveModels "licensing-backend/bleve/models"
	bleveindex "licensing-backend/bleve/services"
	"licensing-backend/db/models"

	"github.com/google/uuid"
)

type BleveRepositoryInterface interface {
	IndexSingleClient(client models.Client) error
	IndexExistingClients(clients []models.Client) error
	DeleteClient(clientID uuid.UUID) error
	SearchClients(queryString string, size int) (*bleveModels.SearchResponse, error)
	ResetClients() error
}

type BleveRepository struct {
	indexer bleveindex.IndexingServiceInterface
}

func NewBleveRepository(indexer bleveindex.IndexingServiceInterface) BleveRepositoryInterface {
	return &BleveRepository{indexer: indexer}
}
