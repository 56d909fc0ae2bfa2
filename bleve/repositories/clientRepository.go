package repositories

import (
	"strings"

	bleveModels "licensing-backend/bleve/models"
	"licensing-backend/config"
	"licensing-backend/db/models"

	"github.com/blevesearch/bleve/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const clientsIndex = "clients"

var clientSearchFields = []string{"name", "surname", "company_name", "krs", "email", "phone", "address"}

type clientDocument struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	CompanyName string `json:"company_name"`
	KRS         string `json:"krs"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

func toClientDocument(c models.Client) clientDocument {
	doc := clientDocument{
		ID:      c.ID.String(),
		Kind:    string(c.Kind),
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
	if c.Company != nil {
		doc.CompanyName = c.Company.Name
		doc.KRS = c.Company.KRS
	}
	if c.Individual != nil {
		doc.Name = c.Individual.Name
		doc.Surname = c.Individual.Surname
	}
	return doc
}

// SearchClients ORs an exact, a prefix and a fuzzy query over every indexed
// field, boosted in that order.
func (r *BleveRepository) SearchClients(queryString string, size int) (*bleveModels.SearchResponse, error) {
	term := strings.ToLower(strings.TrimSpace(queryString))
	booleanQuery := bleve.NewBooleanQuery()

	for _, field := range clientSearchFields {
		match := bleve.NewMatchQuery(term)
		match.SetField(field)
		match.SetBoost(3.0)
		booleanQuery.AddShould(match)

		prefix := bleve.NewPrefixQuery(term)
		prefix.SetField(field)
		prefix.SetBoost(2.0)
		booleanQuery.AddShould(prefix)

		fuzzy := bleve.NewFuzzyQuery(term)
		fuzzy.SetField(field)
		fuzzy.SetFuzziness(1)
		fuzzy.SetBoost(1.0)
		booleanQuery.AddShould(fuzzy)
	}
	booleanQuery.SetMinShould(1)

	result, err := r.indexer.SearchIndex(clientsIndex, booleanQuery, size)
	if err != nil {
		return nil, err
	}

	resp := &bleveModels.SearchResponse{Total: result.Total, Hits: make([]bleveModels.SearchHit, 0, len(result.Hits))}
	for _, hit := range result.Hits {
		resp.Hits = append(resp.Hits, bleveModels.SearchHit{ID: hit.ID, Score: hit.Score, Fields: hit.Fields})
	}
	return resp, nil
}

// IndexSingleClient indexes a live client. Tombstoned individuals are removed
// instead, their sentinel values are not searchable.
func (r *BleveRepository) IndexSingleClient(client models.Client) error {
	if client.IsTombstoned() {
		return r.DeleteClient(client.ID)
	}
	if err := r.indexer.IndexDocument(clientsIndex, client.ID.String(), toClientDocument(client)); err != nil {
		config.Logger.Error("Failed to index client into Bleve", zap.Error(err), zap.String("client_id", client.ID.String()))
		return err
	}
	return nil
}

func (r *BleveRepository) IndexExistingClients(clients []models.Client) error {
	docs := make(map[string]interface{}, len(clients))
	for _, c := range clients {
		if c.IsTombstoned() {
			continue
		}
		docs[c.ID.String()] = toClientDocument(c)
	}
	if len(docs) == 0 {
		return nil
	}
	return r.indexer.BulkIndexDocuments(clientsIndex, docs)
}

func (r *BleveRepository) DeleteClient(clientID uuid.UUID) error {
	if err := r.indexer.DeleteDocument(clientsIndex, clientID.String()); err != nil {
		config.Logger.Error("Failed to delete client from Bleve", zap.Error(err), zap.String("client_id", clientID.String()))
		return err
	}
	return nil
}

func (r *BleveRepository) ResetClients() error {
	return r.indexer.DeleteIndex(clientsIndex)
}
