package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"licensing-backend/bleve/repositories"
	bleveindex "licensing-backend/bleve/services"
	"licensing-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSearchClientsController(t *testing.T) {
	svc := bleveindex.NewIndexingService(zap.NewNop(), "")
	defer svc.Close()
	repo := repositories.NewBleveRepository(svc)

	id := uuid.New()
	require.NoError(t, repo.IndexSingleClient(models.Client{
		ID: id, Kind: models.ClientKindCompany, Address: "Poznań", Email: "office@initech.pl", Phone: "1",
		Company: &models.Company{ClientID: id, Name: "Initech", KRS: "0000555555"},
	}))

	app := fiber.New()
	app.Get("/clients/search", NewSearchController(repo).SearchClientsController)

	resp, err := app.Test(httptest.NewRequest("GET", "/clients/search?q=initech", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var out struct {
		Data struct {
			Hits []struct {
				ID string `json:"id"`
			} `json:"hits"`
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 1, out.Data.Total)
	assert.Equal(t, id.String(), out.Data.Hits[0].ID)

	resp, err = app.Test(httptest.NewRequest("GET", "/clients/search", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
