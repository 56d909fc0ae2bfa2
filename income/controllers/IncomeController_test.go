package controllers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"licensing-backend/db/memory"
	"licensing-backend/db/models"
	"licensing-backend/income/controllers"
	"licensing-backend/income/repositories"
	"licensing-backend/income/routes"
	"licensing-backend/income/services"
	currencyServices "licensing-backend/currency/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type oneRate struct{}

func (oneRate) GetRate(context.Context, string, string) (decimal.Decimal, error) {
	return decimal.RequireFromString("0.5"), nil
}

func TestIncomeEndpoints(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	software := &models.Software{Name: "Office", BasePrice: decimal.NewFromInt(1000)}
	require.NoError(t, db.Softwares().Create(ctx, software))
	buyer := &models.Client{Kind: models.ClientKindCompany, Company: &models.Company{Name: "B", KRS: "0000000001"}}
	require.NoError(t, db.Clients().Create(ctx, buyer))
	contract := &models.Contract{BuyerID: buyer.ID, SellerID: uuid.New(), SoftwareID: software.ID, Price: decimal.NewFromInt(800)}
	require.NoError(t, db.Contracts().Create(ctx, contract))
	require.NoError(t, db.Payments().Create(ctx, &models.Payment{ContractID: contract.ID, Amount: decimal.NewFromInt(800)}))
	_, err := db.Contracts().MarkSigned(ctx, contract.ID)
	require.NoError(t, err)

	svc := services.NewIncomeService(repositories.NewMemoryIncomeRepository(db), db.Clients(), db.Softwares(), currencyServices.NewConverter("PLN", oneRate{}))
	app := fiber.New()
	routes.IncomeInitRoutes(app, controllers.NewIncomeController(svc))

	get := func(path string) (int, services.Income) {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		var out struct {
			Data services.Income `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &out), string(body))
		return resp.StatusCode, out.Data
	}

	status, income := get("/clients/" + buyer.ID.String() + "/income")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "800", income.Income.String())
	assert.Equal(t, "PLN", income.Currency)

	status, income = get("/softwares/" + software.ID.String() + "/expected?currency=EUR")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "400", income.Income.String())
	assert.Equal(t, "EUR", income.Currency)

	status, _ = get("/clients/" + uuid.NewString() + "/expected")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = get("/softwares/nope/income")
	assert.Equal(t, fiber.StatusBadRequest, status)
}
