package controllers_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"licensing-backend/clients/controllers"
	"licensing-backend/clients/repositories"
	"licensing-backend/clients/routes"
	"licensing-backend/clients/services"
	"licensing-backend/db/memory"
	"licensing-backend/middleware"
	"licensing-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

func newClientApp(role string) *fiber.App {
	svc := services.NewClientService(repositories.NewMemoryStore(memory.New()), nil)
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Locals("user", &token.Payload{ID: uuid.New(), Username: "tester", Role: role})
		return c.Next()
	})
	routes.ClientInitRoutes(api, controllers.NewClientController(svc))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

const companyBody = `{"address":"ul. Prosta 1","email":"biuro@acme.pl","phone":"600100200","isCompany":true,"companyName":"Acme","krs":"0000123456"}`

func TestClientLifecycleOverHTTP(t *testing.T) {
	app := newClientApp("Admin")

	status, env := do(t, app, "POST", "/api/clients", `{"address":"ul. Krzywa 2","email":"jan@k.pl","phone":"600100200","isCompany":false,"name":"Jan","surname":"Kowalski","pesel":"90010112345"}`)
	require.Equal(t, fiber.StatusCreated, status, env.Message)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, _ = do(t, app, "PUT", "/api/clients/"+created.ID, `{"address":"ul. Nowa 3","email":"jan@n.pl","phone":"700700700","surname":"Nowak"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, env = do(t, app, "GET", "/api/clients/"+created.ID, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"Nowak"`)

	status, _ = do(t, app, "DELETE", "/api/clients/"+created.ID, "")
	assert.Equal(t, fiber.StatusOK, status)

	status, env = do(t, app, "GET", "/api/clients?kind=individual", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"total_items":1`)
	assert.Contains(t, string(env.Data), `"DELETED"`)
}

func TestDeleteCompanyIsBadRequest(t *testing.T) {
	app := newClientApp("Admin")

	status, env := do(t, app, "POST", "/api/clients", companyBody)
	require.Equal(t, fiber.StatusCreated, status)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env = do(t, app, "DELETE", "/api/clients/"+created.ID, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	require.NotNil(t, env.Error)

	status, _ = do(t, app, "POST", "/api/clients", companyBody)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestClientErrors(t *testing.T) {
	app := newClientApp("Admin")

	status, _ := do(t, app, "GET", "/api/clients/not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, "GET", "/api/clients/"+uuid.NewString(), "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, app, "POST", "/api/clients", `{"address":`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, "GET", "/api/clients?page=0", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestClientMutationsNeedAdmin(t *testing.T) {
	app := newClientApp("User")

	status, _ := do(t, app, "POST", "/api/clients", companyBody)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = do(t, app, "GET", "/api/clients", "")
	assert.Equal(t, fiber.StatusOK, status)
}
