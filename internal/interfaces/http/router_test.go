package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/csvexport"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/stock-ledger/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stock-ledger/pkg/jwt"
)

// buildAPI arma la API completa sobre un almacenamiento en memoria.
func buildAPI(t *testing.T, rateLimit string) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	log := zerolog.Nop()
	balances := inventory.NewBalanceUseCase(store, log, 0)
	lim, err := apphttp.NewRateLimiter(rateLimit)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:        usecase.NewCatalogUseCase(store, log),
		RegisterMovement: inventory.NewRegisterMovementUseCase(store, log),
		Balances:         balances,
		Reports:          inventory.NewReportUseCase(balances, pdf.NewMarotoStockReportGenerator("test"), csvexport.NewStockReportWriter()),
		JWTSecret:        testJWTSecret,
		RateLimiter:      lim,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, role string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func create(t *testing.T, app *fiber.App, path, name string) dto.EntityResponse {
	t.Helper()
	resp := call(t, app, http.MethodPost, path, pkgjwt.RoleOperator, dto.CreateEntityRequest{Name: name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.EntityResponse](t, resp)
}

func TestAPI_FlujoCompleto(t *testing.T) {
	app := buildAPI(t, "")
	laptop := create(t, app, "/api/products", "Laptop")
	x := create(t, app, "/api/locations", "Location X")
	y := create(t, app, "/api/locations", "Location Y")

	resp := call(t, app, http.MethodPost, "/api/movements", pkgjwt.RoleOperator, dto.RecordMovementRequest{
		ProductID: laptop.ID, ToLocationID: x.ID, Quantity: 50,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	mov := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, int64(1), mov.ID)

	resp = call(t, app, http.MethodPost, "/api/movements", pkgjwt.RoleAdmin, dto.RecordMovementRequest{
		ProductID: laptop.ID, FromLocationID: x.ID, ToLocationID: y.ID, Quantity: 20,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	report := decode[dto.StockReportResponse](t, call(t, app, http.MethodGet, "/api/report", "", nil))
	require.Len(t, report.Balances, 2)
	assert.Equal(t, "Location X", report.Balances[0].LocationName)
	assert.Equal(t, int64(30), report.Balances[0].Quantity)
	assert.Equal(t, int64(20), report.Balances[1].Quantity)
	assert.Empty(t, report.Anomalies)

	recent := decode[dto.MovementListResponse](t, call(t, app, http.MethodGet, "/api/movements?limit=1", "", nil))
	require.Len(t, recent.Items, 1)
	assert.Equal(t, int64(2), recent.Items[0].ID)
	assert.Equal(t, "Location X", recent.Items[0].FromLocationName)

	resp = call(t, app, http.MethodGet, "/api/report/csv", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "product,location,quantity\nLaptop,Location X,30\nLaptop,Location Y,20\n", string(raw))

	resp = call(t, app, http.MethodGet, "/api/report/pdf", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	resp.Body.Close()
}

func TestAPI_EscriturasRequierenToken(t *testing.T) {
	app := buildAPI(t, "")

	resp := call(t, app, http.MethodPost, "/api/products", "", dto.CreateEntityRequest{Name: "Laptop"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/products", pkgjwt.RoleViewer, dto.CreateEntityRequest{Name: "Laptop"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Lectura pública
	resp = call(t, app, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.EntityListResponse](t, resp)
	assert.Equal(t, 0, list.Total)
}

func TestAPI_ErroresDeDominio(t *testing.T) {
	app := buildAPI(t, "")
	laptop := create(t, app, "/api/products", "Laptop")
	x := create(t, app, "/api/locations", "Location X")

	t.Run("nombre duplicado → 409 CONFLICT", func(t *testing.T) {
		resp := call(t, app, http.MethodPost, "/api/products", pkgjwt.RoleOperator, dto.CreateEntityRequest{Name: "Laptop"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "CONFLICT", decode[dto.ErrorResponse](t, resp).Code)
	})

	t.Run("cantidad inválida → 400 VALIDATION", func(t *testing.T) {
		resp := call(t, app, http.MethodPost, "/api/movements", pkgjwt.RoleOperator, dto.RecordMovementRequest{
			ProductID: laptop.ID, ToLocationID: x.ID, Quantity: 0,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, "VALIDATION", body.Code)
		assert.Equal(t, "quantity", body.Field)
	})

	t.Run("producto inexistente → 404", func(t *testing.T) {
		resp := call(t, app, http.MethodPost, "/api/movements", pkgjwt.RoleOperator, dto.RecordMovementRequest{
			ProductID: "00000000-0000-0000-0000-000000000000", ToLocationID: x.ID, Quantity: 1,
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("cuerpo inválido → 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/movements", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", tokenForRole(t, pkgjwt.RoleOperator))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("limit inválido → 400", func(t *testing.T) {
		resp := call(t, app, http.MethodGet, "/api/movements?limit=0", "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "limit", decode[dto.ErrorResponse](t, resp).Field)
	})

	t.Run("renombrar inexistente → 404", func(t *testing.T) {
		resp := call(t, app, http.MethodPut, "/api/locations/no-existe", pkgjwt.RoleOperator, dto.RenameEntityRequest{Name: "Z"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestAPI_EliminarReferenciado(t *testing.T) {
	app := buildAPI(t, "")
	laptop := create(t, app, "/api/products", "Laptop")
	x := create(t, app, "/api/locations", "Location X")
	empty := create(t, app, "/api/locations", "Vacía")

	resp := call(t, app, http.MethodPost, "/api/movements", pkgjwt.RoleOperator, dto.RecordMovementRequest{
		ProductID: laptop.ID, ToLocationID: x.ID, Quantity: 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Solo admin elimina
	resp = call(t, app, http.MethodDelete, "/api/locations/"+x.ID, pkgjwt.RoleOperator, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodDelete, "/api/locations/"+x.ID, pkgjwt.RoleAdmin, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "REFERENCED", body.Code)
	assert.Equal(t, 1, body.Count)

	resp = call(t, app, http.MethodDelete, "/api/locations/"+empty.ID, pkgjwt.RoleAdmin, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_RateLimit(t *testing.T) {
	app := buildAPI(t, "2-M")

	for i, name := range []string{"A", "B"} {
		resp := call(t, app, http.MethodPost, "/api/products", pkgjwt.RoleOperator, dto.CreateEntityRequest{Name: name})
		require.Equal(t, http.StatusCreated, resp.StatusCode, "petición %d", i+1)
		assert.Equal(t, "2", resp.Header.Get("X-RateLimit-Limit"))
		resp.Body.Close()
	}

	resp := call(t, app, http.MethodPost, "/api/products", pkgjwt.RoleOperator, dto.CreateEntityRequest{Name: "C"})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
	assert.Equal(t, "RATE_LIMITED", decode[dto.ErrorResponse](t, resp).Code)

	// Las lecturas no consumen cuota
	resp = call(t, app, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestNewRateLimiter_FormatoInvalido(t *testing.T) {
	_, err := apphttp.NewRateLimiter("muchas-por-minuto")
	assert.Error(t, err)

	lim, err := apphttp.NewRateLimiter("")
	require.NoError(t, err)
	assert.Nil(t, lim)
}
