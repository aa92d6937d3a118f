package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appordering "github.com/pedidoflow/backend/internal/application/ordering"
	"github.com/pedidoflow/backend/internal/infrastructure/auth"
	"github.com/pedidoflow/backend/internal/infrastructure/config"
	"github.com/pedidoflow/backend/internal/infrastructure/persistence"
	"github.com/pedidoflow/backend/internal/interfaces/http/middleware"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "handler-test-secret",
		Expiration: time.Hour,
		Issuer:     "pedidoflow-test",
	})
	token, _, err := jwtService.GenerateToken("admin")
	require.NoError(t, err)

	service := appordering.NewService(persistence.NewMemoryOrderRepository())
	handler := NewOrderHandler(service, middleware.JWTAuth(jwtService, zap.NewNop()))

	engine := gin.New()
	handler.RegisterRoutes(engine.Group(""))
	return engine, token
}

func performRequest(engine *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func orderBody(orderID string) string {
	return fmt.Sprintf(`{
		"numeroPedido": %q,
		"valorTotal": 100.5,
		"dataCriacao": "2023-07-19T12:24:11.529Z",
		"items": [
			{"idItem": "2434", "quantidadeItem": 1, "valorItem": 100.5}
		]
	}`, orderID)
}

func TestOrderHandler_Create(t *testing.T) {
	engine, token := newTestRouter(t)

	w := performRequest(engine, http.MethodPost, "/order", orderBody("v10089015vdb-01"), token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp appordering.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "v10089015vdb", resp.OrderID)
	assert.Equal(t, 100.5, resp.Value)
	assert.Equal(t, "2023-07-19T12:24:11.529Z", resp.CreationDate)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(2434), resp.Items[0].ProductID)
}

func TestOrderHandler_CreateRequiresAuth(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := performRequest(engine, http.MethodPost, "/order", orderBody("a-1"), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderHandler_CreateDuplicate(t *testing.T) {
	engine, token := newTestRouter(t)

	w := performRequest(engine, http.MethodPost, "/order", orderBody("dup-1"), token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(engine, http.MethodPost, "/order", orderBody("dup-2"), token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ALREADY_EXISTS")
}

func TestOrderHandler_CreateSchemaViolation(t *testing.T) {
	engine, token := newTestRouter(t)

	body := `{"numeroPedido": "x-1", "valorTotal": 10, "dataCriacao": "2023-07-19", "items": []}`
	w := performRequest(engine, http.MethodPost, "/order", body, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "items")
}

func TestOrderHandler_CreateMalformedJSON(t *testing.T) {
	engine, token := newTestRouter(t)

	w := performRequest(engine, http.MethodPost, "/order", `{"numeroPedido": `, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BAD_REQUEST")
}

func TestOrderHandler_CreateUnparsableValues(t *testing.T) {
	engine, token := newTestRouter(t)

	body := `{
		"numeroPedido": "y-1",
		"valorTotal": "abc",
		"dataCriacao": "not a date",
		"items": [{"idItem": "2434", "quantidadeItem": 1, "valorItem": 10}]
	}`
	w := performRequest(engine, http.MethodPost, "/order", body, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "value")
	assert.Contains(t, w.Body.String(), "creationDate")
}

func TestOrderHandler_Get(t *testing.T) {
	engine, token := newTestRouter(t)

	w := performRequest(engine, http.MethodPost, "/order", orderBody("g-1"), token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(engine, http.MethodGet, "/order/g", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp appordering.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "g", resp.OrderID)
}

func TestOrderHandler_GetNotFound(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := performRequest(engine, http.MethodGet, "/order/missing", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestOrderHandler_List(t *testing.T) {
	engine, token := newTestRouter(t)

	w := performRequest(engine, http.MethodGet, "/order/list", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	performRequest(engine, http.MethodPost, "/order", orderBody("l1-x"), token)
	performRequest(engine, http.MethodPost, "/order", orderBody("l2-x"), token)

	w = performRequest(engine, http.MethodGet, "/order/list", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp []appordering.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "l1", resp[0].OrderID)
	assert.Equal(t, "l2", resp[1].OrderID)
}

func TestOrderHandler_Update(t *testing.T) {
	engine, token := newTestRouter(t)

	w := performRequest(engine, http.MethodPost, "/order", orderBody("u-1"), token)
	require.Equal(t, http.StatusCreated, w.Code)

	body := `{
		"numeroPedido": "ignored-by-targeting",
		"valorTotal": "250.75",
		"dataCriacao": "2024-01-02T03:04:05.000Z",
		"items": [
			{"idItem": 9, "quantidadeItem": "3", "valorItem": "83.58"},
			{"idItem": 10, "quantidadeItem": 1, "valorItem": 0.01}
		]
	}`
	w = performRequest(engine, http.MethodPut, "/order/u", body, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp appordering.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u", resp.OrderID)
	assert.Equal(t, 250.75, resp.Value)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(9), resp.Items[0].ProductID)
	assert.Equal(t, float64(3), resp.Items[0].Quantity)
}

func TestOrderHandler_UpdateNotFound(t *testing.T) {
	engine, token := newTestRouter(t)

	w := performRequest(engine, http.MethodPut, "/order/missing", orderBody("missing"), token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_UpdateRequiresAuth(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := performRequest(engine, http.MethodPut, "/order/u", orderBody("u"), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderHandler_Delete(t *testing.T) {
	engine, token := newTestRouter(t)

	w := performRequest(engine, http.MethodPost, "/order", orderBody("d-1"), token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(engine, http.MethodDelete, "/order/d", "", token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = performRequest(engine, http.MethodGet, "/order/d", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_DeleteNotFound(t *testing.T) {
	engine, token := newTestRouter(t)

	w := performRequest(engine, http.MethodDelete, "/order/missing", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_DeleteRequiresAuth(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := performRequest(engine, http.MethodDelete, "/order/d", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
