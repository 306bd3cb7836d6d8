package infrastructure

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oms/internal/orders/adapters"
	"oms/internal/orders/application"
	"oms/pkg/errors"
	"oms/pkg/logger"
	"oms/pkg/middleware"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	store := adapters.NewFileOrderStore(filepath.Join(t.TempDir(), "orders.json"))
	log := logger.New("test", "error")
	useCase := application.NewOrderUseCase(store, nil, log)
	handler := NewHTTPHandler(useCase)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.TraceID())
	router.Use(middleware.ErrorHandler(log))
	handler.RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createOrderBody() map[string]interface{} {
	return map[string]interface{}{
		"customer_id": "CUST-1",
		"items": []map[string]interface{}{
			{"product_id": "PROD-A", "product_name": "Widget", "quantity": 2, "unit_price": 10.00},
			{"product_id": "PROD-B", "product_name": "Gadget", "quantity": 1, "unit_price": 5.00},
		},
		"shipping_address": map[string]interface{}{
			"street":   "123 Main St",
			"city":     "Springfield",
			"state":    "IL",
			"zip_code": "62704",
		},
	}
}

func decodeOrderResponse(t *testing.T, w *httptest.ResponseRecorder) OrderResponse {
	t.Helper()
	var resp OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) errors.ErrorResponse {
	t.Helper()
	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPlaceOrder(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/orders", createOrderBody())

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeOrderResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Order ORD-001 created successfully", resp.Message)
	require.NotNil(t, resp.Order)
	assert.Equal(t, "ORD-001", resp.Order.OrderID)
	assert.Equal(t, "pending", string(resp.Order.Status))
	assert.Equal(t, 25.00, resp.Order.TotalAmount)
	// The country default was applied at the boundary
	assert.Equal(t, "USA", resp.Order.ShippingAddress.Country)
}

func TestPlaceOrder_InvalidBody(t *testing.T) {
	router := newTestRouter(t)

	body := createOrderBody()
	body["items"] = []map[string]interface{}{
		{"product_id": "PROD-A", "product_name": "Widget", "quantity": 0, "unit_price": 10.00},
	}

	w := doRequest(t, router, http.MethodPost, "/orders", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, errors.CodeValidation, resp.Error.Code)
}

func TestGetOrder_NotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/orders/ORD-404", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, errors.CodeNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "ORD-404")
}

func TestGetOrderStatus(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/orders", createOrderBody())

	w := doRequest(t, router, http.MethodGet, "/orders/ORD-001/status", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp OrderStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ORD-001", resp.OrderID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Order status: pending", resp.Message)
}

func TestUpdateOrder(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/orders", createOrderBody())

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": "PROD-C", "product_name": "Gizmo", "quantity": 4, "unit_price": 2.50},
		},
	}
	w := doRequest(t, router, http.MethodPut, "/orders/ORD-001", body)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeOrderResponse(t, w)
	require.NotNil(t, resp.Order)
	assert.Equal(t, 10.00, resp.Order.TotalAmount)
	assert.Equal(t, "pending", string(resp.Order.Status))
}

func TestUpdateOrder_Cancelled(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/orders", createOrderBody())
	doRequest(t, router, http.MethodPost, "/orders/ORD-001/cancel", nil)

	body := map[string]interface{}{
		"shipping_address": map[string]interface{}{
			"street":   "456 Oak Ave",
			"city":     "Shelbyville",
			"state":    "IL",
			"zip_code": "62565",
		},
	}
	w := doRequest(t, router, http.MethodPut, "/orders/ORD-001", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, errors.CodeIllegalTransition, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "cancelled")
}

func TestCancelOrder(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/orders", createOrderBody())

	w := doRequest(t, router, http.MethodPost, "/orders/ORD-001/cancel", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeOrderResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Order ORD-001 has been cancelled", resp.Message)
	require.NotNil(t, resp.Order)
	assert.Equal(t, "cancelled", string(resp.Order.Status))
}

func TestListOrders(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/orders", createOrderBody())
	doRequest(t, router, http.MethodPost, "/orders", createOrderBody())

	w := doRequest(t, router, http.MethodGet, "/orders", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ListOrdersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Orders, 2)
	assert.Equal(t, "ORD-001", resp.Orders[0].OrderID)
	assert.Equal(t, "ORD-002", resp.Orders[1].OrderID)
}
