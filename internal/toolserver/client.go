package toolserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is a thin HTTP client for the OMS REST API. The tool server adds no
// business logic; every call maps onto one API endpoint and the response body
// is relayed verbatim.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the OMS API at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx response from the OMS API. The body is preserved so
// the caller can surface the API's own error envelope.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OMS API returned status %d: %s", e.StatusCode, e.Body)
}

// PlaceOrder forwards a place_order call to POST /orders
func (c *Client) PlaceOrder(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/orders", payload)
}

// GetOrder forwards a get_order_details call to GET /orders/{id}
func (c *Client) GetOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil)
}

// GetOrderStatus forwards a get_order_status call to GET /orders/{id}/status
func (c *Client) GetOrderStatus(ctx context.Context, orderID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID)+"/status", nil)
}

// UpdateOrder forwards an update_order call to PUT /orders/{id}
func (c *Client) UpdateOrder(ctx context.Context, orderID string, payload map[string]interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(orderID), payload)
}

// CancelOrder forwards a cancel_order call to POST /orders/{id}/cancel
func (c *Client) CancelOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/orders/"+url.PathEscape(orderID)+"/cancel", nil)
}

// ListOrders forwards a list_orders call to GET /orders
func (c *Client) ListOrders(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/orders", nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload map[string]interface{}) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach OMS API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}
