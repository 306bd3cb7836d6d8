package toolserver

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"oms/pkg/logger"
)

// NewServer builds the MCP server exposing the six ledger operations as
// tools. Each handler forwards its structured arguments to the OMS REST API
// and relays the JSON response verbatim.
func NewServer(client *Client, log *logger.Logger) *server.MCPServer {
	s := server.NewMCPServer("oms-tools", "1.0.0")
	h := &toolHandlers{client: client, log: log}

	s.AddTool(mcp.NewTool("place_order",
		mcp.WithDescription("Place a new order in the Order Management System. The order is created with 'pending' status and a generated order_id."),
		mcp.WithString("customer_id",
			mcp.Required(),
			mcp.Description("The unique identifier for the customer placing the order"),
		),
		mcp.WithArray("items",
			mcp.Required(),
			mcp.Description("List of order items, each with product_id, product_name, quantity and unit_price"),
		),
		mcp.WithObject("shipping_address",
			mcp.Required(),
			mcp.Description("Shipping address with street, city, state, zip_code and country"),
		),
	), h.placeOrder)

	s.AddTool(mcp.NewTool("get_order_details",
		mcp.WithDescription("Get full details of an order including items, shipping address, total and timestamps."),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("The unique order identifier (e.g. ORD-001)"),
		),
	), h.getOrderDetails)

	s.AddTool(mcp.NewTool("get_order_status",
		mcp.WithDescription("Check the current status of an order."),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("The unique order identifier (e.g. ORD-001)"),
		),
	), h.getOrderStatus)

	s.AddTool(mcp.NewTool("update_order",
		mcp.WithDescription("Update an existing order's items and/or shipping address. Only orders with status 'pending' or 'processing' can be updated."),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("The unique order identifier to update (e.g. ORD-001)"),
		),
		mcp.WithArray("items",
			mcp.Description("Optional new list of order items replacing the existing items"),
		),
		mcp.WithObject("shipping_address",
			mcp.Description("Optional new shipping address replacing the existing one"),
		),
	), h.updateOrder)

	s.AddTool(mcp.NewTool("cancel_order",
		mcp.WithDescription("Cancel an existing order. Orders that are already shipped, delivered or cancelled cannot be cancelled."),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("The unique order identifier to cancel (e.g. ORD-001)"),
		),
	), h.cancelOrder)

	s.AddTool(mcp.NewTool("list_orders",
		mcp.WithDescription("List all orders in the system with their details and total count."),
	), h.listOrders)

	return s
}

type toolHandlers struct {
	client *Client
	log    *logger.Logger
}

func (h *toolHandlers) placeOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	customerID, err := stringArg(args, "customer_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload := map[string]interface{}{
		"customer_id":      customerID,
		"items":            args["items"],
		"shipping_address": args["shipping_address"],
	}

	return h.relay(ctx, "place_order", func() ([]byte, error) {
		return h.client.PlaceOrder(ctx, payload)
	})
}

func (h *toolHandlers) getOrderDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := stringArg(request.Params.Arguments, "order_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return h.relay(ctx, "get_order_details", func() ([]byte, error) {
		return h.client.GetOrder(ctx, orderID)
	})
}

func (h *toolHandlers) getOrderStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := stringArg(request.Params.Arguments, "order_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return h.relay(ctx, "get_order_status", func() ([]byte, error) {
		return h.client.GetOrderStatus(ctx, orderID)
	})
}

func (h *toolHandlers) updateOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	orderID, err := stringArg(args, "order_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Omitted fields are left out of the payload so they keep their
	// prior value server-side
	payload := map[string]interface{}{}
	if items, ok := args["items"]; ok && items != nil {
		payload["items"] = items
	}
	if address, ok := args["shipping_address"]; ok && address != nil {
		payload["shipping_address"] = address
	}

	return h.relay(ctx, "update_order", func() ([]byte, error) {
		return h.client.UpdateOrder(ctx, orderID, payload)
	})
}

func (h *toolHandlers) cancelOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := stringArg(request.Params.Arguments, "order_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return h.relay(ctx, "cancel_order", func() ([]byte, error) {
		return h.client.CancelOrder(ctx, orderID)
	})
}

func (h *toolHandlers) listOrders(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.relay(ctx, "list_orders", func() ([]byte, error) {
		return h.client.ListOrders(ctx)
	})
}

// relay executes the API call and converts the outcome into a tool result.
// API-level failures come back as tool errors carrying the API's own error
// envelope, never as protocol faults.
func (h *toolHandlers) relay(ctx context.Context, tool string, call func() ([]byte, error)) (*mcp.CallToolResult, error) {
	data, err := call()
	if err != nil {
		h.log.WithContext(ctx).Error("tool call failed",
			zap.String("tool", tool),
			zap.Error(err),
		)

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return mcp.NewToolResultError(apiErr.Body), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	h.log.WithContext(ctx).Debug("tool call succeeded", zap.String("tool", tool))
	return mcp.NewToolResultText(string(data)), nil
}

func stringArg(args map[string]interface{}, key string) (string, error) {
	value, ok := args[key].(string)
	if !ok || value == "" {
		return "", errors.New(key + " is required and must be a string")
	}
	return value, nil
}
