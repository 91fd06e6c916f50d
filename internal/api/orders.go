package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"jaanmak/internal/domain/orders"
)

func (c *Client) CreateOrder(ctx context.Context, token string, d orders.Draft) (orders.Order, error) {
	var w wireOrder
	if err := c.do(ctx, http.MethodPost, "/orders", token, d, &w); err != nil {
		return orders.Order{}, err
	}
	return w.order()
}

// VerifyPayment asks the server to confirm the gateway reference and mark
// the order paid.
func (c *Client) VerifyPayment(ctx context.Context, token, orderID, reference string) (orders.Order, error) {
	body := map[string]string{"reference": reference}
	var w wireOrder
	if err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(orderID)+"/pay", token, body, &w); err != nil {
		return orders.Order{}, err
	}
	return w.order()
}

// Orders lists every order. Admin only.
func (c *Client) Orders(ctx context.Context, token string) ([]orders.Order, error) {
	return c.orderList(ctx, "/orders", token)
}

// MyOrders lists the caller's own orders.
func (c *Client) MyOrders(ctx context.Context, token string) ([]orders.Order, error) {
	return c.orderList(ctx, "/orders/myorders", token)
}

func (c *Client) orderList(ctx context.Context, path, token string) ([]orders.Order, error) {
	var raw []json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList(raw, "order", c.logger, wireOrder.order), nil
}

// UpdateOrderStatus returns only the fields the transition changed.
func (c *Client) UpdateOrderStatus(ctx context.Context, token, id string, status orders.Status) (orders.StatusPatch, error) {
	body := map[string]string{"status": string(status)}
	var w wireOrder
	if err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/status", token, body, &w); err != nil {
		return orders.StatusPatch{}, err
	}
	return w.patch(), nil
}

func (c *Client) CancelOrder(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/cancel", token, nil, nil)
}
