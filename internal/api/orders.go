package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/wellywell/washboard/internal/types"
)

func (c *Client) ListOrders(ctx context.Context) Result[[]types.Order] {
	return fetchList(ctx, c, "/orders/all", wireOrder.toOrder)
}

func (c *Client) ListPendingOrders(ctx context.Context) Result[[]types.Order] {
	return fetchList(ctx, c, "/orders/pending", wireOrder.toOrder)
}

func (c *Client) ListStudentOrders(ctx context.Context, bagNo string) Result[[]types.Order] {
	return fetchList(ctx, c, "/orders/student/"+url.PathEscape(bagNo), wireOrder.toOrder)
}

func (c *Client) CreateOrder(ctx context.Context, bagNo string, clothes int) (*types.Order, error) {
	body := createOrderBody{BagNo: bagNo, NumberOfClothes: clothes}
	return c.writeOrder(ctx, http.MethodPost, "/orders/create", body)
}

// UpdateOrderStatus sends the status lowercased, as the backend expects.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status types.Status) (*types.Order, error) {
	body := orderStatusBody{Status: strings.ToLower(string(status))}
	return c.writeOrder(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/status", id), body)
}

func (c *Client) UpdateOrderCount(ctx context.Context, id int, clothes int) (*types.Order, error) {
	body := orderCountBody{NoOfClothes: clothes}
	return c.writeOrder(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/count", id), body)
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/orders/%d", id), nil, nil)
}

func (c *Client) writeOrder(ctx context.Context, method, path string, body any) (*types.Order, error) {
	var w *wireOrder
	if err := c.do(ctx, method, path, body, &w); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	o := w.toOrder()
	return &o, nil
}
