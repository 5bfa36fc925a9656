package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

func validateAll[T orders.View](list []T, r call, status int) error {
	for _, v := range list {
		if err := v.Validate(); err != nil {
			return &Error{Kind: KindDecode, Method: r.method, Path: r.path, StatusCode: status, Err: err}
		}
	}
	return nil
}

func listOrders[T orders.View](ctx context.Context, c *Client, r call) ([]T, error) {
	r.method = http.MethodGet
	resp, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	var list []T
	if err := decodeJSON(resp, r, &list); err != nil {
		return nil, err
	}
	if err := validateAll(list, r, resp.StatusCode); err != nil {
		return nil, err
	}
	return list, nil
}

// ConsumerOrders lists the orders placed by the session user.
func (c *Client) ConsumerOrders(ctx context.Context) ([]orders.Order, error) {
	return listOrders[orders.Order](ctx, c, call{route: "/orders/consumer", path: "/orders/consumer"})
}

// FarmOrders lists the farm orders of one farm.
func (c *Client) FarmOrders(ctx context.Context, farmID int64) ([]orders.FarmOrder, error) {
	return listOrders[orders.FarmOrder](ctx, c, call{
		route: "/orders/farm/{farmId}",
		path:  fmt.Sprintf("/orders/farm/%d", farmID),
	})
}

// HandlerOrders lists the orders assigned to handlers.
func (c *Client) HandlerOrders(ctx context.Context) ([]orders.HandlerOrder, error) {
	return listOrders[orders.HandlerOrder](ctx, c, call{route: "/orders/handler", path: "/orders/handler"})
}

// statusQuery builds status=S and adds timeKey=T only for a non-empty T.
func statusQuery(status orders.Status, timeKey, t string) url.Values {
	q := url.Values{"status": {status.String()}}
	if strings.TrimSpace(t) != "" {
		q.Set(timeKey, t)
	}
	return q
}

// UpdateFarmOrderStatus sets a farm order status and, when given, its
// delivery time.
func (c *Client) UpdateFarmOrderStatus(ctx context.Context, id int64, status orders.Status, deliveryTime string) error {
	_, err := c.do(ctx, call{
		method:  http.MethodPut,
		route:   "/orders/farm-order/{id}/status",
		path:    fmt.Sprintf("/orders/farm-order/%d/status", id),
		query:   statusQuery(status, "deliveryTime", deliveryTime),
		orderID: id,
		status:  status.String(),
	})
	return err
}

// UpdateHandlerOrderStatus sets an order status from the handler side and,
// when given, its estimated delivery time.
func (c *Client) UpdateHandlerOrderStatus(ctx context.Context, id int64, status orders.Status, eta string) error {
	_, err := c.do(ctx, call{
		method:  http.MethodPut,
		route:   "/orders/handler/{id}/status",
		path:    fmt.Sprintf("/orders/handler/%d/status", id),
		query:   statusQuery(status, "estimatedDeliveryTime", eta),
		orderID: id,
		status:  status.String(),
	})
	return err
}

// ConfirmDelivery submits the consumer's code. The backend moves the order to
// DELIVERED on success and answers 4xx with a message otherwise.
func (c *Client) ConfirmDelivery(ctx context.Context, id int64, code string) error {
	_, err := c.do(ctx, call{
		method:  http.MethodPut,
		route:   "/orders/handler/{id}/deliver",
		path:    fmt.Sprintf("/orders/handler/%d/deliver", id),
		query:   url.Values{"code": {code}},
		orderID: id,
		status:  orders.StatusDelivered.String(),
	})
	return err
}

func (c *Client) RegenerateDeliveryCode(ctx context.Context, id int64) error {
	_, err := c.do(ctx, call{
		method:  http.MethodPut,
		route:   "/orders/consumer/{id}/regenerate-code",
		path:    fmt.Sprintf("/orders/consumer/%d/regenerate-code", id),
		orderID: id,
	})
	return err
}

// DeliveryCode fetches the current code. The body may be {"code": "..."}, a
// JSON string or plain text.
func (c *Client) DeliveryCode(ctx context.Context, id int64) (orders.DeliveryCode, error) {
	r := call{
		method: http.MethodGet,
		route:  "/orders/consumer/{id}/delivery-code",
		path:   fmt.Sprintf("/orders/consumer/%d/delivery-code", id),
	}
	resp, err := c.do(ctx, r)
	if err != nil {
		return orders.DeliveryCode{}, err
	}

	code, err := parseCode(resp)
	if err != nil {
		return orders.DeliveryCode{}, &Error{Kind: KindDecode, Method: r.method, Path: r.path, StatusCode: resp.StatusCode, Err: err}
	}
	return orders.DeliveryCode{OrderID: id, Code: code}, nil
}

var errEmptyCode = errors.New("empty delivery code")

func parseCode(resp *Response) (string, error) {
	if resp.IsJSON() {
		var obj struct {
			Code json.RawMessage `json:"code"`
		}
		if err := json.Unmarshal(resp.Body, &obj); err == nil && len(obj.Code) > 0 {
			return rawScalar(obj.Code)
		}
		var s string
		if err := json.Unmarshal(resp.Body, &s); err == nil {
			return nonEmpty(s)
		}
		return rawScalar(resp.Body)
	}
	return nonEmpty(resp.Text())
}

// rawScalar accepts a JSON string or number.
func rawScalar(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return nonEmpty(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return nonEmpty(n.String())
	}
	return "", fmt.Errorf("unexpected delivery code payload %s", raw)
}

func nonEmpty(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errEmptyCode
	}
	return s, nil
}
