package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

func TestClient_StatusUpdateQuery(t *testing.T) {
	tests := []struct {
		name      string
		update    func(c *Client) error
		wantPath  string
		wantQuery string
	}{
		{
			name: "farm order with delivery time",
			update: func(c *Client) error {
				return c.UpdateFarmOrderStatus(context.Background(), 7, orders.StatusReady, "2025-06-01T14:30")
			},
			wantPath:  "/orders/farm-order/7/status",
			wantQuery: "deliveryTime=2025-06-01T14%3A30&status=READY",
		},
		{
			name: "farm order with empty delivery time",
			update: func(c *Client) error {
				return c.UpdateFarmOrderStatus(context.Background(), 7, orders.StatusReady, "")
			},
			wantPath:  "/orders/farm-order/7/status",
			wantQuery: "status=READY",
		},
		{
			name: "handler with eta",
			update: func(c *Client) error {
				return c.UpdateHandlerOrderStatus(context.Background(), 9, orders.StatusReady, "2025-06-02T09:00")
			},
			wantPath:  "/orders/handler/9/status",
			wantQuery: "estimatedDeliveryTime=2025-06-02T09%3A00&status=READY",
		},
		{
			name: "handler with blank eta",
			update: func(c *Client) error {
				return c.UpdateHandlerOrderStatus(context.Background(), 9, orders.StatusPending, "  ")
			},
			wantPath:  "/orders/handler/9/status",
			wantQuery: "status=PENDING",
		},
		{
			name: "confirm delivery",
			update: func(c *Client) error {
				return c.ConfirmDelivery(context.Background(), 42, "123456")
			},
			wantPath:  "/orders/handler/42/deliver",
			wantQuery: "code=123456",
		},
		{
			name: "regenerate code",
			update: func(c *Client) error {
				return c.RegenerateDeliveryCode(context.Background(), 42)
			},
			wantPath: "/orders/consumer/42/regenerate-code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				_, _ = w.Write([]byte("OK"))
			})

			require.NoError(t, tt.update(c))
		})
	}
}

func TestClient_ConsumerOrders(t *testing.T) {
	t.Run("decodes nested farm orders", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/consumer", r.URL.Path)
			_, _ = w.Write([]byte(`[{
				"id": 1, "totalAmount": 12.50, "orderStatus": "ready",
				"estimatedDeliveryTime": "2025-06-01T15:00:00",
				"farmOrders": [{"id": 11, "farmId": 3, "farmName": "Green Acres", "orderStatus": "READY",
					"deliveryTime": null, "items": [{"productName": "Tomato", "quantity": 5, "price": 2.5}]}]
			}]`))
		})

		list, err := c.ConsumerOrders(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, orders.StatusReady, list[0].Status)
		assert.True(t, decimal.RequireFromString("12.5").Equal(list[0].TotalAmount))
		require.Len(t, list[0].FarmOrders, 1)
		assert.Equal(t, "Green Acres", list[0].FarmOrders[0].FarmName)
	})

	t.Run("unknown status is a decode error", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id": 1, "orderStatus": "SHIPPED"}]`))
		})

		_, err := c.ConsumerOrders(context.Background())
		assert.True(t, IsKind(err, KindDecode))
		assert.ErrorIs(t, err, orders.ErrUnknownStatus)
	})

	t.Run("invalid item is a decode error", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id": 2, "orderStatus": "PENDING", "items": [{"productName": "Egg", "quantity": 0, "price": 1}]}]`))
		})

		_, err := c.HandlerOrders(context.Background())
		assert.True(t, IsKind(err, KindDecode))
		assert.ErrorIs(t, err, orders.ErrInvalidQuantity)
	})

	t.Run("empty body is an empty list", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		list, err := c.FarmOrders(context.Background(), 3)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestClient_DeliveryCode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "object", body: `{"code":"482913"}`, want: "482913"},
		{name: "object with number", body: `{"code":482913}`, want: "482913"},
		{name: "json string", body: `"482913"`, want: "482913"},
		{name: "plain text", body: "482913\n", want: "482913"},
		{name: "leading zero text", body: "012345", want: "012345"},
		{name: "empty", body: "", wantErr: true},
		{name: "object without code", body: `{"otp":"1"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/orders/consumer/42/delivery-code", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			})

			code, err := c.DeliveryCode(context.Background(), 42)
			if tt.wantErr {
				assert.True(t, IsKind(err, KindDecode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orders.DeliveryCode{OrderID: 42, Code: tt.want}, code)
		})
	}
}
