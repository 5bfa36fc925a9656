package orders

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "PENDING", want: StatusPending},
		{in: "ready", want: StatusReady},
		{in: " Delivered ", want: StatusDelivered},
		{in: "CANCELLED", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseStatus(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBadgeColor(t *testing.T) {
	assert.Equal(t, "orange", BadgeColor("pending"))
	assert.Equal(t, "green", BadgeColor("READY"))
	assert.Equal(t, "blue", BadgeColor("Delivered"))
	assert.Equal(t, "gray", BadgeColor("shipped"))
	assert.Equal(t, "green", StatusReady.BadgeColor())
}

func TestOrderDecode(t *testing.T) {
	t.Run("consumer order", func(t *testing.T) {
		body := `{
			"id": 1,
			"totalAmount": 42.5,
			"orderStatus": "ready",
			"estimatedDeliveryTime": "2025-06-01T14:30:00",
			"farmOrders": [{
				"id": 7, "farmId": 3, "farmName": "Green Acres",
				"orderStatus": "PENDING", "deliveryTime": null,
				"items": [{"productName": "Tomato", "quantity": 3, "price": 2.5}]
			}]
		}`

		var o Order
		require.NoError(t, json.Unmarshal([]byte(body), &o))
		require.NoError(t, o.Validate())

		assert.Equal(t, StatusReady, o.Status)
		assert.Equal(t, KindConsumer, o.Kind())
		assert.True(t, decimal.RequireFromString("42.5").Equal(o.TotalAmount))
		require.Len(t, o.FarmOrders, 1)
		assert.Equal(t, "", o.FarmOrders[0].DeliveryTime)
		assert.True(t, decimal.RequireFromString("7.5").Equal(o.FarmOrders[0].Items[0].Subtotal()))
	})

	t.Run("unknown status is a decode error", func(t *testing.T) {
		var o Order
		err := json.Unmarshal([]byte(`{"id":1,"orderStatus":"SHIPPED"}`), &o)
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})

	t.Run("missing status fails validation", func(t *testing.T) {
		var o HandlerOrder
		require.NoError(t, json.Unmarshal([]byte(`{"id":9}`), &o))
		assert.ErrorIs(t, o.Validate(), ErrUnknownStatus)
	})

	t.Run("negative price fails validation", func(t *testing.T) {
		fo := FarmOrder{
			ID:     1,
			Status: StatusPending,
			Items:  []OrderItem{{ProductName: "Corn", Quantity: 1, Price: decimal.NewFromInt(-1)}},
		}
		assert.ErrorIs(t, fo.Validate(), ErrInvalidPrice)
	})

	t.Run("zero quantity fails validation", func(t *testing.T) {
		fo := FarmOrder{
			ID:     1,
			Status: StatusPending,
			Items:  []OrderItem{{ProductName: "Corn", Quantity: 0, Price: decimal.NewFromInt(1)}},
		}
		assert.ErrorIs(t, fo.Validate(), ErrInvalidQuantity)
	})
}

func TestParseTimestamp(t *testing.T) {
	t.Run("zoneless seconds in local time", func(t *testing.T) {
		got, err := ParseTimestamp("2025-06-01T14:30:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 14, 30, 0, 0, time.Local), got)
	})

	t.Run("zoneless minutes", func(t *testing.T) {
		got, err := ParseTimestamp("2025-06-01T14:30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 14, 30, 0, 0, time.Local), got)
	})

	t.Run("fractional seconds", func(t *testing.T) {
		got, err := ParseTimestamp("2025-06-01T14:30:00.123")
		require.NoError(t, err)
		assert.Equal(t, 123*int(time.Millisecond), got.Nanosecond())
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := ParseTimestamp("2025-06-01T14:30:00Z")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseTimestamp("  ")
		assert.ErrorIs(t, err, ErrEmptyTimestamp)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseTimestamp("tomorrow")
		assert.Error(t, err)
	})
}

func TestEditableTime(t *testing.T) {
	assert.Equal(t, "2025-06-01T14:30", EditableTime("2025-06-01T14:30:59.123"))
	assert.Equal(t, "2025-06-01T14:30", EditableTime("2025-06-01T14:30"))
	assert.Equal(t, "", EditableTime(""))
}

func TestValidCode(t *testing.T) {
	assert.True(t, ValidCode("123456"))
	assert.True(t, ValidCode("000000"))
	assert.False(t, ValidCode("12345"))
	assert.False(t, ValidCode("1234567"))
	assert.False(t, ValidCode("12a456"))
	assert.False(t, ValidCode(""))
}
