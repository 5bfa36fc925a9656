package orders

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind tells which listing an order was fetched from.
type Kind int

const (
	KindConsumer Kind = iota
	KindFarmer
	KindHandler
)

func (k Kind) String() string {
	switch k {
	case KindConsumer:
		return "consumer"
	case KindFarmer:
		return "farmer"
	case KindHandler:
		return "handler"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// View is the common surface of the three order variants.
type View interface {
	Kind() Kind
	OrderID() int64
	CurrentStatus() Status
	Validate() error
}

var (
	ErrInvalidQuantity = errors.New("item quantity must be positive")
	ErrInvalidPrice    = errors.New("item price must not be negative")
)

type OrderItem struct {
	ProductID   int64           `json:"productId,omitempty"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i OrderItem) Validate() error {
	if i.Quantity <= 0 {
		return fmt.Errorf("%s: %w", i.ProductName, ErrInvalidQuantity)
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("%s: %w", i.ProductName, ErrInvalidPrice)
	}
	return nil
}

// FarmOrder is the share of an order fulfilled by one farm. Its status moves
// independently of the parent order.
type FarmOrder struct {
	ID           int64       `json:"id"`
	FarmID       int64       `json:"farmId"`
	FarmName     string      `json:"farmName"`
	Status       Status      `json:"orderStatus"`
	DeliveryTime string      `json:"deliveryTime"`
	Items        []OrderItem `json:"items"`
}

func (f FarmOrder) Kind() Kind            { return KindFarmer }
func (f FarmOrder) OrderID() int64        { return f.ID }
func (f FarmOrder) CurrentStatus() Status { return f.Status }

func (f FarmOrder) Validate() error {
	if !f.Status.IsValid() {
		return fmt.Errorf("farm order %d: %w: %q", f.ID, ErrUnknownStatus, f.Status)
	}
	return validateItems(f.Items)
}

// Order is what a consumer placed: one total, one status, many farm orders.
type Order struct {
	ID                    int64           `json:"id"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	Status                Status          `json:"orderStatus"`
	EstimatedDeliveryTime string          `json:"estimatedDeliveryTime"`
	FarmOrders            []FarmOrder     `json:"farmOrders"`
}

func (o Order) Kind() Kind            { return KindConsumer }
func (o Order) OrderID() int64        { return o.ID }
func (o Order) CurrentStatus() Status { return o.Status }

func (o Order) Validate() error {
	if !o.Status.IsValid() {
		return fmt.Errorf("order %d: %w: %q", o.ID, ErrUnknownStatus, o.Status)
	}
	for _, fo := range o.FarmOrders {
		if err := fo.Validate(); err != nil {
			return fmt.Errorf("order %d: %w", o.ID, err)
		}
	}
	return nil
}

// HandlerOrder is the delivery-side view of an order.
type HandlerOrder struct {
	ID                    int64           `json:"id"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	Status                Status          `json:"orderStatus"`
	EstimatedDeliveryTime string          `json:"estimatedDeliveryTime"`
	Items                 []OrderItem     `json:"items,omitempty"`
	FarmOrders            []FarmOrder     `json:"farmOrders,omitempty"`
}

func (h HandlerOrder) Kind() Kind            { return KindHandler }
func (h HandlerOrder) OrderID() int64        { return h.ID }
func (h HandlerOrder) CurrentStatus() Status { return h.Status }

func (h HandlerOrder) Validate() error {
	if !h.Status.IsValid() {
		return fmt.Errorf("order %d: %w: %q", h.ID, ErrUnknownStatus, h.Status)
	}
	if err := validateItems(h.Items); err != nil {
		return fmt.Errorf("order %d: %w", h.ID, err)
	}
	for _, fo := range h.FarmOrders {
		if err := fo.Validate(); err != nil {
			return fmt.Errorf("order %d: %w", h.ID, err)
		}
	}
	return nil
}

func validateItems(items []OrderItem) error {
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return nil
}
