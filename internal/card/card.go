//go:generate mockgen -source ./card.go -destination=./mocks/card.go -package=mock_card
package card

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

// OrderAPI is the slice of the backend client the cards mutate orders with.
type OrderAPI interface {
	UpdateFarmOrderStatus(ctx context.Context, id int64, status orders.Status, deliveryTime string) error
	UpdateHandlerOrderStatus(ctx context.Context, id int64, status orders.Status, eta string) error
	ConfirmDelivery(ctx context.Context, id int64, code string) error
	RegenerateDeliveryCode(ctx context.Context, id int64) error
	DeliveryCode(ctx context.Context, id int64) (orders.DeliveryCode, error)
}

// Notifier shows transient notices to the user.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// Refresher reloads the listing a card belongs to.
type Refresher interface {
	Refresh(ctx context.Context) error
}

var (
	ErrCodeIncomplete = errors.New("delivery code must be 6 digits")
	ErrNotReady       = errors.New("order is not ready")
)

const (
	titleUpdated        = "Order updated"
	titleUpdateFailed   = "Update failed"
	titleDelivered      = "Delivery confirmed"
	titleDeliverFailed  = "Confirmation failed"
	titleCodeRegenerate = "New code generated"
	titleCodeFailed     = "Delivery code"

	msgUpdateFallback  = "Failed to update order status"
	msgDeliverFallback = "Failed to confirm delivery"
	msgCodeFallback    = "Failed to get delivery code"
)

// Deps bundles what every card needs. Refresher may be nil.
type Deps struct {
	API       OrderAPI
	Notifier  Notifier
	Refresher Refresher
	Logger    *zap.Logger
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func (d Deps) refresh(ctx context.Context, logger *zap.Logger) {
	if d.Refresher == nil {
		return
	}
	if err := d.Refresher.Refresh(ctx); err != nil {
		logger.Warn("Listing refresh failed", zap.Error(err))
	}
}
