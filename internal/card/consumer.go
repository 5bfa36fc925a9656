package card

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/api"
	"github.com/FarmX-org/FarmX-mobile/internal/countdown"
	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

// MsgUnknownTime replaces the countdown when a READY order carries a
// timestamp that does not parse.
const MsgUnknownTime = "Delivery time unknown"

// ConsumerCard shows an order read-only, with delivery code controls.
type ConsumerCard struct {
	order  orders.Order
	deps   Deps
	logger *zap.Logger
}

func NewConsumerCard(order orders.Order, deps Deps) *ConsumerCard {
	return &ConsumerCard{
		order:  order,
		deps:   deps,
		logger: deps.logger().With(zap.String("card", "consumer"), zap.Int64("order_id", order.ID)),
	}
}

func (c *ConsumerCard) Order() orders.Order { return c.order }

// ETALine is the estimated delivery text at now. Orders that are not READY
// never have their timestamp parsed.
func (c *ConsumerCard) ETALine(now time.Time) string {
	if c.order.Status != orders.StatusReady {
		return countdown.NotReady
	}
	target, err := orders.ParseTimestamp(c.order.EstimatedDeliveryTime)
	if err != nil {
		return MsgUnknownTime
	}
	return countdown.At(target, now).String()
}

// Countdown starts a countdown towards the estimated delivery time.
func (c *ConsumerCard) Countdown() (*countdown.Countdown, error) {
	if c.order.Status != orders.StatusReady {
		return nil, ErrNotReady
	}
	target, err := orders.ParseTimestamp(c.order.EstimatedDeliveryTime)
	if err != nil {
		return nil, err
	}
	return countdown.New(target), nil
}

// CanRate reports whether the order accepts feedback.
func (c *ConsumerCard) CanRate() bool {
	return c.order.Status == orders.StatusDelivered
}

func (c *ConsumerCard) RegenerateCode(ctx context.Context) error {
	if err := c.deps.API.RegenerateDeliveryCode(ctx, c.order.ID); err != nil {
		c.logger.Warn("Code regeneration failed", zap.Error(err))
		c.deps.Notifier.Error(titleCodeFailed, api.Message(err, msgCodeFallback))
		return err
	}
	c.deps.Notifier.Success(titleCodeRegenerate, "Ask for the new code when your order arrives")
	return nil
}

// ShowCode fetches the current code for display in plain text.
func (c *ConsumerCard) ShowCode(ctx context.Context) (string, error) {
	code, err := c.deps.API.DeliveryCode(ctx, c.order.ID)
	if err != nil {
		c.logger.Warn("Fetching delivery code failed", zap.Error(err))
		c.deps.Notifier.Error(titleCodeFailed, api.Message(err, msgCodeFallback))
		return "", err
	}
	return code.Code, nil
}
