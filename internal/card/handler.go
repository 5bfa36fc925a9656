package card

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/api"
	"github.com/FarmX-org/FarmX-mobile/internal/metrics"
	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

// HandlerCard edits an order from the delivery side and confirms the
// delivery with the consumer's code.
type HandlerCard struct {
	editable
	order  orders.HandlerOrder
	deps   Deps
	logger *zap.Logger

	codeMu sync.Mutex
	code   string
}

func NewHandlerCard(order orders.HandlerOrder, deps Deps) *HandlerCard {
	return &HandlerCard{
		editable: newEditable(order.Status, order.EstimatedDeliveryTime),
		order:    order,
		deps:     deps,
		logger:   deps.logger().With(zap.String("card", "handler"), zap.Int64("order_id", order.ID)),
	}
}

func (c *HandlerCard) Order() orders.HandlerOrder { return c.order }

func (c *HandlerCard) ETA() string { return c.time() }

func (c *HandlerCard) SetETA(t string) { c.setTime(t) }

func (c *HandlerCard) Save(ctx context.Context) error {
	return c.save(ctx, c.deps, c.logger, "handler", c.order.ID, c.deps.API.UpdateHandlerOrderStatus)
}

// EnterCode replaces the entered code, keeping at most CodeLength characters.
func (c *HandlerCard) EnterCode(code string) {
	code = strings.TrimSpace(code)
	if len(code) > orders.CodeLength {
		code = code[:orders.CodeLength]
	}
	c.codeMu.Lock()
	defer c.codeMu.Unlock()
	c.code = code
}

func (c *HandlerCard) Code() string {
	c.codeMu.Lock()
	defer c.codeMu.Unlock()
	return c.code
}

// CanConfirm reports whether the confirm action is enabled.
func (c *HandlerCard) CanConfirm() bool {
	return c.Status() != orders.StatusDelivered && orders.ValidCode(c.Code())
}

// ConfirmDelivery submits the entered code. Success marks the order
// DELIVERED and refreshes the listing once; failure leaves the status as is
// and shows the server message.
func (c *HandlerCard) ConfirmDelivery(ctx context.Context) error {
	code := c.Code()
	if !orders.ValidCode(code) {
		metrics.DeliveryConfirmationsTotal.WithLabelValues("incomplete").Inc()
		return ErrCodeIncomplete
	}

	if err := c.deps.API.ConfirmDelivery(ctx, c.order.ID, code); err != nil {
		metrics.DeliveryConfirmationsTotal.WithLabelValues("failure").Inc()
		c.logger.Warn("Delivery confirmation failed", zap.Error(err))
		c.deps.Notifier.Error(titleDeliverFailed, api.Message(err, msgDeliverFallback))
		return err
	}

	c.mu.Lock()
	c.committed = orders.StatusDelivered
	c.draft = orders.StatusDelivered
	c.mu.Unlock()
	c.EnterCode("")

	metrics.DeliveryConfirmationsTotal.WithLabelValues("success").Inc()
	c.logger.Info("Delivery confirmed")
	c.deps.Notifier.Success(titleDelivered, fmt.Sprintf("Order #%d delivered", c.order.ID))
	c.deps.refresh(ctx, c.logger)
	return nil
}
