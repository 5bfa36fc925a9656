package card

import (
	"context"

	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

// FarmerCard edits the status and delivery time of one farm order.
type FarmerCard struct {
	editable
	order  orders.FarmOrder
	deps   Deps
	logger *zap.Logger
}

func NewFarmerCard(order orders.FarmOrder, deps Deps) *FarmerCard {
	return &FarmerCard{
		editable: newEditable(order.Status, order.DeliveryTime),
		order:    order,
		deps:     deps,
		logger:   deps.logger().With(zap.String("card", "farmer"), zap.Int64("farm_order_id", order.ID)),
	}
}

func (c *FarmerCard) Order() orders.FarmOrder { return c.order }

// DeliveryTime is the editable value, at minute precision.
func (c *FarmerCard) DeliveryTime() string { return c.time() }

func (c *FarmerCard) SetDeliveryTime(t string) { c.setTime(t) }

// Save sends the draft status and the delivery time, omitting the time when
// it is empty. On failure the draft is dropped.
func (c *FarmerCard) Save(ctx context.Context) error {
	return c.save(ctx, c.deps, c.logger, "farmer", c.order.ID, c.deps.API.UpdateFarmOrderStatus)
}
