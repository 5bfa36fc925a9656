package shop

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/api"
	"github.com/FarmX-org/FarmX-mobile/internal/model"
)

// Cart mirrors the server cart and reloads it after every change.
type Cart struct {
	api      API
	notifier Notifier
	logger   *zap.Logger

	mu   sync.RWMutex
	cart model.Cart
}

func NewCart(a API, notifier Notifier, logger *zap.Logger) *Cart {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cart{api: a, notifier: notifier, logger: logger.With(zap.String("component", "cart"))}
}

func (c *Cart) fail(err error, fallback string) error {
	c.logger.Warn("Cart operation failed", zap.Error(err))
	c.notifier.Error("Error", api.Message(err, fallback))
	return err
}

func (c *Cart) Load(ctx context.Context) error {
	cart, err := c.api.Cart(ctx)
	if err != nil {
		return c.fail(err, "Failed to load cart")
	}
	c.mu.Lock()
	c.cart = cart
	c.mu.Unlock()
	return nil
}

func (c *Cart) Current() model.Cart {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cart
}

func (c *Cart) item(id int64) (model.CartItem, error) {
	it, ok := c.Current().Item(id)
	if !ok {
		return model.CartItem{}, fmt.Errorf("item %d: %w", id, ErrUnknownItem)
	}
	return it, nil
}

func (c *Cart) setQuantity(ctx context.Context, id int64, quantity int) error {
	if err := c.api.UpdateCartItem(ctx, id, quantity); err != nil {
		return c.fail(err, "Failed to update quantity")
	}
	return c.Load(ctx)
}

func (c *Cart) Increase(ctx context.Context, itemID int64) error {
	it, err := c.item(itemID)
	if err != nil {
		return err
	}
	return c.setQuantity(ctx, itemID, it.Quantity+1)
}

// Decrease does nothing once the quantity is down to one.
func (c *Cart) Decrease(ctx context.Context, itemID int64) error {
	it, err := c.item(itemID)
	if err != nil {
		return err
	}
	if it.Quantity <= 1 {
		return nil
	}
	return c.setQuantity(ctx, itemID, it.Quantity-1)
}

func (c *Cart) Clear(ctx context.Context) error {
	if err := c.api.ClearCart(ctx); err != nil {
		return c.fail(err, "Failed to clear cart")
	}
	return c.Load(ctx)
}

// Checkout places an order from the cart and then clears it.
func (c *Cart) Checkout(ctx context.Context) error {
	if err := c.api.Checkout(ctx); err != nil {
		return c.fail(err, "Checkout failed")
	}
	c.notifier.Success("Order placed", "Your order has been created.")
	return c.Clear(ctx)
}
