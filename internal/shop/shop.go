//go:generate mockgen -source ./shop.go -destination=./mocks/shop.go -package=mock_shop
package shop

import (
	"context"
	"errors"

	"github.com/FarmX-org/FarmX-mobile/internal/model"
)

type API interface {
	StoreProducts(ctx context.Context) ([]model.Product, error)
	AddToCart(ctx context.Context, productID int64, quantity int) error
	Cart(ctx context.Context) (model.Cart, error)
	UpdateCartItem(ctx context.Context, itemID int64, quantity int) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
}

type Notifier interface {
	Success(title, message string)
	Info(title, message string)
	Error(title, message string)
}

var (
	ErrUnknownProduct   = errors.New("unknown product")
	ErrUnknownItem      = errors.New("unknown cart item")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrExceedsAvailable = errors.New("quantity exceeds availability")
)
