package shop

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/api"
	"github.com/FarmX-org/FarmX-mobile/internal/model"
)

type Store struct {
	api      API
	notifier Notifier
	logger   *zap.Logger

	mu       sync.RWMutex
	products []model.Product
}

func NewStore(a API, notifier Notifier, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{api: a, notifier: notifier, logger: logger.With(zap.String("component", "store"))}
}

func (s *Store) Load(ctx context.Context) error {
	products, err := s.api.StoreProducts(ctx)
	if err != nil {
		s.logger.Warn("Failed to fetch products", zap.Error(err))
		s.notifier.Error("Error", api.Message(err, "Failed to fetch products"))
		return err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return nil
}

func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Product(nil), s.products...)
}

// Filter matches the title by substring and the category exactly, both
// ignoring case. Empty arguments match everything.
func (s *Store) Filter(search, category string) []model.Product {
	search = strings.ToLower(strings.TrimSpace(search))
	var out []model.Product
	for _, p := range s.Products() {
		if search != "" && !strings.Contains(strings.ToLower(p.Title()), search) {
			continue
		}
		if category != "" && !strings.EqualFold(p.CategoryOrDefault(), category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *Store) product(id int64) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// AddToCart refuses quantities above what the product has available
// before any request is made.
func (s *Store) AddToCart(ctx context.Context, productID int64, quantity int) error {
	p, ok := s.product(productID)
	if !ok {
		return fmt.Errorf("product %d: %w", productID, ErrUnknownProduct)
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > p.Quantity {
		s.notifier.Info("Quantity is greater than available", fmt.Sprintf("Only %d units available.", p.Quantity))
		return ErrExceedsAvailable
	}

	if err := s.api.AddToCart(ctx, productID, quantity); err != nil {
		s.logger.Warn("Add to cart failed", zap.Int64("product_id", productID), zap.Error(err))
		s.notifier.Error("Error", api.Message(err, "Failed to add to cart"))
		return err
	}
	s.notifier.Success("Added to Cart", fmt.Sprintf("Product #%d with quantity %d added.", productID, quantity))
	return nil
}
