//go:generate mockgen -source ./feedback.go -destination=./mocks/feedback.go -package=mock_feedback
package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/model"
	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

type API interface {
	SubmitFeedback(ctx context.Context, req model.FeedbackRequest) error
	FarmerFeedback(ctx context.Context) ([]model.Feedback, error)
}

type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

var (
	ErrNotDelivered   = errors.New("only delivered orders can be rated")
	ErrAlreadyRated   = errors.New("already rated")
	ErrRatingRequired = errors.New("rating must be between 1 and 5")
	ErrUnknownFarm    = errors.New("farm is not part of this order")
	ErrUnknownProduct = errors.New("product is not part of this farm order")
)

const (
	MinRating = 1
	MaxRating = 5
)

// Session collects the ratings a consumer gives for one delivered order.
// A farm or product can be rated once per session.
type Session struct {
	api      API
	notifier Notifier
	logger   *zap.Logger
	order    orders.Order

	mu            sync.Mutex
	ratedFarms    map[int64]bool
	ratedProducts map[string]bool
}

func NewSession(order orders.Order, api API, notifier Notifier, logger *zap.Logger) (*Session, error) {
	if order.Status != orders.StatusDelivered {
		return nil, ErrNotDelivered
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		api:           api,
		notifier:      notifier,
		logger:        logger.With(zap.String("component", "feedback"), zap.Int64("order_id", order.ID)),
		order:         order,
		ratedFarms:    make(map[int64]bool),
		ratedProducts: make(map[string]bool),
	}, nil
}

func productKey(farmID int64, productName string) string {
	return fmt.Sprintf("%d-%s", farmID, productName)
}

func validRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

func (s *Session) farmOrder(farmID int64) (orders.FarmOrder, bool) {
	for _, fo := range s.order.FarmOrders {
		if fo.FarmID == farmID {
			return fo, true
		}
	}
	return orders.FarmOrder{}, false
}

func (s *Session) FarmRated(farmID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratedFarms[farmID]
}

func (s *Session) ProductRated(farmID int64, productName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratedProducts[productKey(farmID, productName)]
}

func (s *Session) RateFarm(ctx context.Context, farmID int64, rating int, comment string) error {
	if s.FarmRated(farmID) {
		s.notifier.Error("Already Rated", "You have already rated this farm.")
		return ErrAlreadyRated
	}
	if !validRating(rating) {
		return ErrRatingRequired
	}
	fo, ok := s.farmOrder(farmID)
	if !ok {
		return fmt.Errorf("farm %d: %w", farmID, ErrUnknownFarm)
	}

	req := model.FeedbackRequest{
		OrderID:      s.order.ID,
		FeedbackType: model.FeedbackFarm,
		Rating:       rating,
		Comment:      strings.TrimSpace(comment),
		FarmID:       farmID,
		FarmName:     fo.FarmName,
	}
	if err := s.api.SubmitFeedback(ctx, req); err != nil {
		s.logger.Warn("Farm rating failed", zap.Int64("farm_id", farmID), zap.Error(err))
		s.notifier.Error("Error", "Failed to submit farm rating.")
		return err
	}

	s.mu.Lock()
	s.ratedFarms[farmID] = true
	s.mu.Unlock()
	s.notifier.Success("Success", "Farm rating submitted successfully.")
	return nil
}

func (s *Session) RateProduct(ctx context.Context, farmID int64, productName string, rating int, comment string) error {
	if s.ProductRated(farmID, productName) {
		s.notifier.Error("Already Rated", "You have already rated this product.")
		return ErrAlreadyRated
	}
	if !validRating(rating) {
		return ErrRatingRequired
	}
	fo, ok := s.farmOrder(farmID)
	if !ok {
		return fmt.Errorf("farm %d: %w", farmID, ErrUnknownFarm)
	}
	var item *orders.OrderItem
	for i := range fo.Items {
		if fo.Items[i].ProductName == productName {
			item = &fo.Items[i]
			break
		}
	}
	if item == nil {
		return fmt.Errorf("%s: %w", productName, ErrUnknownProduct)
	}

	req := model.FeedbackRequest{
		OrderID:      s.order.ID,
		FeedbackType: model.FeedbackProduct,
		Rating:       rating,
		Comment:      strings.TrimSpace(comment),
		FarmID:       farmID,
		ProductID:    item.ProductID,
		ProductName:  productName,
	}
	if err := s.api.SubmitFeedback(ctx, req); err != nil {
		s.logger.Warn("Product rating failed", zap.String("product", productName), zap.Error(err))
		s.notifier.Error("Error", "Failed to submit product rating.")
		return err
	}

	s.mu.Lock()
	s.ratedProducts[productKey(farmID, productName)] = true
	s.mu.Unlock()
	s.notifier.Success("Success", "Product rating submitted successfully.")
	return nil
}

// Received is the feedback one farm got, split like the farm rating view.
type Received struct {
	Farm     []model.Feedback
	Products []model.Feedback
}

func (r Received) Empty() bool {
	return len(r.Farm) == 0 && len(r.Products) == 0
}

// AverageFarmRating averages the farm ratings to one decimal place.
func (r Received) AverageFarmRating() decimal.Decimal {
	if len(r.Farm) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, f := range r.Farm {
		sum = sum.Add(decimal.NewFromInt(int64(f.Rating)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(r.Farm)))).Round(1)
}

// ForFarm fetches the session farmer's feedback and keeps farmID's entries.
func ForFarm(ctx context.Context, api API, farmID int64) (Received, error) {
	all, err := api.FarmerFeedback(ctx)
	if err != nil {
		return Received{}, err
	}
	var out Received
	for _, f := range all {
		if f.FarmID != farmID {
			continue
		}
		if f.IsProduct() {
			out.Products = append(out.Products, f)
		} else {
			out.Farm = append(out.Farm, f)
		}
	}
	return out, nil
}
