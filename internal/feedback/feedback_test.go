package feedback_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/FarmX-org/FarmX-mobile/internal/feedback"
	mock_feedback "github.com/FarmX-org/FarmX-mobile/internal/feedback/mocks"
	"github.com/FarmX-org/FarmX-mobile/internal/model"
	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

func deliveredOrder() orders.Order {
	return orders.Order{
		ID:     5,
		Status: orders.StatusDelivered,
		FarmOrders: []orders.FarmOrder{{
			ID: 51, FarmID: 3, FarmName: "Green Acres", Status: orders.StatusDelivered,
			Items: []orders.OrderItem{{ProductID: 8, ProductName: "Tomato", Quantity: 2, Price: decimal.NewFromInt(3)}},
		}},
	}
}

func TestNewSession_RequiresDelivered(t *testing.T) {
	o := deliveredOrder()
	o.Status = orders.StatusReady

	_, err := feedback.NewSession(o, nil, nil, nil)
	assert.ErrorIs(t, err, feedback.ErrNotDelivered)
}

func TestSession_RateFarm(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_feedback.NewMockAPI(ctrl)
	notifier := mock_feedback.NewMockNotifier(ctrl)
	s, err := feedback.NewSession(deliveredOrder(), api, notifier, nil)
	require.NoError(t, err)
	ctx := context.Background()

	assert.ErrorIs(t, s.RateFarm(ctx, 3, 0, ""), feedback.ErrRatingRequired)
	assert.ErrorIs(t, s.RateFarm(ctx, 3, 6, ""), feedback.ErrRatingRequired)
	assert.ErrorIs(t, s.RateFarm(ctx, 99, 4, ""), feedback.ErrUnknownFarm)

	api.EXPECT().SubmitFeedback(gomock.Any(), model.FeedbackRequest{
		OrderID: 5, FeedbackType: model.FeedbackFarm, Rating: 4, Comment: "fresh", FarmID: 3, FarmName: "Green Acres",
	}).Return(nil)
	notifier.EXPECT().Success("Success", "Farm rating submitted successfully.")
	require.NoError(t, s.RateFarm(ctx, 3, 4, " fresh "))
	assert.True(t, s.FarmRated(3))

	notifier.EXPECT().Error("Already Rated", "You have already rated this farm.")
	assert.ErrorIs(t, s.RateFarm(ctx, 3, 5, ""), feedback.ErrAlreadyRated)
}

func TestSession_RateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("submits product id from the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_feedback.NewMockAPI(ctrl)
		notifier := mock_feedback.NewMockNotifier(ctrl)
		s, err := feedback.NewSession(deliveredOrder(), api, notifier, nil)
		require.NoError(t, err)

		api.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req model.FeedbackRequest) error {
				assert.Equal(t, model.FeedbackProduct, req.FeedbackType)
				assert.Equal(t, int64(8), req.ProductID)
				assert.Equal(t, "Tomato", req.ProductName)
				assert.Empty(t, req.FarmName)
				return nil
			})
		notifier.EXPECT().Success("Success", "Product rating submitted successfully.")

		require.NoError(t, s.RateProduct(ctx, 3, "Tomato", 5, ""))
		assert.True(t, s.ProductRated(3, "Tomato"))
		assert.False(t, s.FarmRated(3))

		notifier.EXPECT().Error("Already Rated", "You have already rated this product.")
		assert.ErrorIs(t, s.RateProduct(ctx, 3, "Tomato", 5, ""), feedback.ErrAlreadyRated)
	})

	t.Run("failure allows retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_feedback.NewMockAPI(ctrl)
		notifier := mock_feedback.NewMockNotifier(ctrl)
		s, err := feedback.NewSession(deliveredOrder(), api, notifier, nil)
		require.NoError(t, err)

		api.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
		notifier.EXPECT().Error("Error", "Failed to submit product rating.")
		assert.Error(t, s.RateProduct(ctx, 3, "Tomato", 2, ""))
		assert.False(t, s.ProductRated(3, "Tomato"))

		assert.ErrorIs(t, s.RateProduct(ctx, 3, "Potato", 2, ""), feedback.ErrUnknownProduct)
	})
}

func TestForFarm(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_feedback.NewMockAPI(ctrl)

	api.EXPECT().FarmerFeedback(gomock.Any()).Return([]model.Feedback{
		{ID: 1, FarmID: 3, Rating: 5},
		{ID: 2, FarmID: 3, Rating: 4},
		{ID: 3, FarmID: 3, Rating: 2, ProductName: "Tomato"},
		{ID: 4, FarmID: 9, Rating: 1},
	}, nil)

	got, err := feedback.ForFarm(context.Background(), api, 3)
	require.NoError(t, err)
	assert.Len(t, got.Farm, 2)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "Tomato", got.Products[0].ProductName)
	assert.Equal(t, "4.5", got.AverageFarmRating().String())
	assert.False(t, got.Empty())

	api.EXPECT().FarmerFeedback(gomock.Any()).Return(nil, errors.New("boom"))
	_, err = feedback.ForFarm(context.Background(), api, 3)
	assert.Error(t, err)
}
