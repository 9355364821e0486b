package service_test

import (
	"context"
	"errors"
	"testing"

	"renthive-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestRatingService_RecomputeItemRating(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		// Ratings 5, 4 and 3 over three completed rentals.
		requestRepo.On("RatingSummary", ctx, int32(10)).Return(4.0, int32(3), nil)
		itemRepo.On("UpdateRating", ctx, int32(10), 4.0, int32(3)).Return(nil)

		svc := service.NewRatingService(requestRepo, itemRepo)
		err := svc.RecomputeItemRating(ctx, 10)
		assert.NoError(t, err)
		itemRepo.AssertExpectations(t)
	})

	t.Run("SummaryError", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		requestRepo.On("RatingSummary", ctx, int32(10)).Return(0.0, int32(0), errors.New("db down"))

		svc := service.NewRatingService(requestRepo, itemRepo)
		err := svc.RecomputeItemRating(ctx, 10)
		assert.Error(t, err)
		itemRepo.AssertNotCalled(t, "UpdateRating", ctx, int32(10), 0.0, int32(0))
	})
}
