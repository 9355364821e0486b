package service

import (
	"context"

	"renthive-backend/internal/logger"
	"renthive-backend/internal/repository"
)

type ratingService struct {
	requestRepo repository.RequestRepository
	itemRepo    repository.ItemRepository
}

func NewRatingService(requestRepo repository.RequestRepository, itemRepo repository.ItemRepository) RatingService {
	return &ratingService{requestRepo: requestRepo, itemRepo: itemRepo}
}

// RecomputeItemRating replaces the item's displayed rating with the mean of
// rating_given over all completed, rated requests for the item, and the
// review count with the size of that set. A full recompute every time keeps
// "displayed rating = mean of completed ratings" exactly true; an
// incremental running average drifts.
func (s *ratingService) RecomputeItemRating(ctx context.Context, itemID int32) error {
	avg, count, err := s.requestRepo.RatingSummary(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.itemRepo.UpdateRating(ctx, itemID, avg, count); err != nil {
		return err
	}
	logger.Debug("Recomputed item rating", "item_id", itemID, "rating", avg, "reviews", count)
	return nil
}
