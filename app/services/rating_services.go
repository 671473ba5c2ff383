package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/app/query"
	"github.com/shashiranjanraj/storerating/app/repositories"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
	"github.com/shashiranjanraj/storerating/pkg/logger"
	"github.com/shashiranjanraj/storerating/pkg/metrics"
)

// SubmitRatingInput is one rating of one store by the caller.
type SubmitRatingInput struct {
	StoreID uint `json:"store_id"`
	Rating  int  `json:"rating"`
}

type RatingService struct {
	ratings *repositories.RatingRepository
	stores  *repositories.StoreRepository
}

func NewRatingService(ratings *repositories.RatingRepository, stores *repositories.StoreRepository) *RatingService {
	return &RatingService{ratings: ratings, stores: stores}
}

// Submit records the caller's rating of a store, replacing any earlier one.
// Concurrent submissions for the same pair leave exactly one row, holding
// one of the submitted values.
func (s *RatingService) Submit(ctx context.Context, scope query.Scope, in SubmitRatingInput) (models.Rating, error) {
	if err := scope.Require(query.SubmitRating); err != nil {
		return models.Rating{}, err
	}

	errs := map[string]string{}
	if in.StoreID == 0 {
		errs["store_id"] = "The store_id field is required."
	}
	if in.Rating < models.MinRating || in.Rating > models.MaxRating {
		errs["rating"] = fmt.Sprintf("The rating must be between %d and %d.", models.MinRating, models.MaxRating)
	}
	if len(errs) > 0 {
		metrics.RatingsSubmitted.WithLabelValues("invalid").Inc()
		return models.Rating{}, apperr.Validation("Validation failed", errs)
	}

	rating := models.Rating{UserID: scope.UserID(), StoreID: in.StoreID, Value: in.Rating}
	if err := s.ratings.Upsert(ctx, &rating); err != nil {
		metrics.RatingsSubmitted.WithLabelValues("failed").Inc()
		return models.Rating{}, storage(err, "Store not found")
	}

	metrics.RatingsSubmitted.WithLabelValues("stored").Inc()
	logger.WithCtx(ctx).Info("rating stored", "store_id", rating.StoreID, "rating", rating.Value)
	return rating, nil
}

// List returns the ratings visible to scope.
func (s *RatingService) List(ctx context.Context, scope query.Scope, raw map[string]string) ([]query.RatingRow, error) {
	p, err := plan(query.Ratings, raw, scope)
	if err != nil {
		return nil, err
	}
	rows, err := s.ratings.List(ctx, p)
	return rows, storage(err, "")
}

// UserStores lists every store with its average and the caller's own
// rating, for users who can rate.
func (s *RatingService) UserStores(ctx context.Context, scope query.Scope, raw map[string]string) ([]query.StoreRow, error) {
	if err := scope.Require(query.SubmitRating); err != nil {
		return nil, err
	}
	p, err := plan(query.Stores, raw, scope)
	if err != nil {
		return nil, err
	}
	rows, err := s.stores.List(ctx, p)
	return rows, storage(err, "")
}
