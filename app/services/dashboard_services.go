package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/shashiranjanraj/storerating/app/query"
	"github.com/shashiranjanraj/storerating/app/repositories"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
)

// Stats are the administrator's global counters.
type Stats struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}

type DashboardService struct {
	users   *repositories.UserRepository
	stores  *repositories.StoreRepository
	ratings *repositories.RatingRepository
}

func NewDashboardService(users *repositories.UserRepository, stores *repositories.StoreRepository, ratings *repositories.RatingRepository) *DashboardService {
	return &DashboardService{users: users, stores: stores, ratings: ratings}
}

// Stats counts all users, stores and ratings concurrently.
func (s *DashboardService) Stats(ctx context.Context, scope query.Scope) (Stats, error) {
	if err := scope.Require(query.ViewDashboard); err != nil {
		return Stats{}, err
	}

	var out Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { out.TotalUsers, err = s.users.Count(gctx); return })
	g.Go(func() (err error) { out.TotalStores, err = s.stores.Count(gctx); return })
	g.Go(func() (err error) { out.TotalRatings, err = s.ratings.Count(gctx); return })
	if err := g.Wait(); err != nil {
		return Stats{}, apperr.Internal(err)
	}
	return out, nil
}
