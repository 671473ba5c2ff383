package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/app/query"
	"github.com/shashiranjanraj/storerating/pkg/orm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert stores rating as the single row for its (user, store) pair in one
// statement. An existing row keeps its created_at; value and updated_at are
// replaced. The stored row is read back into rating.
func (r *RatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	q := orm.On(r.db).WithContext(ctx)
	err := q.Upsert(rating, []string{"user_id", "store_id"}, []string{"rating", "updated_at"})
	if err != nil {
		return err
	}
	var stored models.Rating
	if err := q.Where("user_id = ? AND store_id = ?", rating.UserID, rating.StoreID).First(&stored); err != nil {
		return err
	}
	*rating = stored
	return nil
}

// List executes a Ratings plan.
func (r *RatingRepository) List(ctx context.Context, p query.Plan) ([]query.RatingRow, error) {
	var rows []query.RatingRow
	if err := run(ctx, r.db, p, query.Ratings, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []query.RatingRow{}
	}
	return rows, nil
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, &models.Rating{})
}
