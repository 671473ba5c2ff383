package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/app/query"
	"github.com/shashiranjanraj/storerating/pkg/orm"
)

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(ctx context.Context, store *models.Store) error {
	return orm.On(r.db).WithContext(ctx).Create(store)
}

// Exists reports whether a store with id exists, regardless of scope.
func (r *StoreRepository) Exists(ctx context.Context, id uint) (bool, error) {
	n, err := orm.On(r.db).WithContext(ctx).Model(&models.Store{}).Where("id = ?", id).Count()
	return n > 0, err
}

// List executes a Stores plan.
func (r *StoreRepository) List(ctx context.Context, p query.Plan) ([]query.StoreRow, error) {
	var recs []query.StoreRecord
	if err := run(ctx, r.db, p, query.Stores, &recs); err != nil {
		return nil, err
	}
	rows := make([]query.StoreRow, len(recs))
	for i, rec := range recs {
		rows[i] = rec.Row(p)
	}
	return rows, nil
}

func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, &models.Store{})
}
