package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/app/query"
	"github.com/shashiranjanraj/storerating/pkg/orm"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := orm.On(r.db).WithContext(ctx).Where("email = ?", email).First(&user)
	return user, err
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := orm.On(r.db).WithContext(ctx).Where("id = ?", id).First(&user)
	return user, err
}

// Create persists a new user record.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return orm.On(r.db).WithContext(ctx).Create(user)
}

// UpdatePassword replaces the stored hash of user id.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	n, err := orm.On(r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", id).UpdateColumn("password", hash)
	if err != nil {
		return err
	}
	if n == 0 {
		return orm.ErrNotFound
	}
	return nil
}

// List executes a Users plan.
func (r *UserRepository) List(ctx context.Context, p query.Plan) ([]query.UserRow, error) {
	var recs []query.UserRecord
	if err := run(ctx, r.db, p, query.Users, &recs); err != nil {
		return nil, err
	}
	rows := make([]query.UserRow, len(recs))
	for i, rec := range recs {
		rows[i] = rec.Row()
	}
	return rows, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, &models.User{})
}
