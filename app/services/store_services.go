package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/app/query"
	"github.com/shashiranjanraj/storerating/app/repositories"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
	"github.com/shashiranjanraj/storerating/pkg/orm"
)

// CreateStoreInput binds a new store to an existing store owner. The store
// takes the owner's email, which is how ownership is resolved.
type CreateStoreInput struct {
	Name    string `json:"name"     validate:"required,between=20,60"`
	Address string `json:"address"  validate:"nullable,max=400"`
	OwnerID uint   `json:"owner_id" validate:"required"`
}

// StoreDetails is a store with its ratings, newest first.
type StoreDetails struct {
	query.StoreRow
	Ratings []query.RatingRow `json:"ratings"`
}

type StoreService struct {
	stores  *repositories.StoreRepository
	users   *repositories.UserRepository
	ratings *repositories.RatingRepository
}

func NewStoreService(stores *repositories.StoreRepository, users *repositories.UserRepository, ratings *repositories.RatingRepository) *StoreService {
	return &StoreService{stores: stores, users: users, ratings: ratings}
}

// List returns the stores visible to scope with their average rating and,
// for normal users, the caller's own rating.
func (s *StoreService) List(ctx context.Context, scope query.Scope, raw map[string]string) ([]query.StoreRow, error) {
	p, err := plan(query.Stores, raw, scope)
	if err != nil {
		return nil, err
	}
	rows, err := s.stores.List(ctx, p)
	return rows, storage(err, "")
}

// Create adds a store for the store_owner ownerID.
func (s *StoreService) Create(ctx context.Context, scope query.Scope, in CreateStoreInput) (models.Store, error) {
	if err := scope.Require(query.CreateStore); err != nil {
		return models.Store{}, err
	}
	if err := check(in); err != nil {
		return models.Store{}, err
	}

	owner, err := s.users.FindByID(ctx, in.OwnerID)
	if errors.Is(err, orm.ErrNotFound) {
		return models.Store{}, apperr.NotFound("Owner not found")
	}
	if err != nil {
		return models.Store{}, apperr.Internal(err)
	}
	if owner.Role != models.RoleStoreOwner {
		return models.Store{}, apperr.Field("owner_id", "The owner must have the store_owner role.")
	}

	store := models.Store{Name: in.Name, Email: owner.Email, Address: in.Address}
	if err := s.stores.Create(ctx, &store); err != nil {
		if errors.Is(err, orm.ErrDuplicate) {
			return models.Store{}, apperr.Conflict("Owner already has a store", err)
		}
		return models.Store{}, apperr.Internal(err)
	}
	return store, nil
}

// Details returns store id with its ratings. A store outside the caller's
// scope is forbidden; a missing one is not found.
func (s *StoreService) Details(ctx context.Context, scope query.Scope, id uint) (StoreDetails, error) {
	if err := scope.Require(query.ViewStoreDetails); err != nil {
		return StoreDetails{}, err
	}

	p, err := query.Compose(query.Stores, query.PredicateSet{Entity: query.Stores}.WhereID(id),
		query.ResolveSort(query.Stores, "", ""), scope)
	if err != nil {
		return StoreDetails{}, err
	}
	rows, err := s.stores.List(ctx, p)
	if err != nil {
		return StoreDetails{}, apperr.Internal(err)
	}
	if len(rows) == 0 {
		exists, err := s.stores.Exists(ctx, id)
		switch {
		case err != nil:
			return StoreDetails{}, apperr.Internal(err)
		case exists:
			return StoreDetails{}, apperr.Forbidden()
		default:
			return StoreDetails{}, apperr.NotFound("Store not found")
		}
	}
	return s.withRatings(ctx, scope, rows[0])
}

// Mine returns the store owned by the calling store owner.
func (s *StoreService) Mine(ctx context.Context, scope query.Scope) (StoreDetails, error) {
	if err := scope.Require(query.ViewOwnStore); err != nil {
		return StoreDetails{}, err
	}
	p, err := query.Compose(query.Stores, query.PredicateSet{Entity: query.Stores},
		query.ResolveSort(query.Stores, "", ""), scope)
	if err != nil {
		return StoreDetails{}, err
	}
	rows, err := s.stores.List(ctx, p)
	if err != nil {
		return StoreDetails{}, apperr.Internal(err)
	}
	if len(rows) == 0 {
		return StoreDetails{}, apperr.NotFound("No store is linked to this account")
	}
	return s.withRatings(ctx, scope, rows[0])
}

func (s *StoreService) withRatings(ctx context.Context, scope query.Scope, row query.StoreRow) (StoreDetails, error) {
	p, err := plan(query.Ratings, map[string]string{"store_id": strconv.FormatUint(uint64(row.ID), 10)}, scope)
	if err != nil {
		return StoreDetails{}, err
	}
	ratings, err := s.ratings.List(ctx, p)
	if err != nil {
		return StoreDetails{}, apperr.Internal(err)
	}
	return StoreDetails{StoreRow: row, Ratings: ratings}, nil
}
