package services

import (
	"context"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/app/query"
	"github.com/shashiranjanraj/storerating/app/repositories"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
	"github.com/shashiranjanraj/storerating/pkg/auth"
)

// CreateUserInput is an account created by an administrator or the CLI.
type CreateUserInput struct {
	Name     string `json:"name"     validate:"required,between=20,60"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Address  string `json:"address"  validate:"nullable,max=400"`
	Password string `json:"password" validate:"required,between=8,16,password"`
	Role     string `json:"role"     validate:"required"`
}

type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns users matching raw filters, sorted by sortBy/sortOrder.
func (s *UserService) List(ctx context.Context, scope query.Scope, raw map[string]string) ([]query.UserRow, error) {
	p, err := plan(query.Users, raw, scope)
	if err != nil {
		return nil, err
	}
	rows, err := s.users.List(ctx, p)
	return rows, storage(err, "")
}

// Get returns one user, with the store rating when the user is an owner.
func (s *UserService) Get(ctx context.Context, scope query.Scope, id uint) (query.UserRow, error) {
	if err := scope.Require(query.ViewUser); err != nil {
		return query.UserRow{}, err
	}
	p, err := query.Compose(query.Users, query.PredicateSet{Entity: query.Users}.WhereID(id),
		query.ResolveSort(query.Users, "", ""), scope)
	if err != nil {
		return query.UserRow{}, err
	}
	rows, err := s.users.List(ctx, p)
	if err != nil {
		return query.UserRow{}, apperr.Internal(err)
	}
	if len(rows) == 0 {
		return query.UserRow{}, apperr.NotFound("User not found")
	}
	return rows[0], nil
}

// Create adds an account of any role.
func (s *UserService) Create(ctx context.Context, scope query.Scope, in CreateUserInput) (models.User, error) {
	if err := scope.Require(query.CreateUser); err != nil {
		return models.User{}, err
	}
	return register(ctx, s.users, in)
}

// Register adds an account without a caller scope. Used by the CLI.
func (s *UserService) Register(ctx context.Context, in CreateUserInput) (models.User, error) {
	return register(ctx, s.users, in)
}

func register(ctx context.Context, users *repositories.UserRepository, in CreateUserInput) (models.User, error) {
	errs := map[string]string{}
	if err := check(in); err != nil {
		errs = apperr.FieldsOf(err)
	}
	role, ok := models.ParseRole(in.Role)
	if !ok && errs["role"] == "" {
		errs["role"] = "The selected role is invalid."
	}
	if len(errs) > 0 {
		return models.User{}, apperr.Validation("Validation failed", errs)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, apperr.Internal(err)
	}
	user := models.User{
		Name:     in.Name,
		Email:    normalizeEmail(in.Email),
		Address:  in.Address,
		Password: hash,
		Role:     role,
	}
	if err := users.Create(ctx, &user); err != nil {
		return models.User{}, storage(err, "")
	}
	return user, nil
}
