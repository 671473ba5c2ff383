package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/app/repositories"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
	"github.com/shashiranjanraj/storerating/pkg/auth"
	"github.com/shashiranjanraj/storerating/pkg/orm"
)

// SignupInput is a self-registration. The role is always normal_user.
type SignupInput struct {
	Name     string `json:"name"     validate:"required,between=20,60"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Address  string `json:"address"  validate:"nullable,max=400"`
	Password string `json:"password" validate:"required,between=8,16,password"`
}

type LoginInput struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,between=8,16,password"`
}

// LoginResult is what a client needs to call the API as the user.
type LoginResult struct {
	Token string      `json:"token"`
	Role  models.Role `json:"role"`
}

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Signup registers a normal user.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (models.User, error) {
	return register(ctx, s.users, CreateUserInput{
		Name:     in.Name,
		Email:    in.Email,
		Address:  in.Address,
		Password: in.Password,
		Role:     string(models.RoleNormalUser),
	})
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	if err := check(in); err != nil {
		return LoginResult{}, err
	}

	user, err := s.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if errors.Is(err, orm.ErrNotFound) {
		return LoginResult{}, apperr.Unauthenticated()
	}
	if err != nil {
		return LoginResult{}, apperr.Internal(err)
	}
	if !auth.CheckPassword(user.Password, in.Password) {
		return LoginResult{}, apperr.Unauthenticated()
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return LoginResult{}, apperr.Internal(err)
	}
	return LoginResult{Token: token, Role: user.Role}, nil
}

// ChangePassword replaces userID's password after checking the old one.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, in ChangePasswordInput) error {
	if err := check(in); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, orm.ErrNotFound) {
		return apperr.Unauthenticated()
	}
	if err != nil {
		return apperr.Internal(err)
	}
	if !auth.CheckPassword(user.Password, in.OldPassword) {
		return apperr.Field("old_password", "The current password is incorrect.")
	}

	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return apperr.Internal(err)
	}
	return storage(s.users.UpdatePassword(ctx, userID, hash), "User not found")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
