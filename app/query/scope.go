package query

import (
	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
)

// Identity is the verified (user, role) pair supplied by the auth layer.
type Identity struct {
	UserID uint
	Role   models.Role
}

// Capability is an action a role may or may not perform.
type Capability int

const (
	ListUsers Capability = iota + 1
	ViewUser
	CreateUser
	ListStores
	CreateStore
	ViewStoreDetails
	ViewOwnStore
	ListRatings
	SubmitRating
	ViewDashboard
)

// Scope is the per-request visibility of one identity. It carries no state
// beyond the identity and is rebuilt for every request.
type Scope struct {
	id Identity
}

// NewScope validates the identity and returns its scope.
func NewScope(id Identity) (Scope, error) {
	if id.UserID == 0 || !id.Role.Valid() {
		return Scope{}, apperr.Unauthenticated()
	}
	return Scope{id: id}, nil
}

func (s Scope) UserID() uint      { return s.id.UserID }
func (s Scope) Role() models.Role { return s.id.Role }

// Can reports whether the scope's role grants c.
func (s Scope) Can(c Capability) bool {
	switch s.id.Role {
	case models.RoleAdmin:
		switch c {
		case ListUsers, ViewUser, CreateUser, ListStores, CreateStore, ViewStoreDetails, ListRatings, ViewDashboard:
			return true
		}
	case models.RoleStoreOwner:
		switch c {
		case ListStores, ViewStoreDetails, ViewOwnStore, ListRatings:
			return true
		}
	case models.RoleNormalUser:
		switch c {
		case ListStores, ListRatings, SubmitRating:
			return true
		}
	}
	return false
}

// Require returns a forbidden error unless the scope grants c.
func (s Scope) Require(c Capability) error {
	if !s.Can(c) {
		return apperr.Forbidden()
	}
	return nil
}

// ownsRatingColumn reports whether store rows carry the caller's own rating.
func (s Scope) ownsRatingColumn() bool {
	return s.id.Role == models.RoleNormalUser
}

// ownedStore matches the store whose email equals the caller's email. The
// role check keeps a demoted account from inheriting a store.
const ownedStoreSQL = "s.email = (SELECT o.email FROM users o WHERE o.id = ? AND o.role = ?)"

// restriction is the row predicate the scope imposes on entity, or an empty
// Expr when the scope sees every row.
func (s Scope) restriction(entity Entity) (Expr, error) {
	switch s.id.Role {
	case models.RoleAdmin:
		return Expr{}, nil
	case models.RoleStoreOwner:
		switch entity {
		case Stores, Ratings:
			return Expr{SQL: ownedStoreSQL, Args: []any{s.id.UserID, string(models.RoleStoreOwner)}}, nil
		}
	case models.RoleNormalUser:
		switch entity {
		case Stores:
			return Expr{}, nil
		case Ratings:
			return Expr{SQL: "r.user_id = ?", Args: []any{s.id.UserID}}, nil
		}
	}
	return Expr{}, apperr.Forbidden()
}
