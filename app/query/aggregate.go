package query

import (
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/storerating/app/models"
)

// Expr is a SQL fragment with its bind arguments in order of appearance.
type Expr struct {
	SQL  string
	Args []any
}

// Aggregate sub-expressions. The multiplication forces a non-integer AVG on
// engines that would otherwise truncate.
const (
	storeAverageSQL = "(SELECT AVG(ra.rating * 1.0) FROM ratings ra WHERE ra.store_id = s.id)"
	userRatingSQL   = "(SELECT ru.rating FROM ratings ru WHERE ru.store_id = s.id AND ru.user_id = ?)"
	ownerAverageSQL = "CASE WHEN u.role = ? THEN " +
		"(SELECT AVG(ro.rating * 1.0) FROM ratings ro JOIN stores so ON so.id = ro.store_id WHERE so.email = u.email) " +
		"ELSE NULL END"
)

// StoreAverage is the mean rating of the store row aliased s; NULL when the
// store has no ratings.
func StoreAverage() Expr { return Expr{SQL: storeAverageSQL} }

// UserRating is userID's own rating of the store row aliased s, or NULL.
func UserRating(userID uint) Expr {
	return Expr{SQL: userRatingSQL, Args: []any{userID}}
}

// OwnerAggregate is, for a store_owner row aliased u, the StoreAverage of the
// store sharing that user's email. For every other role it is NULL and the
// row carries no rating at all.
func OwnerAggregate() Expr {
	return Expr{SQL: ownerAverageSQL, Args: []any{string(models.RoleStoreOwner)}}
}

// Score is an average rating. An invalid Score means "no ratings yet" and is
// never reported as zero.
type Score struct {
	decimal.NullDecimal
}

// NewScore returns a present Score.
func NewScore(v float64) Score {
	return Score{decimal.NewNullDecimal(decimal.NewFromFloat(v))}
}

// Float64 returns the average rounded to two places and whether it exists.
func (s Score) Float64() (float64, bool) {
	if !s.Valid {
		return 0, false
	}
	f, _ := s.Decimal.Round(2).Float64()
	return f, true
}

// MarshalJSON renders null when absent and a bare number otherwise.
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return []byte(s.Decimal.Round(2).String()), nil
}
