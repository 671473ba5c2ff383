// Package query turns untrusted list parameters into bounded, parameterized
// SQL plans for users, stores and ratings.
//
// Nothing a caller sends is ever copied into SQL text. Sort keys and filter
// fields are looked up in fixed tables; values travel as bind arguments.
// Every plan is composed under a Scope, so role visibility is applied before
// a query exists rather than after rows come back.
package query

// Entity names a listable resource.
type Entity int

const (
	Users Entity = iota + 1
	Stores
	Ratings
)

func (e Entity) String() string {
	switch e {
	case Users:
		return "users"
	case Stores:
		return "stores"
	case Ratings:
		return "ratings"
	default:
		return "unknown"
	}
}

// idColumn is the primary key expression inside the entity's base query.
func (e Entity) idColumn() string {
	switch e {
	case Users:
		return "u.id"
	case Stores:
		return "s.id"
	case Ratings:
		return "r.id"
	default:
		return ""
	}
}
