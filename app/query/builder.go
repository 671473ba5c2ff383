package query

import (
	"fmt"
	"strings"
)

// Plan is an executable, parameterized query. SQL uses ? placeholders; the
// database layer rebinds them for the active dialect.
type Plan struct {
	Entity Entity
	SQL    string
	Args   []any
	// OwnRating is set when store rows carry the caller's user_rating.
	OwnRating bool
}

var listCapability = map[Entity]Capability{
	Users:   ListUsers,
	Stores:  ListStores,
	Ratings: ListRatings,
}

// Compose builds the plan for entity from validated filters, a resolved sort
// and the caller's scope. Equal inputs always produce an identical plan.
func Compose(entity Entity, preds PredicateSet, sort Sort, scope Scope) (Plan, error) {
	capability, ok := listCapability[entity]
	if !ok {
		return Plan{}, fmt.Errorf("query: unknown entity %d", entity)
	}
	if preds.Entity != entity || sort.Entity != entity {
		return Plan{}, fmt.Errorf("query: %s plan given filters for %s and sort for %s", entity, preds.Entity, sort.Entity)
	}
	if err := scope.Require(capability); err != nil {
		return Plan{}, err
	}

	restrict, err := scope.restriction(entity)
	if err != nil {
		return Plan{}, err
	}

	var (
		b    strings.Builder
		args []any
		plan = Plan{Entity: entity}
	)

	b.WriteString("SELECT * FROM (SELECT ")
	switch entity {
	case Stores:
		b.WriteString("s.id AS id, s.name AS name, s.email AS email, s.address AS address, ")
		avg := StoreAverage()
		b.WriteString(avg.SQL + " AS overall_rating")
		args = append(args, avg.Args...)
		if scope.ownsRatingColumn() {
			own := UserRating(scope.UserID())
			b.WriteString(", " + own.SQL + " AS user_rating")
			args = append(args, own.Args...)
			plan.OwnRating = true
		}
		b.WriteString(" FROM stores s")
	case Users:
		b.WriteString("u.id AS id, u.name AS name, u.email AS email, u.address AS address, u.role AS role, ")
		owner := OwnerAggregate()
		b.WriteString(owner.SQL + " AS rating")
		args = append(args, owner.Args...)
		b.WriteString(" FROM users u")
	case Ratings:
		b.WriteString("r.id AS id, r.user_id AS user_id, u.name AS user_name, r.store_id AS store_id, ")
		b.WriteString("s.name AS store_name, r.rating AS rating, r.created_at AS created_at, r.updated_at AS updated_at")
		b.WriteString(" FROM ratings r JOIN users u ON u.id = r.user_id JOIN stores s ON s.id = r.store_id")
	}

	conds := make([]string, 0, preds.Len()+1)
	for _, p := range preds.predicates {
		conds = append(conds, p.sql())
		args = append(args, p.Value)
	}
	if restrict.SQL != "" {
		conds = append(conds, restrict.SQL)
		args = append(args, restrict.Args...)
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}

	b.WriteString(") q ORDER BY ")
	b.WriteString(sort.orderBy())

	plan.SQL = b.String()
	plan.Args = args
	return plan, nil
}
