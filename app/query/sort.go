package query

import "strings"

// Direction is a resolved sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// SortKey is a whitelisted sort key.
type SortKey string

// Sort is a resolved, safe ordering.
type Sort struct {
	Entity    Entity
	Key       SortKey
	Direction Direction
}

type sortColumn struct {
	expr     string
	nullable bool
}

type sortPolicy struct {
	columns    map[SortKey]sortColumn
	defaultKey SortKey
	defaultDir Direction
}

// Column expressions reference the projection of the wrapped base query (q).
var sortPolicies = map[Entity]sortPolicy{
	Stores: {
		columns: map[SortKey]sortColumn{
			"name":           {expr: "q.name"},
			"email":          {expr: "q.email"},
			"overall_rating": {expr: "q.overall_rating", nullable: true},
		},
		defaultKey: "name",
		defaultDir: Asc,
	},
	Users: {
		columns: map[SortKey]sortColumn{
			"name":   {expr: "q.name"},
			"email":  {expr: "q.email"},
			"role":   {expr: "q.role"},
			"rating": {expr: "q.rating", nullable: true},
		},
		defaultKey: "name",
		defaultDir: Asc,
	},
	Ratings: {
		columns: map[SortKey]sortColumn{
			"user_name":  {expr: "q.user_name"},
			"store_name": {expr: "q.store_name"},
			"rating":     {expr: "q.rating"},
			"created_at": {expr: "q.created_at"},
		},
		defaultKey: "created_at",
		defaultDir: Desc,
	},
}

// ResolveSort maps a requested key and direction onto the entity's whitelist.
// Unknown keys fall back to the entity's default key; unknown directions fall
// back to the entity's default direction. It never fails.
func ResolveSort(entity Entity, key, direction string) Sort {
	policy, ok := sortPolicies[entity]
	if !ok {
		return Sort{Entity: entity}
	}

	out := Sort{Entity: entity, Key: policy.defaultKey, Direction: policy.defaultDir}
	if _, ok := policy.columns[SortKey(strings.TrimSpace(key))]; ok {
		out.Key = SortKey(strings.TrimSpace(key))
	}

	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "asc", "ascending":
		out.Direction = Asc
	case "desc", "descending":
		out.Direction = Desc
	}

	return out
}

// orderBy renders the ORDER BY list. Absent aggregates sort last in both
// directions and the row id breaks ties, so equal inputs give equal output.
func (s Sort) orderBy() string {
	policy := sortPolicies[s.Entity]
	col, ok := policy.columns[s.Key]
	if !ok {
		col = policy.columns[policy.defaultKey]
	}
	dir := s.Direction
	if dir != Asc && dir != Desc {
		dir = policy.defaultDir
	}

	parts := make([]string, 0, 3)
	if col.nullable {
		parts = append(parts, "CASE WHEN "+col.expr+" IS NULL THEN 1 ELSE 0 END")
	}
	parts = append(parts, col.expr+" "+string(dir), "q.id ASC")
	return strings.Join(parts, ", ")
}
