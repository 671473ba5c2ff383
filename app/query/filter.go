package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
)

// MaxFilterLength bounds every free-text filter value, in runes.
const MaxFilterLength = 255

// Operator is a predicate comparison.
type Operator string

const (
	Contains Operator = "LIKE"
	Equals   Operator = "="
)

// Predicate is one bound condition. Column is always taken from a fixed
// table, never from input.
type Predicate struct {
	Column string
	Op     Operator
	Value  any
}

func (p Predicate) sql() string {
	if p.Op == Contains {
		return p.Column + " LIKE ? ESCAPE '!'"
	}
	return p.Column + " = ?"
}

// PredicateSet is the normalized conjunction of filters for one entity.
type PredicateSet struct {
	Entity     Entity
	predicates []Predicate
}

// Predicates returns the predicates in a deterministic order.
func (p PredicateSet) Predicates() []Predicate {
	return append([]Predicate(nil), p.predicates...)
}

// Args returns the bind values in predicate order.
func (p PredicateSet) Args() []any {
	args := make([]any, len(p.predicates))
	for i, pr := range p.predicates {
		args[i] = pr.Value
	}
	return args
}

// Len is the number of predicates.
func (p PredicateSet) Len() int { return len(p.predicates) }

// WhereID narrows the set to a single row by primary key.
func (p PredicateSet) WhereID(id uint) PredicateSet {
	out := PredicateSet{Entity: p.Entity, predicates: p.Predicates()}
	out.predicates = append(out.predicates, Predicate{Column: p.Entity.idColumn(), Op: Equals, Value: id})
	return out
}

type fieldKind int

const (
	textField fieldKind = iota
	roleField
	idField
)

type filterField struct {
	column string
	kind   fieldKind
}

var filterFields = map[Entity]map[string]filterField{
	Users: {
		"name":    {column: "u.name", kind: textField},
		"email":   {column: "u.email", kind: textField},
		"address": {column: "u.address", kind: textField},
		"role":    {column: "u.role", kind: roleField},
	},
	Stores: {
		"name":    {column: "s.name", kind: textField},
		"address": {column: "s.address", kind: textField},
	},
	Ratings: {
		"store_id": {column: "r.store_id", kind: idField},
	},
}

// BuildFilters normalizes raw request parameters into a PredicateSet.
// Keys outside the entity's filter set are ignored, as are blank values.
// Oversized text, an unknown role or a malformed id is a validation error.
func BuildFilters(entity Entity, raw map[string]string) (PredicateSet, error) {
	fields := filterFields[entity]
	set := PredicateSet{Entity: entity}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		if _, ok := fields[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	errs := map[string]string{}
	for _, key := range keys {
		field := fields[key]
		value := strings.TrimSpace(raw[key])
		if value == "" {
			continue
		}
		if utf8.RuneCountInString(value) > MaxFilterLength {
			errs[key] = fmt.Sprintf("The %s filter must not exceed %d characters.", key, MaxFilterLength)
			continue
		}

		switch field.kind {
		case textField:
			set.predicates = append(set.predicates, Predicate{
				Column: field.column, Op: Contains, Value: "%" + escapeLike(value) + "%",
			})
		case roleField:
			role, ok := models.ParseRole(value)
			if !ok {
				errs[key] = fmt.Sprintf("The selected %s is invalid.", key)
				continue
			}
			set.predicates = append(set.predicates, Predicate{Column: field.column, Op: Equals, Value: string(role)})
		case idField:
			id, err := strconv.ParseUint(value, 10, 64)
			if err != nil || id == 0 {
				errs[key] = fmt.Sprintf("The %s filter must be a positive integer.", key)
				continue
			}
			set.predicates = append(set.predicates, Predicate{Column: field.column, Op: Equals, Value: uint(id)})
		}
	}

	if len(errs) > 0 {
		return PredicateSet{}, apperr.Validation("Invalid filter", errs)
	}
	return set, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_", "[", "![")

// escapeLike makes every LIKE metacharacter literal under ESCAPE '!'.
func escapeLike(s string) string { return likeEscaper.Replace(s) }
