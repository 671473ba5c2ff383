package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storerating/pkg/apperr"
)

func TestBuildFiltersUsers(t *testing.T) {
	set, err := BuildFilters(Users, map[string]string{
		"name":    "  alice ",
		"role":    "Store_Owner",
		"address": "",
		"sortBy":  "name",
		"bogus":   "x",
	})
	require.NoError(t, err)

	assert.Equal(t, []Predicate{
		{Column: "u.name", Op: Contains, Value: "%alice%"},
		{Column: "u.role", Op: Equals, Value: "store_owner"},
	}, set.Predicates())
	assert.Equal(t, []any{"%alice%", "store_owner"}, set.Args())
}

func TestBuildFiltersIgnoresFieldsOfOtherEntities(t *testing.T) {
	set, err := BuildFilters(Stores, map[string]string{"email": "a@b.c", "role": "admin"})
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestBuildFiltersRejectsUnknownRole(t *testing.T) {
	_, err := BuildFilters(Users, map[string]string{"role": "superuser"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, apperr.FieldsOf(err), "role")
}

func TestBuildFiltersRejectsOversizedText(t *testing.T) {
	_, err := BuildFilters(Stores, map[string]string{"name": strings.Repeat("x", MaxFilterLength+1)})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestBuildFiltersStoreID(t *testing.T) {
	set, err := BuildFilters(Ratings, map[string]string{"store_id": "7"})
	require.NoError(t, err)
	assert.Equal(t, []any{uint(7)}, set.Args())

	_, err = BuildFilters(Ratings, map[string]string{"store_id": "7 OR 1=1"})
	assert.True(t, apperr.IsValidation(err))
}

func TestEscapeLike(t *testing.T) {
	set, err := BuildFilters(Stores, map[string]string{"name": "100%_off!["})
	require.NoError(t, err)
	assert.Equal(t, []any{"%100!%!_off!!![%"}, set.Args())
}

func TestWhereID(t *testing.T) {
	base, err := BuildFilters(Stores, map[string]string{"name": "mart"})
	require.NoError(t, err)

	byID := base.WhereID(3)
	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, byID.Len())
	assert.Equal(t, Predicate{Column: "s.id", Op: Equals, Value: uint(3)}, byID.Predicates()[1])
}
