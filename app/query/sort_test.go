package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSortWhitelist(t *testing.T) {
	tests := []struct {
		name      string
		entity    Entity
		key, dir  string
		wantKey   SortKey
		wantDir   Direction
	}{
		{"stores default", Stores, "", "", "name", Asc},
		{"stores rating desc", Stores, "overall_rating", "DESC", "overall_rating", Desc},
		{"stores long form", Stores, "email", "Descending", "email", Desc},
		{"users default", Users, "", "", "name", Asc},
		{"users rating", Users, "rating", "asc", "rating", Asc},
		{"ratings default", Ratings, "", "", "created_at", Desc},
		{"ratings store name", Ratings, "store_name", "ascending", "store_name", Asc},
		{"injection key", Stores, "; DROP TABLE stores", "asc", "name", Asc},
		{"injection direction", Users, "email", "asc; DELETE FROM users", "email", Asc},
		{"cross entity key", Stores, "role", "", "name", Asc},
		{"unknown direction keeps ratings default", Ratings, "rating", "sideways", "rating", Desc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSort(tt.entity, tt.key, tt.dir)
			assert.Equal(t, tt.entity, got.Entity)
			assert.Equal(t, tt.wantKey, got.Key)
			assert.Equal(t, tt.wantDir, got.Direction)
		})
	}
}

func TestOrderByNullsLastAndTiebreak(t *testing.T) {
	got := ResolveSort(Stores, "overall_rating", "desc").orderBy()
	assert.Equal(t, "CASE WHEN q.overall_rating IS NULL THEN 1 ELSE 0 END, q.overall_rating DESC, q.id ASC", got)

	got = ResolveSort(Ratings, "", "").orderBy()
	assert.Equal(t, "q.created_at DESC, q.id ASC", got)
}

func TestOrderByNeverEchoesInput(t *testing.T) {
	s := Sort{Entity: Users, Key: "name; --", Direction: "ASC; DROP"}
	assert.Equal(t, "q.name ASC, q.id ASC", s.orderBy())
}
