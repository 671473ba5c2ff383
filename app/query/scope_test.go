package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
)

func mustScope(t *testing.T, id uint, role models.Role) Scope {
	t.Helper()
	s, err := NewScope(Identity{UserID: id, Role: role})
	require.NoError(t, err)
	return s
}

func TestNewScopeRejectsBadIdentity(t *testing.T) {
	_, err := NewScope(Identity{UserID: 0, Role: models.RoleAdmin})
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	_, err = NewScope(Identity{UserID: 1, Role: "root"})
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestCapabilities(t *testing.T) {
	admin := mustScope(t, 1, models.RoleAdmin)
	owner := mustScope(t, 2, models.RoleStoreOwner)
	user := mustScope(t, 3, models.RoleNormalUser)

	assert.True(t, admin.Can(ListUsers))
	assert.True(t, admin.Can(CreateStore))
	assert.True(t, admin.Can(ViewDashboard))
	assert.False(t, admin.Can(SubmitRating))

	assert.True(t, owner.Can(ViewOwnStore))
	assert.False(t, owner.Can(ListUsers))
	assert.False(t, owner.Can(SubmitRating))

	assert.True(t, user.Can(SubmitRating))
	assert.False(t, user.Can(ViewStoreDetails))
	assert.False(t, user.Can(ViewDashboard))

	err := user.Require(ListUsers)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.Equal(t, "forbidden: Forbidden", err.Error())
}

func TestRestrictions(t *testing.T) {
	owner := mustScope(t, 2, models.RoleStoreOwner)
	r, err := owner.restriction(Stores)
	require.NoError(t, err)
	assert.Equal(t, ownedStoreSQL, r.SQL)
	assert.Equal(t, []any{uint(2), "store_owner"}, r.Args)

	_, err = owner.restriction(Users)
	assert.True(t, apperr.IsAuth(err))

	user := mustScope(t, 3, models.RoleNormalUser)
	r, err = user.restriction(Ratings)
	require.NoError(t, err)
	assert.Equal(t, "r.user_id = ?", r.SQL)

	r, err = user.restriction(Stores)
	require.NoError(t, err)
	assert.Empty(t, r.SQL)
}
