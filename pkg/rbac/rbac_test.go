package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/pkg/middleware"
)

func TestHasRole(t *testing.T) {
	h := HasRole(models.RoleAdmin, models.RoleStoreOwner)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(id *middleware.Identity) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if id != nil {
			req = req.WithContext(middleware.WithIdentity(req.Context(), *id))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, serve(nil))
	assert.Equal(t, http.StatusOK, serve(&middleware.Identity{UserID: 1, Role: "admin"}))
	assert.Equal(t, http.StatusOK, serve(&middleware.Identity{UserID: 2, Role: "store_owner"}))
	assert.Equal(t, http.StatusForbidden, serve(&middleware.Identity{UserID: 3, Role: "normal_user"}))
}
