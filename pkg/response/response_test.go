package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storerating/pkg/apperr"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestFailMapsKinds(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperr.Field("rating", "must be between 1 and 5"), http.StatusUnprocessableEntity, "Validation failed"},
		{apperr.Conflict("Email already registered", nil), http.StatusConflict, "Email already registered"},
		{apperr.NotFound("Store not found"), http.StatusNotFound, "Store not found"},
		{apperr.Unauthenticated(), http.StatusUnauthorized, "Unauthorized"},
		{apperr.Forbidden(), http.StatusForbidden, "Forbidden"},
		{errors.New("dial tcp: refused"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		Fail(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)

		assert.Equal(t, tc.status, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, tc.message, body["message"])
	}
}

func TestValidationCarriesFields(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, httptest.NewRequest(http.MethodPost, "/", nil), apperr.Field("rating", "must be between 1 and 5"))

	body := decode(t, rec)
	assert.Equal(t, map[string]any{"rating": "must be between 1 and 5"}, body["errors"])
}

func TestInternalCauseNotLeaked(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, httptest.NewRequest(http.MethodGet, "/", nil), apperr.Internal(errors.New("password=hunter2")))

	assert.NotContains(t, rec.Body.String(), "hunter2")
}
