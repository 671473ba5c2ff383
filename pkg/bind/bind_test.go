package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storerating/config"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
)

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestJSONValid(t *testing.T) {
	var in loginInput
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co","password":"x"}`))
	require.NoError(t, JSON(req, &in))
	assert.Equal(t, "a@b.co", in.Email)
}

func TestJSONDoesNotApplyFieldRules(t *testing.T) {
	var in loginInput
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"nope"}`))
	require.NoError(t, JSON(req, &in))
	assert.Equal(t, "nope", in.Email)
	assert.Empty(t, in.Password)
}

func TestJSONMalformedAndEmpty(t *testing.T) {
	for _, body := range []string{"{", ""} {
		var in loginInput
		err := JSON(httptest.NewRequest("POST", "/", strings.NewReader(body)), &in)
		assert.True(t, apperr.IsValidation(err), "body %q", body)
		assert.Nil(t, apperr.FieldsOf(err))
	}
}

func TestJSONTooLarge(t *testing.T) {
	config.Set("MAX_BODY_BYTES", "16")
	t.Cleanup(func() { config.Set("MAX_BODY_BYTES", "") })

	var in loginInput
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"`+strings.Repeat("a", 64)+`@b.co"}`))
	err := JSON(req, &in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
