package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintRoutes(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printRoutes(&out))

	for _, want := range []string{
		"/api/auth/login", "/api/auth/change-password", "/api/stores/{id}",
		"/api/ratings/user", "/api/dashboard", "/metrics", "ratings.submit",
	} {
		assert.Contains(t, out.String(), want)
	}
}

func TestUserCreateRoleFlag(t *testing.T) {
	flag := userCreateCmd.Flags().Lookup("role")
	require.NotNil(t, flag)
	assert.Equal(t, "normal_user", flag.DefValue)
	assert.Equal(t, "admin | store_owner | normal_user", flag.Usage)
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "migrate", "migrate:rollback", "migrate:status", "seed", "route:list", "user:create"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
