// Package testdb opens migrated in-memory SQLite databases for tests.
package testdb

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/database/migrations"
	"github.com/shashiranjanraj/storerating/pkg/auth"
	"github.com/shashiranjanraj/storerating/pkg/database"
	"github.com/shashiranjanraj/storerating/pkg/migration"
)

// Password is the plain password of every user made by CreateUser.
const Password = "Passw0rd!"

var seq atomic.Int64

// New returns a private, fully migrated database closed at test end.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", "file::memory:?_foreign_keys=1")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	_, err = migration.New(db, migrations.All()...).Run(context.Background())
	require.NoError(t, err)
	return db
}

// CreateUser inserts a user whose name is padded to the 20 rune minimum.
func CreateUser(t testing.TB, db *gorm.DB, name string, role models.Role) models.User {
	t.Helper()

	hash, err := auth.HashPassword(Password)
	require.NoError(t, err)

	n := seq.Add(1)
	u := models.User{
		Name:     pad(name),
		Email:    fmt.Sprintf("%s.%d@example.com", strings.ToLower(strings.ReplaceAll(name, " ", ".")), n),
		Address:  fmt.Sprintf("%d Test Street", n),
		Password: hash,
		Role:     role,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// CreateStore inserts a store owned by owner, sharing its email.
func CreateStore(t testing.TB, db *gorm.DB, name string, owner models.User) models.Store {
	t.Helper()

	s := models.Store{Name: pad(name), Email: owner.Email, Address: "1 Market Road"}
	require.NoError(t, db.Create(&s).Error)
	return s
}

// Rate writes a rating directly.
func Rate(t testing.TB, db *gorm.DB, user models.User, store models.Store, value int) {
	t.Helper()
	require.NoError(t, db.Omit("User", "Store").Create(&models.Rating{UserID: user.ID, StoreID: store.ID, Value: value}).Error)
}

func pad(name string) string {
	for len([]rune(name)) < 20 {
		name += " Co"
	}
	return name
}
