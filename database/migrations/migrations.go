// Package migrations holds the schema history of the service.
package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/pkg/migration"
)

// All returns every migration in the order it must run.
func All() []migration.Entry {
	return []migration.Entry{
		{Name: "20260101000000_create_users_table", Migration: table{model: &models.User{}, name: "users"}},
		{Name: "20260101000001_create_stores_table", Migration: table{model: &models.Store{}, name: "stores"}},
		{Name: "20260101000002_create_ratings_table", Migration: table{model: &models.Rating{}, name: "ratings"}},
	}
}

// table creates a model's table with its indexes and constraints.
type table struct {
	model any
	name  string
}

func (t table) Up(tx *gorm.DB) error {
	return tx.AutoMigrate(t.model)
}

func (t table) Down(tx *gorm.DB) error {
	return tx.Migrator().DropTable(t.name)
}
