// Package seeders populates a fresh database.
package seeders

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storerating/pkg/logger"
)

// Seeder inserts rows. Seeders must be safe to run twice.
type Seeder struct {
	Name string
	Run  func(ctx context.Context, db *gorm.DB) error
}

// All returns the seeders in run order.
func All() []Seeder {
	return []Seeder{
		{Name: "admin", Run: SeedAdmin},
	}
}

// RunAll executes seeders in order and stops on the first error.
func RunAll(ctx context.Context, db *gorm.DB, seeders ...Seeder) error {
	for _, s := range seeders {
		logger.Info("seeder: running", "name", s.Name)
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeder %q: %w", s.Name, err)
		}
	}
	return nil
}
