// Package repositories executes query plans and writes against gorm.
package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storerating/app/query"
	"github.com/shashiranjanraj/storerating/pkg/orm"
)

// run scans a composed plan into dest after checking it targets entity.
func run(ctx context.Context, db *gorm.DB, p query.Plan, entity query.Entity, dest any) error {
	if p.Entity != entity {
		return fmt.Errorf("repositories: %s plan executed as %s", p.Entity, entity)
	}
	return orm.On(db).WithContext(ctx).Raw(dest, p.SQL, p.Args...)
}

func count(ctx context.Context, db *gorm.DB, model any) (int64, error) {
	return orm.On(db).WithContext(ctx).Model(model).Count()
}
