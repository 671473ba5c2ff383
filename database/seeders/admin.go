package seeders

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/config"
	"github.com/shashiranjanraj/storerating/pkg/auth"
	"github.com/shashiranjanraj/storerating/pkg/logger"
	"github.com/shashiranjanraj/storerating/pkg/orm"
)

// SeedAdmin creates the bootstrap administrator from ADMIN_EMAIL and
// ADMIN_PASSWORD. It does nothing when either is unset or the email exists.
func SeedAdmin(ctx context.Context, db *gorm.DB) error {
	email, password := config.AdminEmail(), config.AdminPassword()
	if email == "" || password == "" {
		logger.Warn("seeder: ADMIN_EMAIL or ADMIN_PASSWORD unset, skipping admin")
		return nil
	}

	var existing models.User
	err := orm.On(db).WithContext(ctx).Where("email = ?", email).First(&existing)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, orm.ErrNotFound):
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.User{
		Name:     config.AdminName(),
		Email:    email,
		Address:  config.AdminAddress(),
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := orm.On(db).WithContext(ctx).Create(&admin); err != nil {
		return err
	}
	logger.Info("seeder: admin created", "email", email, "id", admin.ID)
	return nil
}
