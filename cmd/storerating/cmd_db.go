package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/app/repositories"
	"github.com/shashiranjanraj/storerating/app/services"
	"github.com/shashiranjanraj/storerating/config"
	"github.com/shashiranjanraj/storerating/database/migrations"
	"github.com/shashiranjanraj/storerating/database/seeders"
	"github.com/shashiranjanraj/storerating/pkg/apperr"
	"github.com/shashiranjanraj/storerating/pkg/database"
	"github.com/shashiranjanraj/storerating/pkg/migration"
)

// bootDB loads config and opens the database connection.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

func runner() *migration.Runner {
	return migration.New(database.DB, migrations.All()...)
}

// storerating migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close()

		applied, err := runner().Run(cmd.Context())
		for _, name := range applied {
			fmt.Fprintf(cmd.OutOrStdout(), "Migrated:  %s\n", name)
		}
		if err == nil && len(applied) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to migrate.")
		}
		return err
	},
}

// storerating migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close()

		reverted, err := runner().Rollback(cmd.Context())
		for _, name := range reverted {
			fmt.Fprintf(cmd.OutOrStdout(), "Rolled back:  %s\n", name)
		}
		if err == nil && len(reverted) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to roll back.")
		}
		return err
	},
}

// storerating migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close()

		status, err := runner().Status(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "MIGRATION\tSTATUS\tBATCH")
		for _, s := range status {
			if s.Ran {
				fmt.Fprintf(w, "%s\tRan\t%d\n", s.Name, s.Batch)
			} else {
				fmt.Fprintf(w, "%s\tPending\t-\n", s.Name)
			}
		}
		return w.Flush()
	},
}

// storerating seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close()
		return seeders.RunAll(cmd.Context(), database.DB, seeders.All()...)
	},
}

var newUser services.CreateUserInput

// storerating user:create
var userCreateCmd = &cobra.Command{
	Use:   "user:create",
	Short: "Create an account of any role",
	Example: `  storerating user:create --name "Administrator Of The Directory" \
    --email admin@example.com --password 'Secret#123' --role admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close()

		svc := services.NewUserService(repositories.NewUserRepository(database.DB))
		user, err := svc.Register(cmd.Context(), newUser)
		if fields := apperr.FieldsOf(err); len(fields) > 0 {
			for f, msg := range fields {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", f, msg)
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s #%d <%s>\n", user.Role, user.ID, user.Email)
		return nil
	},
}

// roleUsage lists the accepted --role values.
func roleUsage() string {
	names := make([]string, len(models.Roles))
	for i, r := range models.Roles {
		names[i] = r.String()
	}
	return strings.Join(names, " | ")
}

func init() {
	f := userCreateCmd.Flags()
	f.StringVar(&newUser.Name, "name", "", "full name (20-60 characters)")
	f.StringVar(&newUser.Email, "email", "", "login email")
	f.StringVar(&newUser.Address, "address", "", "postal address")
	f.StringVar(&newUser.Password, "password", "", "password (8-16, one uppercase, one of !@#$%^&*)")
	f.StringVar(&newUser.Role, "role", string(models.RoleNormalUser), roleUsage())
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")
}
