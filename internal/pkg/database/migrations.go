package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
)

// Migrations lists the up migrations in apply order
var Migrations = []string{
	"000001_create_sellers_table.up.sql",
	"000002_create_products_table.up.sql",
	"000003_add_catalog_indexes.up.sql",
}

// RunMigrations applies every migration found under dir, each in its own transaction.
// The scripts are idempotent (IF NOT EXISTS), so re-running is safe.
func RunMigrations(db *sqlx.DB, dir string) error {
	for _, name := range Migrations {
		path := filepath.Join(dir, name)

		sql, err := os.ReadFile(path)
		if err != nil {
			absPath, _ := filepath.Abs(path)
			return fmt.Errorf("failed to read migration %s (absolute: %s): %w", path, absPath, err)
		}

		if err := executeMigration(db, string(sql)); err != nil {
			return fmt.Errorf("migration %s failed: %w", name, err)
		}
	}

	return nil
}

func executeMigration(db *sqlx.DB, sql string) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(sql); err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
