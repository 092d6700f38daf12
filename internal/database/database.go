// Package database opens the gorm connection backing the entry store.
// SQLite is the default; a postgres DSN switches the driver without touching
// any other layer.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectSQLite opens (or creates) the SQLite database at the given path.
func ConnectSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path must not be empty")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return db, nil
}

// ConnectPostgres establishes a connection to the PostgreSQL database using the provided DSN.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn must not be empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return db, nil
}

// Connect picks postgres when a DSN is configured, otherwise sqlite.
func Connect(databaseURL, sqlitePath string) (*gorm.DB, error) {
	if databaseURL != "" {
		return ConnectPostgres(databaseURL)
	}
	return ConnectSQLite(sqlitePath)
}
