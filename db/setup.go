package db

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const sqlitePrefix = "sqlite:"

// ConnectDatabase opens a PostgreSQL connection, or an embedded SQLite
// database when the DSN starts with "sqlite:" (e.g. "sqlite::memory:").
func ConnectDatabase(dsn string, log zerolog.Logger) (*gorm.DB, error) {
	config := &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(log),
	}

	if strings.HasPrefix(dsn, sqlitePrefix) {
		conn, err := gorm.Open(sqlite.Open(strings.TrimPrefix(dsn, sqlitePrefix)), config)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return nil, err
		}
		// A single connection keeps ":memory:" databases alive and serializes writers.
		sqlDB.SetMaxOpenConns(1)

		return conn, nil
	}

	conn, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return conn, nil
}

func MigrateDatabase(conn *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Project{},
		&models.Task{},
	}

	for _, model := range tables {
		if err := conn.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	return nil
}
