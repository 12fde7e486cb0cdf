package database

import (
	"github.com/arcbrain/arcbrain/pkg/arcbrain/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect initializes the database connection using the configured
// driver. SQLite is the default; Postgres is selected by setting
// ARCBRAIN_DB_DRIVER=postgres with ARCBRAIN_DB_DSN. All models are
// driver-agnostic (JSON columns are stored as text).
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}
	return nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}
