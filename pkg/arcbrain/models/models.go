package models

import "gorm.io/gorm"

// AllModels returns all models for migration.
// The tables map 1:1 onto the three document collections plus the
// user/organization records; there are no cross-table constraints.
func AllModels() []interface{} {
	return []interface{}{
		&Organization{},
		&User{},
		&Decision{},
		&DecisionTemplate{},
		&Collaboration{},
	}
}

// AutoMigrate runs GORM auto-migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
