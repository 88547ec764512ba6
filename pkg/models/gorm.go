package models

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/hashicorp-forge/objectid/pkg/entity"
)

func ModelsToAutoMigrate() []interface{} {
	return []interface{}{
		&Widget{},
		&ImportedRecord{},
	}
}

// Setup migrates all models and registers their keys with reg.
func Setup(db *gorm.DB, reg *entity.Registry) error {
	if err := db.AutoMigrate(ModelsToAutoMigrate()...); err != nil {
		return fmt.Errorf("error migrating models: %w", err)
	}
	if err := reg.RegisterAll(db, &Widget{}); err != nil {
		return fmt.Errorf("error registering models: %w", err)
	}
	if _, err := RegisterImportedRecord(db, reg); err != nil {
		return fmt.Errorf("error registering models: %w", err)
	}
	return nil
}
