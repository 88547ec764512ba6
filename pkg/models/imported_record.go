package models

import (
	"gorm.io/gorm"

	"github.com/hashicorp-forge/objectid/pkg/entity"
)

// ImportedRecordKeyField is the column carrying an ImportedRecord's ObjectID.
const ImportedRecordKeyField = "uuid"

// ImportedRecord is keyed by a non-primary "uuid" column. It does not embed
// entity.Model; its key is assigned by entity.Plugin once registered with
// RegisterImportedRecord.
type ImportedRecord struct {
	UUID   string `gorm:"column:uuid;type:char(24);size:24;not null;uniqueIndex" json:"uuid"`
	Title  string `gorm:"size:255" json:"title"`
	Source string `gorm:"size:255" json:"source,omitempty"`
}

// TableName returns the table name for GORM
func (ImportedRecord) TableName() string {
	return "imported_records"
}

// RegisterImportedRecord declares the "uuid" column as ImportedRecord's key.
func RegisterImportedRecord(db *gorm.DB, reg *entity.Registry) (entity.KeyDeclaration, error) {
	return reg.Register(db, &ImportedRecord{}, entity.WithKeyField(ImportedRecordKeyField))
}

// GetByUUID retrieves an imported record by its ObjectID.
func (r *ImportedRecord) GetByUUID(db *gorm.DB, uuid string) error {
	return db.Where("uuid = ?", uuid).First(r).Error
}
