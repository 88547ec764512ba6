package entity

import (
	"time"

	"gorm.io/gorm"
)

// DefaultKeyField is the key column used when none is given.
const DefaultKeyField = "id"

// KeyType is the storage type of an entity key.
type KeyType string

// KeyTypeString is the only key type ObjectID keys are stored as.
const KeyTypeString KeyType = "string"

// KeyDeclaration describes how an entity type's key is generated and stored.
type KeyDeclaration struct {
	// Field is the key column name.
	Field string

	// GoField is the struct field backing the key column. Empty until the
	// declaration has been resolved against a gorm schema.
	GoField string

	// Primary is true when the key column is the table's primary key.
	Primary bool

	// AutoIncrement is always false for ObjectID keys.
	AutoIncrement bool

	// KeyType is always KeyTypeString for ObjectID keys.
	KeyType KeyType
}

// Declarer is implemented by models that state their own key declaration.
type Declarer interface {
	KeyDeclaration() KeyDeclaration
}

// Model is an embeddable base for entities keyed by ObjectID.
//
//	type Widget struct {
//	    entity.Model
//	    Name string
//	}
type Model struct {
	ID        string    `gorm:"primaryKey;type:char(24);size:24;autoIncrement:false" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate hook to generate the ObjectID if not set.
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	m.ID, _ = ObjectIDHook{}.AssignKey(m.ID)
	return nil
}

// KeyDeclaration implements Declarer.
func (Model) KeyDeclaration() KeyDeclaration {
	return KeyDeclaration{
		Field:         DefaultKeyField,
		Primary:       true,
		AutoIncrement: false,
		KeyType:       KeyTypeString,
	}
}
