package models

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"

	"github.com/hashicorp-forge/objectid/pkg/entity"
	"github.com/hashicorp-forge/objectid/pkg/objectid"
)

// Widget is an entity keyed by an ObjectID assigned on first create.
type Widget struct {
	entity.Model

	Name string `gorm:"not null;size:255" json:"name"`

	// OwnerID optionally references another entity by ObjectID.
	OwnerID objectid.ID `gorm:"type:char(24)" json:"ownerId"`
}

// TableName returns the table name for GORM
func (Widget) TableName() string {
	return "widgets"
}

// Widgets is a slice of widgets.
type Widgets []Widget

// Create creates a new widget in the database. The key is assigned by the
// BeforeCreate hook unless already set.
func (w *Widget) Create(db *gorm.DB) error {
	if err := validation.ValidateStruct(w,
		validation.Field(&w.ID, objectid.Rule),
		validation.Field(&w.Name, validation.Required),
	); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return db.Create(w).Error
}

// Get retrieves a widget by ID.
func (w *Widget) Get(db *gorm.DB) error {
	if err := validation.Validate(w.ID, validation.Required, objectid.Rule); err != nil {
		return err
	}
	return db.First(w, "id = ?", w.ID).Error
}

// Update updates an existing widget.
func (w *Widget) Update(db *gorm.DB) error {
	return db.Save(w).Error
}

// FindCreatedSince retrieves widgets whose ObjectID timestamp is at or after
// the lower bound, oldest first.
func (ws *Widgets) FindCreatedSince(db *gorm.DB, since objectid.ID) error {
	return db.Where("id >= ?", since.Hex()).Order("id").Find(ws).Error
}
