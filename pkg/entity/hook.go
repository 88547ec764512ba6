// Package entity binds ObjectID key assignment to the gorm entity lifecycle.
//
// A model type takes part either by embedding Model, whose BeforeCreate hook
// fills the "id" column, or by being registered with a Registry and served by
// the Plugin, which fills any string key column before the first insert:
//
//	reg := entity.NewRegistry()
//	if _, err := reg.Register(db, &ImportedRecord{}, entity.WithKeyField("uuid")); err != nil {
//	    return err
//	}
//	if err := db.Use(entity.NewPlugin(reg, logger)); err != nil {
//	    return err
//	}
//
// Keys are assigned only when empty and only on create. Nothing here checks
// storage for duplicates or retries on collision.
package entity

import (
	"github.com/hashicorp-forge/objectid/pkg/objectid"
)

// Hook is invoked by the persistence layer immediately before an entity is
// first inserted. It returns the key value to store and whether it differs
// from current.
type Hook interface {
	AssignKey(current string) (next string, assigned bool)
}

// ObjectIDHook assigns a new ObjectID to empty keys and leaves set keys alone.
type ObjectIDHook struct{}

// AssignKey implements Hook.
func (ObjectIDHook) AssignKey(current string) (string, bool) {
	if current != "" {
		return current, false
	}
	return objectid.NewString(), true
}
