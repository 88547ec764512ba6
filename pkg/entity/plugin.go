package entity

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-hclog"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const callbackName = "objectid:assign_key"

// Plugin is a gorm plugin that runs a Hook over the key field of registered
// entity types before every create statement. Update statements are not
// touched.
type Plugin struct {
	registry *Registry
	hook     Hook
	logger   hclog.Logger
}

var _ gorm.Plugin = (*Plugin)(nil)

// NewPlugin returns a plugin serving the types in registry with ObjectIDHook.
func NewPlugin(registry *Registry, logger hclog.Logger) *Plugin {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Plugin{
		registry: registry,
		hook:     ObjectIDHook{},
		logger:   logger,
	}
}

// Name implements gorm.Plugin.
func (p *Plugin) Name() string {
	return "objectid"
}

// Initialize implements gorm.Plugin.
func (p *Plugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").Register(callbackName, p.assignKeys); err != nil {
		return fmt.Errorf("error registering %s callback: %w", callbackName, err)
	}
	return nil
}

func (p *Plugin) assignKeys(db *gorm.DB) {
	if db.Error != nil || db.Statement.Schema == nil {
		return
	}
	s := db.Statement.Schema

	decl, ok := p.registry.lookupType(s.ModelType)
	if !ok {
		return
	}
	field := s.LookUpField(decl.Field)
	if field == nil {
		_ = db.AddError(fmt.Errorf("%w: %q on %s", ErrKeyFieldNotFound, decl.Field, s.Name))
		return
	}

	rv := db.Statement.ReflectValue
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			elem := reflect.Indirect(rv.Index(i))
			if !elem.IsValid() {
				_ = db.AddError(fmt.Errorf("slice data #%d is invalid: %w", i, gorm.ErrInvalidData))
				return
			}
			if err := p.assign(db, field, elem); err != nil {
				_ = db.AddError(err)
				return
			}
		}
	case reflect.Struct:
		if err := p.assign(db, field, rv); err != nil {
			_ = db.AddError(err)
		}
	}
}

func (p *Plugin) assign(db *gorm.DB, field *schema.Field, rv reflect.Value) error {
	ctx := db.Statement.Context
	current := field.ReflectValueOf(ctx, rv).String()

	next, assigned := p.hook.AssignKey(current)
	if !assigned {
		return nil
	}
	if err := field.Set(ctx, rv, next); err != nil {
		return fmt.Errorf("error assigning key %s.%s: %w", field.Schema.Name, field.Name, err)
	}

	p.logger.Trace("assigned key",
		"table", field.Schema.Table,
		"column", field.DBName,
		"id", next,
	)
	return nil
}
