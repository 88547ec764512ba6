package entity

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
	"gorm.io/gorm"
)

var (
	// ErrKeyFieldNotFound is returned when a model has no field for the key.
	ErrKeyFieldNotFound = errors.New("key field not found")

	// ErrUnsupportedKeyType is returned when the key field is not a string.
	ErrUnsupportedKeyType = errors.New("key field must be a string")
)

// Option configures a registration.
type Option func(*KeyDeclaration)

// WithKeyField sets the key column (or struct field name) for a model.
func WithKeyField(name string) Option {
	return func(d *KeyDeclaration) {
		d.Field = name
	}
}

// Registry records the key declarations of entity types whose keys are
// assigned by the Plugin. It is safe for concurrent use. Lookups read an
// immutable snapshot and never lock; Register copies the map.
type Registry struct {
	mu    sync.Mutex
	types atomic.Pointer[map[reflect.Type]KeyDeclaration]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	types := make(map[reflect.Type]KeyDeclaration)
	r.types.Store(&types)
	return r
}

// Register declares model's key to be an ObjectID string column. It is
// meant to be called once per entity type, and must return before the type
// is first created: it adjusts the schema gorm caches and shares between
// statements.
// The key field defaults to the model's own Declarer answer, then
// DefaultKeyField; opts override both.
func (r *Registry) Register(db *gorm.DB, model interface{}, opts ...Option) (KeyDeclaration, error) {
	decl := KeyDeclaration{Field: DefaultKeyField}
	if d, ok := model.(Declarer); ok {
		decl = d.KeyDeclaration()
	}
	for _, opt := range opts {
		opt(&decl)
	}

	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return KeyDeclaration{}, fmt.Errorf("error parsing model %T: %w", model, err)
	}
	s := stmt.Schema

	field := s.LookUpField(decl.Field)
	if field == nil {
		return KeyDeclaration{}, fmt.Errorf("%w: %q on %s", ErrKeyFieldNotFound, decl.Field, s.Name)
	}
	if field.FieldType.Kind() != reflect.String {
		return KeyDeclaration{}, fmt.Errorf("%w: %s.%s is %s", ErrUnsupportedKeyType, s.Name, field.Name, field.FieldType)
	}

	// The schema is cached on db, so this carries over to insert statements.
	if field.AutoIncrement {
		field.AutoIncrement = false
	}

	decl = KeyDeclaration{
		Field:         field.DBName,
		GoField:       field.Name,
		Primary:       field.PrimaryKey,
		AutoIncrement: false,
		KeyType:       KeyTypeString,
	}

	r.mu.Lock()
	current := *r.types.Load()
	next := make(map[reflect.Type]KeyDeclaration, len(current)+1)
	for t, d := range current {
		next[t] = d
	}
	next[s.ModelType] = decl
	r.types.Store(&next)
	r.mu.Unlock()

	return decl, nil
}

// RegisterAll registers each model with its default key field.
func (r *Registry) RegisterAll(db *gorm.DB, models ...interface{}) error {
	var result *multierror.Error
	for _, m := range models {
		if _, err := r.Register(db, m); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Lookup returns the declaration registered for model's type. model may be a
// struct, a pointer to one, or a slice of either.
func (r *Registry) Lookup(model interface{}) (KeyDeclaration, bool) {
	return r.lookupType(modelType(reflect.TypeOf(model)))
}

func (r *Registry) lookupType(t reflect.Type) (KeyDeclaration, bool) {
	decl, ok := (*r.types.Load())[t]
	return decl, ok
}

func modelType(t reflect.Type) reflect.Type {
	for t != nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			return t
		}
	}
	return t
}
