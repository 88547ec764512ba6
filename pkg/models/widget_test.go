package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hashicorp-forge/objectid/pkg/entity"
	"github.com/hashicorp-forge/objectid/pkg/objectid"
)

// setupTest creates an in-memory SQLite database with all models migrated
// and registered.
func setupTest(t *testing.T) (*gorm.DB, *entity.Registry) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	reg := entity.NewRegistry()
	require.NoError(t, db.Use(entity.NewPlugin(reg, nil)))
	require.NoError(t, Setup(db, reg))
	return db, reg
}

func TestSetup_Declarations(t *testing.T) {
	_, reg := setupTest(t)

	t.Run("widget", func(t *testing.T) {
		decl, ok := reg.Lookup(&Widget{})
		require.True(t, ok)
		assert.Equal(t, "id", decl.Field)
		assert.True(t, decl.Primary)
		assert.False(t, decl.AutoIncrement)
		assert.Equal(t, entity.KeyTypeString, decl.KeyType)
	})

	t.Run("imported record", func(t *testing.T) {
		decl, ok := reg.Lookup(&ImportedRecord{})
		require.True(t, ok)
		assert.Equal(t, ImportedRecordKeyField, decl.Field)
		assert.False(t, decl.Primary)
		assert.False(t, decl.AutoIncrement)
		assert.Equal(t, entity.KeyTypeString, decl.KeyType)
	})
}

func TestWidget_Create(t *testing.T) {
	db, _ := setupTest(t)

	t.Run("three widgets get distinct valid IDs", func(t *testing.T) {
		widgets := []*Widget{{Name: "alpha"}, {Name: "beta"}, {Name: "gamma"}}
		seen := map[string]bool{}
		for _, w := range widgets {
			require.NoError(t, w.Create(db))
			assert.Len(t, w.ID, 24)
			assert.True(t, objectid.IsValid(w.ID))
			assert.False(t, seen[w.ID], "duplicate ID %s", w.ID)
			seen[w.ID] = true
		}
		assert.Len(t, seen, 3)
	})

	t.Run("preset ID is kept", func(t *testing.T) {
		w := &Widget{Model: entity.Model{ID: "abcdef0123456789abcdef01"}, Name: "imported"}
		require.NoError(t, w.Create(db))
		assert.Equal(t, "abcdef0123456789abcdef01", w.ID)

		got := &Widget{Model: entity.Model{ID: "abcdef0123456789abcdef01"}}
		require.NoError(t, got.Get(db))
		assert.Equal(t, "imported", got.Name)
	})

	t.Run("malformed preset ID is rejected", func(t *testing.T) {
		w := &Widget{Model: entity.Model{ID: "not-an-objectid"}, Name: "bad"}
		err := w.Create(db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation error")
	})

	t.Run("name is required", func(t *testing.T) {
		assert.Error(t, (&Widget{}).Create(db))
	})

	t.Run("duplicate preset ID fails in storage", func(t *testing.T) {
		first := &Widget{Model: entity.Model{ID: "0000000000000000000000aa"}, Name: "one"}
		require.NoError(t, first.Create(db))

		second := &Widget{Model: entity.Model{ID: "0000000000000000000000aa"}, Name: "two"}
		err := second.Create(db)
		require.Error(t, err)
		assert.True(t, entity.IsDuplicateKey(err))
	})
}

func TestWidget_Update(t *testing.T) {
	db, _ := setupTest(t)

	w := &Widget{Name: "before"}
	require.NoError(t, w.Create(db))
	id := w.ID

	w.Name = "after"
	require.NoError(t, w.Update(db))
	assert.Equal(t, id, w.ID)

	got := &Widget{Model: entity.Model{ID: id}}
	require.NoError(t, got.Get(db))
	assert.Equal(t, "after", got.Name)

	var count int64
	require.NoError(t, db.Model(&Widget{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestWidget_Get(t *testing.T) {
	db, _ := setupTest(t)

	t.Run("requires an ID", func(t *testing.T) {
		assert.Error(t, (&Widget{}).Get(db))
	})

	t.Run("rejects malformed ID", func(t *testing.T) {
		assert.Error(t, (&Widget{Model: entity.Model{ID: "xyz"}}).Get(db))
	})

	t.Run("not found", func(t *testing.T) {
		err := (&Widget{Model: entity.Model{ID: objectid.NewString()}}).Get(db)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestWidget_OwnerID(t *testing.T) {
	db, _ := setupTest(t)

	owner := objectid.New()
	w := &Widget{Name: "owned", OwnerID: owner}
	require.NoError(t, w.Create(db))

	got := &Widget{Model: entity.Model{ID: w.ID}}
	require.NoError(t, got.Get(db))
	assert.Equal(t, owner, got.OwnerID)

	unowned := &Widget{Name: "unowned"}
	require.NoError(t, unowned.Create(db))

	got = &Widget{Model: entity.Model{ID: unowned.ID}}
	require.NoError(t, got.Get(db))
	assert.True(t, got.OwnerID.IsZero())
}

func TestWidgets_FindCreatedSince(t *testing.T) {
	db, _ := setupTest(t)

	old := &Widget{Model: entity.Model{ID: objectid.FromTime(time.Unix(1000, 0)).Hex()}, Name: "old"}
	require.NoError(t, old.Create(db))

	fresh := []*Widget{{Name: "one"}, {Name: "two"}}
	for _, w := range fresh {
		require.NoError(t, w.Create(db))
	}

	var found Widgets
	require.NoError(t, found.FindCreatedSince(db, objectid.FromTime(time.Now().Add(-time.Hour))))
	require.Len(t, found, 2)
	assert.Equal(t, fresh[0].ID, found[0].ID)
	assert.Equal(t, fresh[1].ID, found[1].ID)
}

func TestImportedRecord(t *testing.T) {
	db, _ := setupTest(t)

	t.Run("uuid is assigned by the plugin", func(t *testing.T) {
		r := &ImportedRecord{Title: "first"}
		require.NoError(t, db.Create(r).Error)
		assert.True(t, objectid.IsValid(r.UUID))

		got := &ImportedRecord{}
		require.NoError(t, got.GetByUUID(db, r.UUID))
		assert.Equal(t, "first", got.Title)
	})

	t.Run("caller-supplied uuid is kept", func(t *testing.T) {
		r := &ImportedRecord{UUID: "1234567890abcdef12345678", Title: "legacy", Source: "csv"}
		require.NoError(t, db.Create(r).Error)
		assert.Equal(t, "1234567890abcdef12345678", r.UUID)
	})
}
