// Package ddl declares fixed-width ObjectID columns for hand-written table
// definitions and gorm struct tags.
package ddl

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hashicorp-forge/objectid/pkg/objectid"
)

// Column is a CHAR(24) column holding an ObjectID.
type Column struct {
	Name    string
	Primary bool
}

// ObjectIDColumn returns an ObjectID column. An empty name means "id".
func ObjectIDColumn(name string, primary bool) Column {
	if name == "" {
		name = "id"
	}
	return Column{Name: name, Primary: primary}
}

// PrimaryKey is ObjectIDColumn("id", true).
func PrimaryKey() Column {
	return ObjectIDColumn("id", true)
}

// Definition returns the column definition for a CREATE TABLE statement,
// quoted for db's dialect.
func (c Column) Definition(db *gorm.DB) string {
	var b strings.Builder
	b.WriteString(db.Statement.Quote(c.Name))
	fmt.Fprintf(&b, " CHAR(%d) NOT NULL", objectid.HexLen)
	if c.Primary {
		b.WriteString(" PRIMARY KEY")
	}
	return b.String()
}

// Tag returns the equivalent gorm struct tag value.
func (c Column) Tag() string {
	tag := fmt.Sprintf("column:%s;type:char(%d);size:%d;not null", c.Name, objectid.HexLen, objectid.HexLen)
	if c.Primary {
		tag += ";primaryKey;autoIncrement:false"
	}
	return tag
}

// CreateTable creates table with c as its first column followed by the given
// raw column definitions.
func (c Column) CreateTable(db *gorm.DB, table string, columns ...string) error {
	defs := append([]string{c.Definition(db)}, columns...)
	stmt := fmt.Sprintf("CREATE TABLE %s (%s)", db.Statement.Quote(table), strings.Join(defs, ", "))
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("error creating table %s: %w", table, err)
	}
	return nil
}
