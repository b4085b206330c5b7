package sqlbuild

import (
	"encoding/json"
	"strings"

	"github.com/dracory/sqlgateway/shared/jsonutil"
)

// Column is a column definition as it arrives in a request body.
type Column struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Length        json.RawMessage `json:"length,omitempty"`
	NotNull       jsonutil.Flag   `json:"notNull"`
	AutoIncrement jsonutil.Flag   `json:"autoIncrement"`
	PrimaryKey    jsonutil.Flag   `json:"primaryKey"`
	Unique        jsonutil.Flag   `json:"unique"`
	Default       json.RawMessage `json:"default,omitempty"`
}

// LengthText returns the length clause content, or "" when length is falsy.
func (c Column) LengthText() string {
	if !jsonutil.Truthy(c.Length) {
		return ""
	}
	return jsonutil.FlexibleString(c.Length)
}

// DefaultText returns the DEFAULT literal, or "" when default is falsy.
// Send "0" or "false" as strings to get DEFAULT 0 or DEFAULT false.
func (c Column) DefaultText() string {
	if !jsonutil.Truthy(c.Default) {
		return ""
	}
	return jsonutil.FlexibleString(c.Default)
}

// ColumnDef renders a column for CREATE TABLE:
// name type[(length)][ NOT NULL][ AUTO_INCREMENT][ PRIMARY KEY][ UNIQUE][ DEFAULT x]
func ColumnDef(c Column) string {
	var b strings.Builder
	writeHead(&b, c)
	if c.NotNull {
		b.WriteString(" NOT NULL")
	}
	if c.AutoIncrement {
		b.WriteString(" AUTO_INCREMENT")
	}
	if c.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if c.Unique {
		b.WriteString(" UNIQUE")
	}
	writeDefault(&b, c)
	return b.String()
}

// AlterColumnDef renders a column for ADD COLUMN and MODIFY COLUMN, which
// only carry name, type, length, NOT NULL and DEFAULT.
func AlterColumnDef(c Column) string {
	var b strings.Builder
	writeHead(&b, c)
	if c.NotNull {
		b.WriteString(" NOT NULL")
	}
	writeDefault(&b, c)
	return b.String()
}

func writeHead(b *strings.Builder, c Column) {
	b.WriteString(c.Name)
	b.WriteString(" ")
	b.WriteString(c.Type)
	if l := c.LengthText(); l != "" {
		b.WriteString("(")
		b.WriteString(l)
		b.WriteString(")")
	}
}

func writeDefault(b *strings.Builder, c Column) {
	if d := c.DefaultText(); d != "" {
		b.WriteString(" DEFAULT ")
		b.WriteString(d)
	}
}
