package executor

import (
	"context"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gorm.io/gorm"

	"github.com/dracory/sqlgateway/shared/constants"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
)

// Tables lists the tables of the connected database. MySQL runs SHOW TABLES
// and unwraps the single column of each row; other dialects ask GORM's migrator.
func (e *Executor) Tables(ctx context.Context) ([]string, error) {
	if e.dialect == constants.DriverMySQL {
		rows, err := e.Query(ctx, sqlbuild.ShowTables)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(rows))
		for _, row := range rows {
			if first := row.Oldest(); first != nil {
				names = append(names, fmt.Sprint(first.Value))
			}
		}
		return names, nil
	}

	tables, err := e.orm.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		if e.dialect == constants.DriverSQLite && strings.HasPrefix(t, "sqlite_") {
			continue
		}
		names = append(names, t)
	}
	return names, nil
}

// Describe returns the structure of a table. MySQL runs DESCRIBE; other
// dialects build rows with the same Field, Type, Null, Key, Default, Extra
// columns from GORM's column types.
func (e *Executor) Describe(ctx context.Context, table string) ([]Row, error) {
	if e.dialect == constants.DriverMySQL {
		return e.Query(ctx, sqlbuild.Describe(table))
	}

	cols, err := e.orm.WithContext(ctx).Migrator().ColumnTypes(table)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(cols))
	for _, c := range cols {
		rows = append(rows, describeRow(c))
	}
	return rows, nil
}

func describeRow(c gorm.ColumnType) Row {
	typ, ok := c.ColumnType()
	if !ok || typ == "" {
		typ = strings.ToLower(c.DatabaseTypeName())
	}

	null := "YES"
	if nullable, ok := c.Nullable(); ok && !nullable {
		null = "NO"
	}

	key := ""
	if pk, ok := c.PrimaryKey(); ok && pk {
		key = "PRI"
	} else if unique, ok := c.Unique(); ok && unique {
		key = "UNI"
	}

	var def any
	if d, ok := c.DefaultValue(); ok {
		def = d
	}

	extra := ""
	if ai, ok := c.AutoIncrement(); ok && ai {
		extra = "auto_increment"
	}

	row := orderedmap.New[string, any]()
	row.Set("Field", c.Name())
	row.Set("Type", typ)
	row.Set("Null", null)
	row.Set("Key", key)
	row.Set("Default", def)
	row.Set("Extra", extra)
	return row
}
