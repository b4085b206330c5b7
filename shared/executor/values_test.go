package executor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		in       any
		want     any
	}{
		{"int from text protocol", "INT", []byte("42"), int64(42)},
		{"negative bigint", "BIGINT", []byte("-9000000000"), int64(-9000000000)},
		{"unsigned bigint", "UNSIGNED BIGINT", []byte("18446744073709551615"), uint64(18446744073709551615)},
		{"double", "DOUBLE", []byte("2.5"), 2.5},
		{"decimal stays a string", "DECIMAL", []byte("10.50"), "10.50"},
		{"varchar", "VARCHAR", []byte("Ann"), "Ann"},
		{"unparseable int falls back to string", "INT", []byte("n/a"), "n/a"},
		{"already typed", "INTEGER", int64(7), int64(7)},
		{"null", "VARCHAR", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeValue(tt.typeName, tt.in))
		})
	}

	ts := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-15T00:00:00.000Z", normalizeValue("DATETIME", ts))

	local := time.Date(2024, 1, 15, 10, 30, 5, 123456789, time.FixedZone("CET", 3600))
	assert.Equal(t, "2024-01-15T09:30:05.123Z", normalizeValue("TIMESTAMP", local))
}

func TestSQLXDriverName(t *testing.T) {
	assert.Equal(t, "mysql", sqlxDriverName("mysql"))
	assert.Equal(t, "pgx", sqlxDriverName("postgres"))
	assert.Equal(t, "sqlite3", sqlxDriverName("sqlite"))
	assert.Equal(t, "sqlserver", sqlxDriverName("sqlserver"))
}
