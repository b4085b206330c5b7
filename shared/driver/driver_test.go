package driver_test

import (
	"path/filepath"
	"testing"

	"github.com/dracory/sqlgateway/shared/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"mysql":      "mysql",
		"MariaDB":    "mysql",
		"pg":         "postgres",
		"postgresql": "postgres",
		"sqlite3":    "sqlite",
		"mssql":      "sqlserver",
		" Oracle ":   "oracle",
	}
	for in, want := range cases {
		assert.Equal(t, want, driver.Normalize(in), in)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, driver.Validate("mariadb"))
	assert.NoError(t, driver.Validate("sqlite3"))
	assert.EqualError(t, driver.Validate(""), "driver is required")
	assert.EqualError(t, driver.Validate("oracle"), "unsupported driver: oracle")
}

func TestBuildDSN(t *testing.T) {
	dsn, err := driver.BuildDSN("mysql", "localhost", 3306, "root", "secret", "testdb")
	require.NoError(t, err)
	assert.Equal(t, "root:secret@tcp(localhost:3306)/testdb?parseTime=true", dsn)

	dsn, err = driver.BuildDSN("mysql", "db", 0, "root", "", "testdb")
	require.NoError(t, err)
	assert.Equal(t, "root@tcp(db)/testdb?parseTime=true", dsn)

	dsn, err = driver.BuildDSN("postgres", "localhost", 5432, "app", "pw", "shop")
	require.NoError(t, err)
	assert.Equal(t, "host=localhost user=app password=pw dbname=shop port=5432 sslmode=disable", dsn)

	dsn, err = driver.BuildDSN("sqlserver", "localhost", 1433, "sa", "pw", "shop")
	require.NoError(t, err)
	assert.Equal(t, "sqlserver://sa:pw@localhost:1433?database=shop", dsn)

	path := filepath.Join(t.TempDir(), "nested", "gateway.db")
	dsn, err = driver.BuildDSN("sqlite", "", 0, "", "", path)
	require.NoError(t, err)
	assert.Equal(t, path, dsn)
	assert.DirExists(t, filepath.Dir(path))

	_, err = driver.BuildDSN("oracle", "h", 1, "u", "p", "d")
	assert.Error(t, err)
}

func TestOpen_SQLite(t *testing.T) {
	db, err := driver.Open("sqlite3", filepath.Join(t.TempDir(), "open.db"), driver.PoolConfig{MaxOpenConns: 4, MaxIdleConns: 2})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, "sqlite", db.Dialector.Name())
	assert.Equal(t, 4, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, sqlDB.Ping())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := driver.Open("oracle", "x", driver.PoolConfig{})
	assert.EqualError(t, err, "unsupported driver: oracle")
}
