package types

import "time"

// Config contains the configuration for the gateway
type Config struct {
	// HTTPPort is the port the HTTP server listens on
	HTTPPort int `yaml:"http_port"`

	// DBDriver selects the GORM dialector (mysql, postgres, sqlite, sqlserver)
	DBDriver string `yaml:"db_driver"`
	// DBDSN overrides the discrete connection fields when set
	DBDSN      string `yaml:"db_dsn"`
	DBHost     string `yaml:"db_host"`
	DBPort     int    `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"-"`
	DBName     string `yaml:"db_name"`

	// Pool limits applied to the shared *sql.DB
	DBMaxOpenConns    int           `yaml:"db_max_open_conns"`
	DBMaxIdleConns    int           `yaml:"db_max_idle_conns"`
	DBConnMaxLifetime time.Duration `yaml:"db_conn_max_lifetime"`

	// StaticDir is served at / when it exists
	StaticDir string `yaml:"static_dir"`
	// CORSAllowedOrigins is the Access-Control-Allow-Origin value
	CORSAllowedOrigins string `yaml:"cors_allowed_origins"`

	// SQLGuard rejects unsafe identifiers and DEFAULT literals before execution
	SQLGuard bool `yaml:"sql_guard"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		HTTPPort:           3000,
		DBDriver:           "mysql",
		DBHost:             "localhost",
		DBPort:             3306,
		DBUser:             "root",
		DBName:             "testdb",
		DBMaxOpenConns:     10,
		DBMaxIdleConns:     10,
		StaticDir:          "public",
		CORSAllowedOrigins: "*",
		LogLevel:           "info",
		LogFormat:          "json",
		ShutdownTimeout:    10 * time.Second,
	}
}
