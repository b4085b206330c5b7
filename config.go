package sqlgateway

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/dracory/env"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/dracory/sqlgateway/shared/driver"
	"github.com/dracory/sqlgateway/shared/types"
)

// LoadConfig builds the configuration from defaults, an optional YAML file,
// the environment and command line flags, each overriding the previous one.
// args are the command line arguments without the program name.
func LoadConfig(args []string) (types.Config, error) {
	cfg := types.DefaultConfig()

	fs := flag.NewFlagSet("sqlgateway", flag.ContinueOnError)
	configFile := fs.String("config", "", "YAML config file")
	port := fs.Int("port", cfg.HTTPPort, "HTTP port to listen on")
	drv := fs.String("driver", cfg.DBDriver, "Database driver (mysql, postgres, sqlite, sqlserver)")
	dsn := fs.String("dsn", "", "Database DSN, overrides the discrete DB_* fields")
	static := fs.String("static", cfg.StaticDir, "Directory served at / when it exists")
	guard := fs.Bool("guard", cfg.SQLGuard, "Reject unsafe identifiers and DEFAULT literals")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", cfg.LogFormat, "Log format (json, console)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	// Optionally load from .env files (missing files are ignored inside the lib)
	env.Load(".env")

	path := *configFile
	if path == "" {
		path = env.GetStringOrDefault("CONFIG_FILE", "")
	}
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.HTTPPort = *port
		case "driver":
			cfg.DBDriver = *drv
		case "dsn":
			cfg.DBDSN = *dsn
		case "static":
			cfg.StaticDir = *static
		case "guard":
			cfg.SQLGuard = *guard
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})

	if err := driver.Validate(cfg.DBDriver); err != nil {
		return cfg, err
	}
	cfg.DBDriver = driver.Normalize(cfg.DBDriver)

	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return cfg, fmt.Errorf("invalid HTTP port: %d", cfg.HTTPPort)
	}
	return cfg, nil
}

// applyEnv overrides cfg with the variables that are set. The current values
// act as the defaults.
func applyEnv(cfg *types.Config) error {
	cfg.HTTPPort = env.GetIntOrDefault("HTTP_PORT", cfg.HTTPPort)

	cfg.DBDriver = env.GetStringOrDefault("DB_DRIVER", cfg.DBDriver)
	cfg.DBDSN = env.GetStringOrDefault("DB_DSN", cfg.DBDSN)
	cfg.DBHost = env.GetStringOrDefault("DB_HOST", cfg.DBHost)
	cfg.DBPort = env.GetIntOrDefault("DB_PORT", cfg.DBPort)
	cfg.DBUser = env.GetStringOrDefault("DB_USER", cfg.DBUser)
	cfg.DBPassword = env.GetStringOrDefault("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = env.GetStringOrDefault("DB_NAME", cfg.DBName)

	cfg.DBMaxOpenConns = env.GetIntOrDefault("DB_MAX_OPEN_CONNS", cfg.DBMaxOpenConns)
	cfg.DBMaxIdleConns = env.GetIntOrDefault("DB_MAX_IDLE_CONNS", cfg.DBMaxIdleConns)

	cfg.StaticDir = env.GetStringOrDefault("STATIC_DIR", cfg.StaticDir)
	cfg.CORSAllowedOrigins = env.GetStringOrDefault("CORS_ALLOWED_ORIGINS", cfg.CORSAllowedOrigins)
	cfg.SQLGuard = env.GetBoolOrDefault("SQL_GUARD", cfg.SQLGuard)

	cfg.LogLevel = env.GetStringOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = env.GetStringOrDefault("LOG_FORMAT", cfg.LogFormat)

	var err error
	if cfg.DBConnMaxLifetime, err = envDuration("DB_CONN_MAX_LIFETIME", cfg.DBConnMaxLifetime); err != nil {
		return err
	}
	if cfg.ShutdownTimeout, err = envDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return err
	}
	return nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(env.GetStringOrDefault(key, ""))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// DSN returns the configured DSN, or one built from the discrete DB_* fields.
func DSN(cfg types.Config) (string, error) {
	if cfg.DBDSN != "" {
		return cfg.DBDSN, nil
	}
	return driver.BuildDSN(cfg.DBDriver, cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
}

// PoolConfig returns the pool limits from cfg.
func PoolConfig(cfg types.Config) driver.PoolConfig {
	return driver.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}
}
