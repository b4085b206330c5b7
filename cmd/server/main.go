package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/dracory/sqlgateway"
	"github.com/dracory/sqlgateway/shared/driver"
	"github.com/dracory/sqlgateway/shared/executor"
	"github.com/dracory/sqlgateway/shared/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration (flags override env, env overrides the YAML file)
	cfg, err := sqlgateway.LoadConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logger error: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	dsn, err := sqlgateway.DSN(cfg)
	if err != nil {
		return fmt.Errorf("dsn error: %w", err)
	}

	db, err := driver.Open(cfg.DBDriver, dsn, sqlgateway.PoolConfig(cfg))
	if err != nil {
		return err
	}
	exec, err := executor.New(db)
	if err != nil {
		return err
	}
	defer func() { _ = exec.Close() }()

	// The gateway keeps serving when the database is down; statements fail
	// with the driver error until it comes back.
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := exec.Ping(pingCtx); err != nil {
		logger.Error("Database connection failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
	} else {
		logger.Info("Database connected successfully", zap.String("driver", cfg.DBDriver))
	}
	cancelPing()

	app := sqlgateway.New(cfg, exec, sqlgateway.WithLogger(logger))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("addr", srv.Addr), zap.Bool("sql_guard", cfg.SQLGuard))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}
