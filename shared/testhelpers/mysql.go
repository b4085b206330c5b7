//go:build integration

package testhelpers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dracory/sqlgateway/shared/constants"
	"github.com/dracory/sqlgateway/shared/driver"
	"github.com/dracory/sqlgateway/shared/executor"
)

// MySQLImage is the server the integration tests run against.
const MySQLImage = "mysql:8.0"

// MySQL holds a shared MySQL container.
type MySQL struct {
	Container testcontainers.Container
	DSN       string
}

var (
	sharedMySQL     *MySQL
	sharedMySQLOnce sync.Once
	sharedMySQLErr  error
)

// GetMySQL returns a MySQL container shared by every test in the run.
func GetMySQL(t *testing.T) *MySQL {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedMySQLOnce.Do(func() {
		sharedMySQL, sharedMySQLErr = setupMySQL()
	})

	if sharedMySQLErr != nil {
		t.Fatalf("Failed to setup MySQL container: %v", sharedMySQLErr)
	}
	return sharedMySQL
}

func setupMySQL() (*MySQL, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        MySQLImage,
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "test_password",
			"MYSQL_DATABASE":      "testdb",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").
			WithStartupTimeout(120 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "3306")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	dsn, err := driver.BuildDSN(constants.DriverMySQL, host, port.Int(), "root", "test_password", "testdb")
	if err != nil {
		return nil, err
	}
	return &MySQL{Container: container, DSN: dsn}, nil
}

// NewMySQLExecutor opens a pool on the shared container and drops every table
// when the test ends.
func NewMySQLExecutor(t *testing.T) *executor.Executor {
	t.Helper()

	db, err := driver.Open(constants.DriverMySQL, GetMySQL(t).DSN, driver.PoolConfig{MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("failed to open MySQL pool: %v", err)
	}
	exec, err := executor.New(db)
	if err != nil {
		t.Fatalf("failed to wrap MySQL pool: %v", err)
	}

	// Verify connection with retry
	for i := 0; i < 20; i++ {
		if err = exec.Ping(context.Background()); err == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("MySQL is not reachable: %v", err)
	}

	t.Cleanup(func() {
		ctx := context.Background()
		tables, err := exec.Tables(ctx)
		if err == nil {
			_, _ = exec.Exec(ctx, "SET FOREIGN_KEY_CHECKS = 0")
			for _, table := range tables {
				_, _ = exec.Exec(ctx, "DROP TABLE IF EXISTS "+table)
			}
			_, _ = exec.Exec(ctx, "SET FOREIGN_KEY_CHECKS = 1")
		}
		_ = exec.Close()
	})
	return exec
}
