// Testcontainers harness for running the service layer against a real MySQL
// instead of the in-memory sqlite used by the unit tests. Opt-in via
// QUOTETRACK_IT=1 since it needs a working Docker daemon.

package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/goldtek/quotetrack/internal/config"
	"github.com/goldtek/quotetrack/internal/database"
	"gorm.io/gorm"
)

const (
	mysqlImage    = "mysql:8.4"
	mysqlDatabase = "quotetrack_test"
	mysqlUser     = "quotetrack"
	mysqlPassword = "quotetrack-test-pw"
	mysqlRootPw   = "root-test-pw"
)

// StartMySQL starts a disposable MySQL container and returns a migrated gorm
// connection to it. Skips the test unless QUOTETRACK_IT=1.
func StartMySQL(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("QUOTETRACK_IT") != "1" {
		t.Skip("set QUOTETRACK_IT=1 to run container-backed tests")
	}

	ctx := context.Background()
	port, err := nat.NewPort("tcp", "3306")
	if err != nil {
		t.Fatalf("Failed to create DB port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mysqlImage,
			ExposedPorts: []string{string(port)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": mysqlRootPw,
				"MYSQL_DATABASE":      mysqlDatabase,
				"MYSQL_USER":          mysqlUser,
				"MYSQL_PASSWORD":      mysqlPassword,
			},
			WaitingFor: wait.ForListeningPort(port).WithStartupTimeout(120 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MySQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate MySQL container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to resolve container host: %v", err)
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		t.Fatalf("Failed to resolve mapped port: %v", err)
	}

	waitForMySQL(t, host, mapped.Port())

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        mysqlDatabase,
		DBUser:            mysqlUser,
		DBPassword:        mysqlPassword,
		DBConnectionLimit: 5,
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to MySQL container: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate MySQL container database: %v", err)
	}

	return db
}

// waitForMySQL pings until the server accepts application connections; the
// listening port opens before auth is ready.
func waitForMySQL(t *testing.T, host, port string) {
	t.Helper()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", mysqlUser, mysqlPassword, host, port, mysqlDatabase)
	raw, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("Failed to open MySQL for readiness check: %v", err)
	}
	defer raw.Close()

	for i := 0; i < 30; i++ {
		if err = raw.Ping(); err == nil {
			return
		}
		time.Sleep(1 * time.Second)
	}
	t.Fatalf("MySQL not ready after 30 seconds: %v", err)
}
