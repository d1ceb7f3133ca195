// Package testdb starts a disposable Postgres for repository tests.
package testdb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/musclemyths/config"
)

// EnvFlag must be set to a non-empty value for Open to start a container.
const EnvFlag = "INTEGRATION_TESTS"

// Open starts a postgres:16-alpine container, migrates models and returns a
// connection. The test is skipped unless EnvFlag is set.
func Open(t *testing.T, models ...any) *gorm.DB {
	t.Helper()
	if os.Getenv(EnvFlag) == "" {
		t.Skipf("set %s=1 to run database tests", EnvFlag)
	}

	ctx := context.Background()
	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("musclemyths"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pg); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(pgdriver.Open(dsn), config.GormConfig("test"))
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	return db
}
