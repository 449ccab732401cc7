//go:build integration

package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gilrsantana/pontolegal/internal/pkg/database"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDatabaseSetup holds the database the repository tests run against
type TestDatabaseSetup struct {
	DB        *database.DB
	container *tcpostgres.PostgresContainer
}

// NewTestDatabase connects to TEST_DATABASE_URL when set, otherwise starts a
// disposable Postgres container. The schema is applied either way.
func NewTestDatabase(ctx context.Context) (*TestDatabaseSetup, error) {
	setup := &TestDatabaseSetup{}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
			tcpostgres.WithDatabase("pontolegal_test"),
			tcpostgres.WithUsername("postgres"),
			tcpostgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start postgres container: %w", err)
		}
		setup.container = container

		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			setup.Close()
			return nil, fmt.Errorf("failed to get connection string: %w", err)
		}
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{MaxConns: 10, MinConns: 1})
	if err != nil {
		setup.Close()
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}
	setup.DB = db

	if err := setup.applySchema(ctx); err != nil {
		setup.Close()
		return nil, err
	}

	return setup, nil
}

func (t *TestDatabaseSetup) applySchema(ctx context.Context) error {
	schema, err := os.ReadFile(filepath.Join("..", "testdata", "schema.sql"))
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}

	for _, stmt := range strings.Split(string(schema), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := t.DB.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// TruncateAllTables removes every row, children first
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"review_notifications",
		"time_clock_punches",
		"employees",
		"working_days",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close closes the pool and stops the container if one was started
func (t *TestDatabaseSetup) Close() {
	if t.DB != nil {
		t.DB.Close()
	}
	if t.container != nil {
		_ = testcontainers.TerminateContainer(t.container)
	}
}
