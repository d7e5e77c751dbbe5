//go:build integration
// +build integration

package repository_test

import (
	"context"
	"log"
	"os"
	"testing"

	"mr-notifier/internal/database"
	"mr-notifier/internal/retry"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	db      *pgxpool.Pool
	retrier retry.Retrier
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("mr_notifier"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	if err := database.Migrate("../../migrations", dsn); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db, err = pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}

	retrier = retry.New(retry.WithMaxAttempts(3))

	code := m.Run()

	db.Close()
	if err := testcontainers.TerminateContainer(container); err != nil {
		log.Printf("failed to terminate container: %v", err)
	}

	os.Exit(code)
}
