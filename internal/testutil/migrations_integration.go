//go:build integration

package testutil

import (
	"context"
	"fmt"

	pgrepo "github.com/Gunvolt24/storefront/internal/repo/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplyMigrations — те же встроенные миграции, что применяет сервер при старте.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := pgrepo.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
