//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/storefront/internal/domain"
	pgrepo "github.com/Gunvolt24/storefront/internal/repo/postgres"
	"github.com/Gunvolt24/storefront/internal/testutil"
)

func startRepo(t *testing.T) (*pgrepo.OrderRepository, *testutil.PGContainer) {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	return pgrepo.NewOrderRepository(pg.Pool), pg
}

func TestRepo_SaveAndGet_TC(t *testing.T) {
	t.Parallel()
	repo, _ := startRepo(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ord := testutil.MakeOrder(testutil.WithProducts(3))
	require.NoError(t, repo.Save(ctx, &ord))

	got, err := repo.GetByID(ctx, ord.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, ord.ID, got.ID)
	require.Equal(t, ord.Client, got.Client)
	require.Equal(t, ord.Location, got.Location)
	require.True(t, ord.OrderDate.Equal(got.OrderDate))
	require.Equal(t, ord.Products, got.Products) // порядок позиций сохраняется
}

func TestRepo_Save_UpsertReplacesProducts_TC(t *testing.T) {
	t.Parallel()
	repo, _ := startRepo(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ord := testutil.MakeOrder(testutil.WithProducts(2))
	require.NoError(t, repo.Save(ctx, &ord))

	ord.Client = "Luis"
	ord.Products = []domain.OrderProduct{{ID: "only-one", Amount: 7}}
	require.NoError(t, repo.Save(ctx, &ord))

	got, err := repo.GetByID(ctx, ord.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Luis", got.Client)
	require.Equal(t, []domain.OrderProduct{{ID: "only-one", Amount: 7}}, got.Products)
}

func TestRepo_GetByID_NotFound_TC(t *testing.T) {
	t.Parallel()
	repo, _ := startRepo(t)

	got, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRepo_LastN_NewestFirst_TC(t *testing.T) {
	t.Parallel()
	repo, _ := startRepo(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var ids []string
	for i := 0; i < 3; i++ {
		ord := testutil.MakeOrder(testutil.WithProducts(i + 1))
		require.NoError(t, repo.Save(ctx, &ord))
		ids = append(ids, ord.ID)
		time.Sleep(10 * time.Millisecond) // разные archived_at
	}

	got, err := repo.LastN(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, ids[2], got[0].ID)
	require.Equal(t, ids[1], got[1].ID)
	require.Len(t, got[0].Products, 3)
	require.Len(t, got[1].Products, 2)

	none, err := repo.LastN(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMigrate_Idempotent_TC(t *testing.T) {
	t.Parallel()
	_, pg := startRepo(t)

	// StartPostgresTC уже применил миграции; повтор не должен падать
	require.NoError(t, pgrepo.Migrate(context.Background(), pg.Pool))
}
