//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	cachemem "github.com/Gunvolt24/storefront/internal/cache/memory"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/stretchr/testify/require"

	pgrepo "github.com/Gunvolt24/storefront/internal/repo/postgres"
	"github.com/Gunvolt24/storefront/internal/testutil"
	rest "github.com/Gunvolt24/storefront/internal/transport/http"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/logger"
)

// startServer — Postgres в контейнере, сервис заказов и HTTP-сервер поверх него.
func startServer(t *testing.T, ctx context.Context) (*httptest.Server, *pgrepo.OrderRepository) {
	t.Helper()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	repo := pgrepo.NewOrderRepository(pg.Pool)
	svc := usecase.NewOrderService(repo, cachemem.NewOrderCache(100, time.Minute), logg)

	h := rest.NewHandler(rest.Deps{Orders: svc}, logg, 2*time.Second, rest.Limits{DefaultLimit: 2, MaxLimit: 10})
	ts := httptest.NewServer(rest.NewRouter(h, "", ""))
	t.Cleanup(ts.Close)
	return ts, repo
}

// 1) GET /order/:id — 200 для архивного заказа
func TestHTTP_GetOrder_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	ts, repo := startServer(t, ctx)

	ord := testutil.MakeOrder(testutil.WithProducts(2))
	require.NoError(t, repo.Save(ctx, &ord))

	resp, err := http.Get(ts.URL + "/order/" + ord.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, ord.ID, got.ID)
	require.Len(t, got.Products, 2)
	require.True(t, ord.OrderDate.Equal(got.OrderDate))
}

// 2) GET /order/:id — 404 когда заказа нет
func TestHTTP_GetOrder_NotFound_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	ts, _ := startServer(t, ctx)

	resp, err := http.Get(ts.URL + "/order/not-existing-id")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "order not found", got["error"])
}

// 3) GET /orders/recent — новые первыми, limit по умолчанию
func TestHTTP_RecentOrders_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	ts, repo := startServer(t, ctx)

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		o := testutil.MakeOrder()
		require.NoError(t, repo.Save(ctx, &o))
		ids = append(ids, o.ID)
		time.Sleep(10 * time.Millisecond) // archived_at различается
	}

	resp, err := http.Get(ts.URL + "/orders/recent")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	require.Equal(t, ids[2], got[0].ID)
	require.Equal(t, ids[1], got[1].ID)
}

// 4) /ping, /metrics, 404 и 405 — без базы
func TestHTTP_Health_Metrics_And_404_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(rest.Deps{Orders: slowService{}}, logg, 2*time.Second, rest.Limits{})
	ts := httptest.NewServer(rest.NewRouter(h, "", ""))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pong", string(readAll(t, resp.Body)))

	respM, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer respM.Body.Close()
	require.Equal(t, http.StatusOK, respM.StatusCode)
	require.NotEmpty(t, readAll(t, respM.Body))

	resp404, err := http.Get(ts.URL + "/no/such/route")
	require.NoError(t, err)
	defer resp404.Body.Close()
	require.Equal(t, http.StatusNotFound, resp404.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp404.Body).Decode(&got))
	require.Equal(t, "route not found", got["error"])

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/order/some-id", nil)
	resp405, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp405.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp405.StatusCode)
}

// 5) Таймаут обработчика — 504
func TestHTTP_GetOrder_Timeout_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(rest.Deps{Orders: slowService{}}, logg, 10*time.Millisecond, rest.Limits{})
	ts := httptest.NewServer(rest.NewRouter(h, "", ""))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/order/any")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
}

// --- функции помощники ---

// slowService — всегда ждёт ctx.Done() и возвращает ошибку контекста.
type slowService struct{}

func (slowService) GetOrder(ctx context.Context, _ string) (*domain.Order, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowService) RecentOrders(ctx context.Context, _ int) ([]*domain.Order, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}
