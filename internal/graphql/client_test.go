package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/shopspring/decimal"
)

type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// fakeAPI — тестовый GraphQL-сервер; handle отвечает телом ответа.
type fakeAPI struct {
	calls  atomic.Int32
	mu     sync.Mutex
	last   gqlRequest
	handle func(req gqlRequest) (int, string)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	var req gqlRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	f.mu.Lock()
	f.last = req
	f.mu.Unlock()

	code, body := f.handle(req)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

func (f *fakeAPI) lastRequest() gqlRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	c := NewClient(Options{
		Endpoint:      srv.URL,
		RetryAttempts: 3,
		RetryInitial:  time.Millisecond,
		RetryMax:      2 * time.Millisecond,
		PageCapacity:  16,
		PageTTL:       time.Minute,
		HTTPClient:    srv.Client(),
	}, nopLogger{})
	t.Cleanup(c.Close)
	return c
}

const pageBody = `{"data":{"products":{"data":[
  {"id":"p1","name":"Cerveza","price":3.5,"amount":4},
  {"id":"p2","name":"Vino","price":"10","amount":1}
],"cursor":{"after":"c2","count":10}}}}`

func TestFetchMore_DecodesPageAndSendsRemoteVars(t *testing.T) {
	api := &fakeAPI{handle: func(gqlRequest) (int, string) { return http.StatusOK, pageBody }}
	c := newTestClient(t, api)

	vars := domain.QueryVariables{
		Pagination: domain.Pagination{Limit: 2, After: "c1"},
		Filter:     "beer",
		Category:   "drinks",
	}
	page, err := c.FetchMore(context.Background(), vars)
	if err != nil {
		t.Fatalf("FetchMore: %v", err)
	}
	if len(page.Items) != 2 || page.Items[0].ID != "p1" || !page.Items[0].Price.Equal(decimal.RequireFromString("3.5")) {
		t.Fatalf("unexpected page: %+v", page)
	}
	if after, ok := page.NextAfter(); !ok || after != "c2" {
		t.Fatalf("unexpected cursor: %+v", page.Cursor)
	}

	req := api.lastRequest()
	if !strings.Contains(req.Query, "products(pagination: $pagination, category: $category)") {
		t.Fatalf("unexpected query: %s", req.Query)
	}
	if _, ok := req.Variables["filter"]; ok {
		t.Fatalf("filter must stay local: %+v", req.Variables)
	}
	pagination, _ := req.Variables["pagination"].(map[string]any)
	if pagination["after"] != "c1" || pagination["limit"] != float64(2) || req.Variables["category"] != "drinks" {
		t.Fatalf("unexpected variables: %+v", req.Variables)
	}
}

func TestQuery_RetriesOn5xx(t *testing.T) {
	api := &fakeAPI{}
	api.handle = func(gqlRequest) (int, string) {
		if api.calls.Load() < 3 {
			return http.StatusServiceUnavailable, `oops`
		}
		return http.StatusOK, pageBody
	}
	c := newTestClient(t, api)

	if _, err := c.FetchMore(context.Background(), domain.DefaultVariables()); err != nil {
		t.Fatalf("FetchMore: %v", err)
	}
	if got := api.calls.Load(); got != 3 {
		t.Fatalf("want 3 calls, got %d", got)
	}
}

func TestQuery_NoRetryOnGraphQLErrors(t *testing.T) {
	api := &fakeAPI{handle: func(gqlRequest) (int, string) {
		return http.StatusOK, `{"data":null,"errors":[{"message":"bad cursor","path":["products"]}]}`
	}}
	c := newTestClient(t, api)

	_, err := c.FetchMore(context.Background(), domain.DefaultVariables())
	var respErr *ResponseError
	if !errors.As(err, &respErr) || respErr.Errors[0].Message != "bad cursor" {
		t.Fatalf("want ResponseError, got %v", err)
	}
	if got := api.calls.Load(); got != 1 {
		t.Fatalf("want 1 call, got %d", got)
	}
}

func TestCreateOrder(t *testing.T) {
	orderDate := time.Date(2025, 5, 1, 18, 30, 0, 0, time.UTC)
	req := domain.OrderRequest{
		Products:  []domain.OrderProduct{{ID: "a", Amount: 2}},
		Client:    "Ana",
		Location:  domain.Location{Lat: -34.6, Lng: -58.4},
		OrderDate: orderDate,
	}

	t.Run("created", func(t *testing.T) {
		api := &fakeAPI{handle: func(gqlRequest) (int, string) {
			return http.StatusOK, `{"data":{"createOrder":{"id":"o-1","products":[{"id":"a","amount":2}],
			  "client":"Ana","location":{"lat":-34.6,"lng":-58.4},"orderDate":"2025-05-01T18:30:00Z"}}}`
		}}
		c := newTestClient(t, api)

		order, err := c.CreateOrder(context.Background(), req)
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		if order == nil || order.ID != "o-1" || !order.OrderDate.Equal(orderDate) || order.Products[0].Amount != 2 {
			t.Fatalf("unexpected order: %+v", order)
		}
		sent := api.lastRequest().Variables
		if sent["client"] != "Ana" || sent["orderDate"] != "2025-05-01T18:30:00Z" {
			t.Fatalf("unexpected variables: %+v", sent)
		}
	})

	t.Run("errors", func(t *testing.T) {
		api := &fakeAPI{handle: func(gqlRequest) (int, string) {
			return http.StatusOK, `{"data":{"createOrder":null},"errors":[{"message":"out of stock"}]}`
		}}
		c := newTestClient(t, api)

		order, err := c.CreateOrder(context.Background(), req)
		var respErr *ResponseError
		if order != nil || !errors.As(err, &respErr) {
			t.Fatalf("want ResponseError, got order=%v err=%v", order, err)
		}
	})

	t.Run("no order no errors", func(t *testing.T) {
		api := &fakeAPI{handle: func(gqlRequest) (int, string) {
			return http.StatusOK, `{"data":{"createOrder":null}}`
		}}
		c := newTestClient(t, api)

		order, err := c.CreateOrder(context.Background(), req)
		if order != nil || err != nil {
			t.Fatalf("want (nil, nil), got order=%v err=%v", order, err)
		}
	})

	t.Run("mutation is not retried", func(t *testing.T) {
		api := &fakeAPI{handle: func(gqlRequest) (int, string) { return http.StatusBadGateway, `` }}
		c := newTestClient(t, api)

		_, err := c.CreateOrder(context.Background(), req)
		var statusErr *StatusError
		if !errors.As(err, &statusErr) || statusErr.Code != http.StatusBadGateway {
			t.Fatalf("want StatusError 502, got %v", err)
		}
		if got := api.calls.Load(); got != 1 {
			t.Fatalf("want 1 call, got %d", got)
		}
	})
}

func TestCreateProduct_SendsNumericPrice(t *testing.T) {
	api := &fakeAPI{handle: func(gqlRequest) (int, string) {
		return http.StatusOK, `{"data":{"createProduct":{"id":"p9","name":"Cerveza"}}}`
	}}
	c := newTestClient(t, api)

	ref, err := c.CreateProduct(context.Background(), domain.ProductInput{
		Name: "Cerveza", Price: decimal.RequireFromString("3.50"), Amount: 5,
	})
	if err != nil || ref == nil || ref.ID != "p9" {
		t.Fatalf("CreateProduct: ref=%v err=%v", ref, err)
	}
	product, _ := api.lastRequest().Variables["product"].(map[string]any)
	if product["price"] != 3.5 || product["amount"] != float64(5) {
		t.Fatalf("unexpected product variables: %+v", product)
	}
	if _, ok := product["imageUrl"]; ok {
		t.Fatalf("empty imageUrl must be omitted: %+v", product)
	}
}

func TestEditProduct_SendsOnlySetFields(t *testing.T) {
	api := &fakeAPI{handle: func(gqlRequest) (int, string) {
		return http.StatusOK, `{"data":{"editProduct":{"id":"p1","name":"Cerveza"}}}`
	}}
	c := newTestClient(t, api)

	amount := 0
	if _, err := c.EditProduct(context.Background(), "p1", domain.ProductEditInput{Amount: &amount}); err != nil {
		t.Fatalf("EditProduct: %v", err)
	}
	vars := api.lastRequest().Variables
	product, _ := vars["product"].(map[string]any)
	if vars["id"] != "p1" || len(product) != 1 || product["amount"] != float64(0) {
		t.Fatalf("unexpected variables: %+v", vars)
	}
}

// ---- Watch ----

type eventSink struct {
	ch chan ports.QueryEvent
}

func newEventSink() *eventSink { return &eventSink{ch: make(chan ports.QueryEvent, 16)} }

func (s *eventSink) observe(ev ports.QueryEvent) { s.ch <- ev }

func (s *eventSink) next(t *testing.T) ports.QueryEvent {
	t.Helper()
	select {
	case ev := <-s.ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for event")
		return ports.QueryEvent{}
	}
}

func (s *eventSink) none(t *testing.T, d time.Duration) {
	t.Helper()
	select {
	case ev := <-s.ch:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(d):
	}
}

func TestWatch_CacheFirstAndInvalidate(t *testing.T) {
	api := &fakeAPI{handle: func(gqlRequest) (int, string) { return http.StatusOK, pageBody }}
	c := newTestClient(t, api)
	ctx := context.Background()

	first := newEventSink()
	sub1 := c.Watch(ctx, domain.DefaultVariables(), first.observe)
	defer sub1.Cancel()
	if ev := first.next(t); ev.Err != nil || len(ev.Page.Items) != 2 {
		t.Fatalf("unexpected first event: %+v", ev)
	}

	// те же удалённые переменные — ответ из кэша
	second := newEventSink()
	sub2 := c.Watch(ctx, domain.QueryVariables{Pagination: domain.Pagination{Limit: 20}, Filter: "x"}, second.observe)
	defer sub2.Cancel()
	if ev := second.next(t); ev.Err != nil || len(ev.Page.Items) != 2 {
		t.Fatalf("unexpected cached event: %+v", ev)
	}
	if got := api.calls.Load(); got != 1 {
		t.Fatalf("want 1 network call, got %d", got)
	}

	// Invalidate — обе подписки получают свежие данные из сети
	c.Invalidate(ctx)
	first.next(t)
	second.next(t)
	if got := api.calls.Load(); got != 3 {
		t.Fatalf("want 3 network calls, got %d", got)
	}
}

func TestWatch_ErrorIsDelivered(t *testing.T) {
	api := &fakeAPI{handle: func(gqlRequest) (int, string) {
		return http.StatusOK, `{"errors":[{"message":"boom"}]}`
	}}
	c := newTestClient(t, api)

	sink := newEventSink()
	sub := c.Watch(context.Background(), domain.DefaultVariables(), sink.observe)
	defer sub.Cancel()

	ev := sink.next(t)
	var respErr *ResponseError
	if ev.Page != nil || !errors.As(ev.Err, &respErr) {
		t.Fatalf("want error event, got %+v", ev)
	}
}

func TestWatch_NoDeliveryAfterCancel(t *testing.T) {
	release := make(chan struct{})
	api := &fakeAPI{handle: func(gqlRequest) (int, string) {
		<-release
		return http.StatusOK, pageBody
	}}
	c := newTestClient(t, api)

	sink := newEventSink()
	sub := c.Watch(context.Background(), domain.DefaultVariables(), sink.observe)

	// ждём, пока запрос дойдёт до сервера
	deadline := time.Now().Add(time.Second)
	for api.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	sub.Cancel()
	sub.Cancel() // идемпотентно
	close(release)

	sink.none(t, 50*time.Millisecond)
	if n := c.activeWatches(); n != 0 {
		t.Fatalf("want no active watches, got %d", n)
	}
}

func TestWatch_ParentContextCancels(t *testing.T) {
	api := &fakeAPI{handle: func(gqlRequest) (int, string) { return http.StatusOK, pageBody }}
	c := newTestClient(t, api)

	ctx, cancel := context.WithCancel(context.Background())
	sink := newEventSink()
	c.Watch(ctx, domain.DefaultVariables(), sink.observe)
	sink.next(t)

	cancel()
	deadline := time.Now().Add(time.Second)
	for c.activeWatches() != 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if n := c.activeWatches(); n != 0 {
		t.Fatalf("want watch removed after ctx cancel, got %d", n)
	}
}

func TestWatch_AfterCloseReportsErrClosed(t *testing.T) {
	api := &fakeAPI{handle: func(gqlRequest) (int, string) { return http.StatusOK, pageBody }}
	c := newTestClient(t, api)
	c.Close()

	sink := newEventSink()
	c.Watch(context.Background(), domain.DefaultVariables(), sink.observe)
	if ev := sink.next(t); !errors.Is(ev.Err, ErrClosed) {
		t.Fatalf("want ErrClosed, got %+v", ev)
	}
}
