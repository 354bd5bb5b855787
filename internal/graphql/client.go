// Пакет graphql — клиент удалённого GraphQL API витрины:
// живые запросы каталога (Watch/FetchMore) и мутации (заказ, товар).
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/cache/memory"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	_ ports.ProductQuerier   = (*Client)(nil)
	_ ports.OrderCreator     = (*Client)(nil)
	_ ports.ProductMutator   = (*Client)(nil)
	_ ports.QueryInvalidator = (*Client)(nil)
)

var (
	// ErrClosed — клиент закрыт.
	ErrClosed = errors.New("graphql client closed")
	// ErrMalformedResponse — ответ сервера не разбирается как GraphQL.
	ErrMalformedResponse = errors.New("graphql: malformed response")
)

// maxResponseSize — ограничение на размер ответа сервера.
const maxResponseSize = 8 << 20

// Options — параметры клиента.
type Options struct {
	Endpoint      string
	Timeout       time.Duration
	RetryAttempts int
	RetryInitial  time.Duration
	RetryMax      time.Duration
	PageCapacity  int
	PageTTL       time.Duration
	// HTTPClient — для тестов; по умолчанию http.Client с otelhttp-транспортом.
	HTTPClient *http.Client
}

// Client — GraphQL-over-HTTP клиент с кэшем страниц и реестром живых подписок.
type Client struct {
	endpoint string
	http     *http.Client
	log      ports.Logger
	retry    *retryPolicy
	pages    *memory.LRUCacheTTL[*domain.Page]

	mu       sync.Mutex
	watches  map[uint64]*watch
	nextID   uint64
	closed   bool
	inflight sync.WaitGroup
}

// NewClient — конструктор клиента.
func NewClient(opts Options, log ports.Logger) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return &Client{
		endpoint: opts.Endpoint,
		http:     httpClient,
		log:      log,
		retry:    newRetryPolicy(opts.RetryAttempts, opts.RetryInitial, opts.RetryMax),
		pages:    memory.NewLRUCacheTTL("pages", opts.PageCapacity, opts.PageTTL, (*domain.Page).Clone),
		watches:  make(map[uint64]*watch),
	}
}

// request — тело GraphQL-запроса.
type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// response — тело GraphQL-ответа.
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors"`
}

// Error — элемент массива errors ответа.
type Error struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// ResponseError — сервер вернул непустой errors.
type ResponseError struct {
	Errors []Error
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, gqlErr := range e.Errors {
		msgs = append(msgs, gqlErr.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// StatusError — HTTP-ответ с кодом вне 2xx.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("graphql: unexpected http status %d", e.Code)
}

// query — чтение с повторами на сетевых ошибках и 5xx.
func (c *Client) query(ctx context.Context, query string, vars map[string]any, out any) error {
	return c.retry.do(ctx, func() error {
		return c.do(ctx, query, vars, out)
	})
}

// mutate — мутации не повторяются: createOrder не идемпотентна.
func (c *Client) mutate(ctx context.Context, query string, vars map[string]any, out any) error {
	return c.do(ctx, query, vars, out)
}

// do — одна попытка: POST {query, variables}, разбор {data, errors}.
// Если errors непуст, data всё равно разбирается в out, а возвращается *ResponseError.
func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("graphql: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("graphql: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("graphql: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("graphql: read response: %w", err)
	}

	var parsed response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &StatusError{Code: resp.StatusCode}
		}
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if out != nil && len(parsed.Data) > 0 && string(parsed.Data) != "null" {
		if err := json.Unmarshal(parsed.Data, out); err != nil {
			return fmt.Errorf("%w: data: %w", ErrMalformedResponse, err)
		}
	}
	if len(parsed.Errors) > 0 {
		return &ResponseError{Errors: parsed.Errors}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}

// Close — отменяет все подписки и ждёт завершения фоновых запросов.
func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	watches := make([]*watch, 0, len(c.watches))
	for _, w := range c.watches {
		watches = append(watches, w)
	}
	c.mu.Unlock()

	for _, w := range watches {
		w.Cancel()
	}
	c.inflight.Wait()
}
