package graphql

import (
	"context"
	"sync"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// watch — живой запрос каталога: cache-first при подписке, network-only при Invalidate.
type watch struct {
	id       uint64
	client   *Client
	vars     domain.QueryVariables
	observer func(ports.QueryEvent)
	ctx      context.Context
	cancel   context.CancelFunc

	mu        sync.Mutex
	cancelled bool
	seq       uint64 // номер последнего запущенного запроса

	// deliverMu упорядочивает вызовы observer; Cancel его не берёт.
	deliverMu sync.Mutex
}

// Watch — подписка на результат запроса products.
// Observer вызывается из фоновой горутины; после возврата Cancel новые вызовы не начинаются.
// Подписка живёт до Cancel, отмены ctx или Close клиента.
func (c *Client) Watch(ctx context.Context, vars domain.QueryVariables, observer func(ports.QueryEvent)) ports.Subscription {
	wctx, cancel := context.WithCancel(ctx)
	w := &watch{
		client:   c,
		vars:     vars.Normalize(),
		observer: observer,
		ctx:      wctx,
		cancel:   cancel,
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		cancel()
		go w.deliver(0, ports.QueryEvent{Err: ErrClosed})
		return w
	}
	c.nextID++
	w.id = c.nextID
	c.watches[w.id] = w
	c.mu.Unlock()

	context.AfterFunc(wctx, w.Cancel)
	w.refresh(true)
	return w
}

// Cancel — снять подписку; идемпотентно.
func (w *watch) Cancel() {
	w.mu.Lock()
	if w.cancelled {
		w.mu.Unlock()
		return
	}
	w.cancelled = true
	w.mu.Unlock()

	w.cancel()
	w.client.removeWatch(w.id)
}

// refresh — запускает новый запрос; ответы более ранних запросов этой подписки отбрасываются.
func (w *watch) refresh(cacheFirst bool) {
	w.mu.Lock()
	if w.cancelled {
		w.mu.Unlock()
		return
	}
	w.seq++
	seq := w.seq
	w.mu.Unlock()

	c := w.client
	key := w.vars.Key()

	if cacheFirst {
		if page, ok := c.pages.Get(key); ok {
			metrics.ListingFetches.WithLabelValues("watch", "cache").Inc()
			c.spawn(func() { w.deliver(seq, ports.QueryEvent{Page: page}) })
			return
		}
	}

	c.spawn(func() {
		page, err := c.fetchProducts(w.ctx, w.vars)
		if err != nil {
			if w.ctx.Err() != nil {
				return
			}
			metrics.ListingFetches.WithLabelValues("watch", "error").Inc()
			c.log.Warnf(w.ctx, "watch products failed key=%s: %v", key, err)
			w.deliver(seq, ports.QueryEvent{Err: err})
			return
		}
		metrics.ListingFetches.WithLabelValues("watch", "ok").Inc()
		c.pages.Set(key, page)
		w.deliver(seq, ports.QueryEvent{Page: page})
	})
}

func (w *watch) deliver(seq uint64, ev ports.QueryEvent) {
	w.deliverMu.Lock()
	defer w.deliverMu.Unlock()

	w.mu.Lock()
	stale := w.cancelled || seq != w.seq
	w.mu.Unlock()
	if stale {
		metrics.ListingFetches.WithLabelValues("watch", "discarded").Inc()
		return
	}
	w.observer(ev)
}

// Invalidate — сброс кэша страниц и перезапрос всех живых подписок
// (аналог refetchQueries после мутаций и событий каталога).
func (c *Client) Invalidate(ctx context.Context) {
	c.pages.Purge()

	c.mu.Lock()
	watches := make([]*watch, 0, len(c.watches))
	for _, w := range c.watches {
		watches = append(watches, w)
	}
	c.mu.Unlock()

	for _, w := range watches {
		w.refresh(false)
	}
	c.log.Debugf(ctx, "query cache invalidated, refetching watches=%d", len(watches))
}

// spawn — фоновая задача, учитываемая Close. После Close задачи не запускаются.
func (c *Client) spawn(fn func()) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.inflight.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.inflight.Done()
		fn()
	}()
}

func (c *Client) removeWatch(id uint64) {
	c.mu.Lock()
	delete(c.watches, id)
	c.mu.Unlock()
}

// activeWatches — число живых подписок.
func (c *Client) activeWatches() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.watches)
}
