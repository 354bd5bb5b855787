// Пакет listing — контроллер списка товаров: переменные запроса,
// подписка на живой запрос, курсорная дозагрузка и локальный фильтр.
package listing

import (
	"context"
	"errors"
	"sync"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// ErrClosed — контроллер утилизирован.
var ErrClosed = errors.New("listing controller closed")

// Option — настройка контроллера.
type Option func(*Controller)

// WithOnChange — хук на каждое изменение состояния. Вызовы упорядочены;
// из хука можно читать State/View, но нельзя вызывать SetVariables/FetchMore.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller — владелец переменных и состояния листинга.
// Ответы устаревших подписок и дозагрузок отбрасываются по номеру поколения.
type Controller struct {
	querier  ports.ProductQuerier
	log      ports.Logger
	ctx      context.Context
	stop     context.CancelFunc
	onChange func(State)

	mu       sync.Mutex
	vars     domain.QueryVariables
	state    State
	sub      ports.Subscription
	gen      uint64
	fetching bool
	closed   bool

	notifyMu sync.Mutex
}

// New — создаёт контроллер и сразу подписывается с {pagination: {limit: 20}} + initial.
// ctx задаёт время жизни подписок (обычно — время жизни сессии).
func New(ctx context.Context, querier ports.ProductQuerier, log ports.Logger, initial domain.VariablesPatch, opts ...Option) *Controller {
	lifetime, stop := context.WithCancel(ctx)
	c := &Controller{
		querier: querier,
		log:     log,
		ctx:     lifetime,
		stop:    stop,
		vars:    domain.DefaultVariables().Merge(initial),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.mu.Lock()
	old, gen := c.resetLocked()
	vars := c.vars
	c.mu.Unlock()

	c.subscribe(old, gen, vars)
	return c
}

// SetVariables — слияние частичных переменных.
// Изменение пагинации или категории: отмена текущей подписки, сброс состояния
// в {data: nil, loading: true} и новая подписка.
// Изменение только filter: пересчёт локального представления без запроса.
func (c *Controller) SetVariables(patch domain.VariablesPatch) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.vars = c.vars.Merge(patch)

	if patch.Pagination == nil && patch.Category == nil {
		c.notifyLocked()
		return nil
	}

	old, gen := c.resetLocked()
	vars := c.vars
	c.notifyLocked()

	c.subscribe(old, gen, vars)
	return nil
}

// FetchMore — дозагрузка следующей страницы.
// No-op, если курсора нет или дозагрузка уже идёт. Ошибка дозагрузки не возвращается,
// а попадает в State.Err; накопленные данные сохраняются.
func (c *Controller) FetchMore(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	after, ok := c.state.Data.NextAfter()
	if !ok || c.fetching {
		c.mu.Unlock()
		return nil
	}
	c.fetching = true
	c.state.Loading = true
	gen := c.gen
	vars := c.vars.WithAfter(after)
	c.notifyLocked()

	page, err := c.querier.FetchMore(ctx, vars)

	c.mu.Lock()
	if gen != c.gen || c.closed {
		c.mu.Unlock()
		metrics.ListingFetches.WithLabelValues("more", "discarded").Inc()
		return nil
	}
	c.fetching = false
	c.state.Loading = false
	if err != nil {
		c.state.Err = err
		c.log.Warnf(ctx, "fetch more failed after=%s: %v", after, err)
	} else {
		c.state.Data = c.state.Data.AppendPage(page)
		c.state.Err = nil
	}
	c.notifyLocked()
	return nil
}

// Cancel — отписка от текущей подписки; идемпотентно.
// Ответы, пришедшие после Cancel, не применяются.
func (c *Controller) Cancel() {
	c.mu.Lock()
	sub := c.sub
	c.sub = nil
	c.gen++
	wasFetching := c.fetching
	c.fetching = false
	if wasFetching {
		// брошенная дозагрузка не должна оставить вечный Loading
		c.state.Loading = false
		c.notifyLocked()
	} else {
		c.mu.Unlock()
	}

	if sub != nil {
		sub.Cancel()
	}
}

// Close — утилизация: отмена подписки, дальнейшие SetVariables/FetchMore возвращают ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.Cancel()
	c.stop()
}

// State — снимок состояния (копия).
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Variables — текущие переменные.
func (c *Controller) Variables() domain.QueryVariables {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vars
}

// View — накопленные данные с применённым локальным фильтром.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Loading:   c.state.Loading,
		Err:       c.state.Err,
		Variables: c.vars,
	}
	if c.state.Data != nil {
		v.Items = filterItems(c.state.Data.Items, c.vars.Filter)
		v.Total = len(c.state.Data.Items)
		if c.state.Data.Cursor != nil {
			cur := *c.state.Data.Cursor
			v.Cursor = &cur
		}
	}
	return v
}

// resetLocked — новое поколение: старая подписка изымается, состояние сбрасывается.
func (c *Controller) resetLocked() (ports.Subscription, uint64) {
	old := c.sub
	c.sub = nil
	c.gen++
	c.fetching = false
	c.state = State{Loading: true}
	return old, c.gen
}

// subscribe — старая подписка снимается до установки новой.
func (c *Controller) subscribe(old ports.Subscription, gen uint64, vars domain.QueryVariables) {
	if old != nil {
		old.Cancel()
	}

	sub := c.querier.Watch(c.ctx, vars, func(ev ports.QueryEvent) { c.onEvent(gen, ev) })

	c.mu.Lock()
	if gen != c.gen || c.closed {
		c.mu.Unlock()
		sub.Cancel()
		return
	}
	c.sub = sub
	c.mu.Unlock()
}

// onEvent — событие подписки: данные заменяются, ошибка сохраняет прежние данные.
func (c *Controller) onEvent(gen uint64, ev ports.QueryEvent) {
	c.mu.Lock()
	if gen != c.gen || c.closed {
		c.mu.Unlock()
		return
	}
	c.state.Loading = false
	if ev.Err != nil {
		c.state.Err = ev.Err
		c.log.Warnf(c.ctx, "products query failed: %v", ev.Err)
	} else {
		c.state.Data = ev.Page.Clone()
		c.state.Err = nil
	}
	c.notifyLocked()
}

// notifyLocked — снимает c.mu и вызывает хук с снимком состояния.
// notifyMu берётся до отпускания c.mu, поэтому хуки видят изменения в порядке применения.
func (c *Controller) notifyLocked() {
	if c.onChange == nil {
		c.mu.Unlock()
		return
	}
	snapshot := c.state.clone()
	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()
	c.onChange(snapshot)
}
