// Пакет session — явные хранилища на сессию витрины: листинг, корзина,
// оформление и контекст покупателя.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/cart"
	"github.com/Gunvolt24/storefront/internal/checkout"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/listing"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrTooMany  = errors.New("too many open sessions")
	ErrClosed   = errors.New("session registry closed")
)

// Deps — общие для всех сессий зависимости.
type Deps struct {
	Querier   ports.ProductQuerier
	Orders    ports.OrderCreator
	Observers []ports.OrderObserver
	Log       ports.Logger
}

// Registry — открытые сессии по id. Потокобезопасен.
type Registry struct {
	ctx     context.Context
	deps    Deps
	maxOpen int
	newID   func() string

	mu       sync.RWMutex
	sessions map[string]*Session
	closed   bool
}

// NewRegistry — ctx ограничивает время жизни подписок всех сессий; maxOpen <= 0 — без лимита.
func NewRegistry(ctx context.Context, deps Deps, maxOpen int) *Registry {
	return &Registry{
		ctx:      ctx,
		deps:     deps,
		maxOpen:  maxOpen,
		newID:    uuid.NewString,
		sessions: make(map[string]*Session),
	}
}

// Open — новая сессия с листингом, подписанным на {limit: 20} + initial.
func (r *Registry) Open(initial domain.VariablesPatch) (*Session, error) {
	if err := r.admit(); err != nil {
		return nil, err
	}

	id := r.newID()
	sctx := ctxmeta.WithSessionID(r.ctx, id)
	s := &Session{ID: id, CreatedAt: time.Now().UTC(), Cart: cart.NewStore()}
	s.Checkout = checkout.NewFlow(s.Cart, r.deps.Orders, r.deps.Log, r.deps.Observers...)
	s.Listing = listing.New(sctx, r.deps.Querier, r.deps.Log, initial,
		listing.WithOnChange(func(st listing.State) {
			if st.Data != nil && s.Cart.ClampToStock(st.Data.Items) {
				r.deps.Log.Infof(sctx, "cart clamped to stock")
			}
		}),
	)

	r.mu.Lock()
	if err := r.admitLocked(); err != nil {
		r.mu.Unlock()
		s.close()
		return nil, err
	}
	r.sessions[id] = s
	r.mu.Unlock()

	metrics.ActiveSessions.Inc()
	r.deps.Log.Infof(sctx, "session opened")
	return s, nil
}

// admit — быстрый отказ до создания подписки.
func (r *Registry) admit() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.admitLocked()
}

func (r *Registry) admitLocked() error {
	if r.closed {
		return ErrClosed
	}
	if r.maxOpen > 0 && len(r.sessions) >= r.maxOpen {
		return ErrTooMany
	}
	return nil
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Close — утилизирует листинг сессии (подписка отменяется) и забывает сессию.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	s.close()
	metrics.ActiveSessions.Dec()
	r.deps.Log.Infof(ctxmeta.WithSessionID(r.ctx, id), "session closed")
	return nil
}

// CloseAll — при остановке: закрывает все сессии и ждёт фоновые уведомления оформлений.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	r.closed = true
	all := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range all {
		s.close()
		metrics.ActiveSessions.Dec()
	}
	for _, s := range all {
		s.Checkout.Wait()
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
