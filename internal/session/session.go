package session

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/cart"
	"github.com/Gunvolt24/storefront/internal/checkout"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/listing"
)

// Session — состояние одного покупателя.
type Session struct {
	ID        string
	CreatedAt time.Time
	Listing   *listing.Controller
	Cart      *cart.Store
	Checkout  *checkout.Flow

	mu       sync.RWMutex
	customer domain.CheckoutContext
}

// SetCheckoutContext — данные покупателя заменяются целиком.
func (s *Session) SetCheckoutContext(cc domain.CheckoutContext) {
	cc = copyCheckout(cc)
	s.mu.Lock()
	s.customer = cc
	s.mu.Unlock()
}

// CheckoutContext — копия, изменения которой не видны сессии.
func (s *Session) CheckoutContext() domain.CheckoutContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCheckout(s.customer)
}

// Submit — оформление заказа из корзины с текущим контекстом покупателя.
func (s *Session) Submit(ctx context.Context) (*domain.Order, error) {
	return s.Checkout.Submit(ctx, s.CheckoutContext())
}

func (s *Session) close() {
	if s.Listing != nil {
		s.Listing.Close()
	}
}

func copyCheckout(cc domain.CheckoutContext) domain.CheckoutContext {
	if cc.OrderDateTime != nil {
		t := *cc.OrderDateTime
		cc.OrderDateTime = &t
	}
	if cc.MapCenter != nil {
		loc := *cc.MapCenter
		cc.MapCenter = &loc
	}
	return cc
}
