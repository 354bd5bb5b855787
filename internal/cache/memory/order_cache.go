package memory

import (
	"context"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

var _ ports.OrderCache = (*OrderCache)(nil)

// OrderCache — кэш оформленных заказов поверх LRUCacheTTL.
type OrderCache struct {
	lru *LRUCacheTTL[*domain.Order]
}

func NewOrderCache(capacity int, ttl time.Duration) *OrderCache {
	return &OrderCache{lru: NewLRUCacheTTL("orders", capacity, ttl, (*domain.Order).Clone)}
}

func (c *OrderCache) Get(_ context.Context, id string) (*domain.Order, bool) {
	return c.lru.Get(id)
}

func (c *OrderCache) Set(_ context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return nil
	}
	c.lru.Set(order.ID, order)
	return nil
}

func (c *OrderCache) WarmUp(ctx context.Context, orders []*domain.Order) error {
	for _, order := range orders {
		if err := c.Set(ctx, order); err != nil {
			return err
		}
	}
	return nil
}
