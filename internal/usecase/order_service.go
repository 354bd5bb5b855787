package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

var (
	_ ports.OrderReadService = (*OrderService)(nil)
	_ ports.OrderObserver    = (*OrderService)(nil)
)

// OrderService — архив оформленных заказов и чтение по канонической ссылке.
type OrderService struct {
	repo  ports.OrderRepository
	cache ports.OrderCache
	log   ports.Logger
}

func NewOrderService(repo ports.OrderRepository, cache ports.OrderCache, log ports.Logger) *OrderService {
	return &OrderService{repo: repo, cache: cache, log: log}
}

// GetOrder — сначала кэш, при промахе БД с записью в кэш.
// (nil, nil), если заказа нет.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if order, found := s.cache.Get(ctx, id); found {
		s.log.Debugf(ctx, "cache hit for order=%s", id)
		return order, nil
	}

	start := time.Now()
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed order=%s err=%v", id, err)
		return nil, err
	}
	if order != nil {
		if setErr := s.cache.Set(ctx, order); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed order=%s err=%v", id, setErr)
		}
	}
	s.log.Infof(ctx, "db fetch order=%s found=%t took=%s", id, order != nil, time.Since(start))
	return order, nil
}

// OrderPlaced — сохраняет только что оформленный заказ (наблюдатель оформления).
func (s *OrderService) OrderPlaced(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return fmt.Errorf("archive order: empty order")
	}
	if err := s.repo.Save(ctx, order); err != nil {
		s.log.Errorf(ctx, "repo.Save failed order=%s err=%v", order.ID, err)
		return fmt.Errorf("archive order %s: %w", order.ID, err)
	}
	if err := s.cache.Set(ctx, order); err != nil {
		s.log.Warnf(ctx, "cache.Set failed order=%s err=%v", order.ID, err)
	}
	s.log.Infof(ctx, "order archived id=%s products=%d", order.ID, len(order.Products))
	return nil
}

// RecentOrders — последние n заказов по дате оформления.
func (s *OrderService) RecentOrders(ctx context.Context, n int) ([]*domain.Order, error) {
	if n <= 0 {
		return []*domain.Order{}, nil
	}
	list, err := s.repo.LastN(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	return list, nil
}

// WarmUpCache — прогрев кэша последними n заказами. n <= 0 — пропуск без ошибки.
func (s *OrderService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastN failed n=%d err=%v", n, err)
		return err
	}
	if err := s.cache.WarmUp(ctx, list); err != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", err)
	}
	s.log.Infof(ctx, "cache warmed with %d orders in %s", len(list), time.Since(start))
	return nil
}
