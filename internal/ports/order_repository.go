package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// OrderRepository — архив оформленных заказов.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	LastN(ctx context.Context, n int) ([]*domain.Order, error)
}
