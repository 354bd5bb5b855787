package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// OrderReadService — сервис чтения заказов (каноническая ссылка на заказ).
type OrderReadService interface {
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
}
