package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// OrderObserver — получатель побочного канала после успешного оформления заказа.
// Получает копию заказа и не может повлиять на результат оформления.
type OrderObserver interface {
	OrderPlaced(ctx context.Context, order *domain.Order) error
}
