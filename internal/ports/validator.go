package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// ProductValidator — проверка данных формы товара.
type ProductValidator interface {
	ValidateCreate(ctx context.Context, in *domain.ProductInput) error
	ValidateEdit(ctx context.Context, in *domain.ProductEditInput) error
}
