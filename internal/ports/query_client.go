package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// QueryEvent — очередное событие живого запроса: данные либо ошибка.
type QueryEvent struct {
	Page *domain.Page
	Err  error
}

// Subscription — дескриптор подписки. После Cancel доставка событий гарантированно прекращается.
type Subscription interface {
	Cancel()
}

// ProductQuerier — чтение каталога через удалённый API.
type ProductQuerier interface {
	// Watch — подписка на результат запроса; observer вызывается до Cancel.
	Watch(ctx context.Context, vars domain.QueryVariables, observer func(QueryEvent)) Subscription

	// FetchMore — дозагрузка страницы (всегда по сети); склейку выполняет вызывающий.
	FetchMore(ctx context.Context, vars domain.QueryVariables) (*domain.Page, error)
}

// OrderCreator — мутация createOrder.
// (nil, nil) означает, что сервер не вернул ни заказа, ни ошибок.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
}

// ProductMutator — мутации createProduct/editProduct.
type ProductMutator interface {
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.ProductRef, error)
	EditProduct(ctx context.Context, id string, in domain.ProductEditInput) (*domain.ProductRef, error)
}

// QueryInvalidator — сброс кэша запросов и перезапрос всех активных подписок.
type QueryInvalidator interface {
	Invalidate(ctx context.Context)
}
