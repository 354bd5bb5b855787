// Пакет checkout — оформление заказа из корзины и контекста покупателя.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

var (
	// ErrPreconditionNotMet — не хватает данных покупателя или корзина пуста; запрос не отправлялся.
	ErrPreconditionNotMet = errors.New("checkout: precondition not met")
	// ErrSubmission — сервер вернул ошибки или не вернул заказ; корзина не тронута.
	ErrSubmission = errors.New("checkout: order submission failed")
)

const defaultObserverTimeout = 10 * time.Second

// cartStore — то, что оформлению нужно от корзины.
type cartStore interface {
	Lines() []domain.CartLine
	RemoveProducts()
}

// Flow — оформление заказа. Одновременно выполняется не более одной отправки.
type Flow struct {
	cart            cartStore
	orders          ports.OrderCreator
	observers       []ports.OrderObserver
	log             ports.Logger
	observerTimeout time.Duration

	submitMu sync.Mutex
	wg       sync.WaitGroup
}

// NewFlow — observers получают копию заказа после успешного оформления, асинхронно.
func NewFlow(cart cartStore, orders ports.OrderCreator, log ports.Logger, observers ...ports.OrderObserver) *Flow {
	return &Flow{
		cart:            cart,
		orders:          orders,
		observers:       observers,
		log:             log,
		observerTimeout: defaultObserverTimeout,
	}
}

// Submit — проверяет контекст покупателя, собирает заказ из корзины и отправляет мутацию.
// Успех: корзина очищается, возвращается созданный заказ.
func (f *Flow) Submit(ctx context.Context, cc domain.CheckoutContext) (*domain.Order, error) {
	f.submitMu.Lock()
	defer f.submitMu.Unlock()

	ctx, span := telemetry.Tracer().Start(ctx, "checkout.Submit")
	defer span.End()

	if err := validatePreconditions(cc); err != nil {
		metrics.OrdersFailed.WithLabelValues("precondition").Inc()
		return nil, err
	}
	lines := f.cart.Lines()
	if len(lines) == 0 {
		metrics.OrdersFailed.WithLabelValues("precondition").Inc()
		return nil, fmt.Errorf("%w: cart is empty", ErrPreconditionNotMet)
	}

	req := buildRequest(lines, cc)
	span.SetAttributes(attribute.Int("cart.lines", len(lines)))
	order, err := f.orders.CreateOrder(ctx, req)
	if err != nil {
		span.RecordError(err)
		metrics.OrdersFailed.WithLabelValues("remote").Inc()
		f.log.Warnf(ctx, "create order failed lines=%d: %v", len(lines), err)
		return nil, fmt.Errorf("%w: %w", ErrSubmission, err)
	}
	if order == nil {
		metrics.OrdersFailed.WithLabelValues("empty").Inc()
		f.log.Warnf(ctx, "create order returned no order lines=%d", len(lines))
		return nil, fmt.Errorf("%w: no order returned", ErrSubmission)
	}

	f.cart.RemoveProducts()
	span.SetAttributes(attribute.String("order.id", order.ID))
	metrics.OrdersSubmitted.Inc()
	f.log.Infof(ctx, "order created id=%s lines=%d", order.ID, len(lines))

	f.notify(ctx, order)
	return order, nil
}

// Wait — дождаться завершения фоновых уведомлений (graceful shutdown).
func (f *Flow) Wait() {
	f.wg.Wait()
}

func validatePreconditions(cc domain.CheckoutContext) error {
	switch {
	case cc.MapCenter == nil:
		return fmt.Errorf("%w: map center is required", ErrPreconditionNotMet)
	case cc.OrderDateTime == nil || cc.OrderDateTime.IsZero():
		return fmt.Errorf("%w: order date time is required", ErrPreconditionNotMet)
	case cc.CustomerName == "":
		return fmt.Errorf("%w: customer name is required", ErrPreconditionNotMet)
	}
	return nil
}

func buildRequest(lines []domain.CartLine, cc domain.CheckoutContext) domain.OrderRequest {
	products := make([]domain.OrderProduct, 0, len(lines))
	for _, l := range lines {
		products = append(products, domain.OrderProduct{ID: l.ProductID, Amount: l.Amount})
	}
	return domain.OrderRequest{
		Products:  products,
		Client:    cc.CustomerName,
		Location:  *cc.MapCenter,
		OrderDate: *cc.OrderDateTime,
	}
}

// notify — каждому наблюдателю своя копия и свой таймаут; ошибки только логируются.
func (f *Flow) notify(ctx context.Context, order *domain.Order) {
	base := context.WithoutCancel(ctx)
	for _, obs := range f.observers {
		f.wg.Add(1)
		go func(obs ports.OrderObserver, order *domain.Order) {
			defer f.wg.Done()
			octx, cancel := context.WithTimeout(base, f.observerTimeout)
			defer cancel()
			if err := obs.OrderPlaced(octx, order); err != nil {
				f.log.Warnf(octx, "order observer failed id=%s: %v", order.ID, err)
			}
		}(obs, order.Clone())
	}
}
