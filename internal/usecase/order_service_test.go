package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports/mocks"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/golang/mock/gomock"
)

const orderID = "order-1"

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestGetOrder_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)
	cache := mocks.NewMockOrderCache(ctrl)

	o := &domain.Order{ID: orderID}
	cache.EXPECT().Get(gomock.Any(), orderID).Return(o, true)

	svc := usecase.NewOrderService(repo, cache, noopLogger{})
	got, err := svc.GetOrder(context.Background(), orderID)
	if err != nil || got == nil || got.ID != orderID {
		t.Fatalf("expected hit, got err=%v, order=%+v", err, got)
	}
}

func TestGetOrder_CacheMiss_FetchAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)
	cache := mocks.NewMockOrderCache(ctrl)

	o := &domain.Order{ID: orderID}
	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), orderID).Return(nil, false),
		repo.EXPECT().GetByID(gomock.Any(), orderID).Return(o, nil),
		cache.EXPECT().Set(gomock.Any(), o).Return(nil),
	)

	svc := usecase.NewOrderService(repo, cache, noopLogger{})
	got, err := svc.GetOrder(context.Background(), orderID)
	if err != nil || got != o {
		t.Fatalf("expected db order, got err=%v, order=%+v", err, got)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)
	cache := mocks.NewMockOrderCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), "missing").Return(nil, false)
	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)
	// Set не ожидается: отсутствие не кэшируется

	svc := usecase.NewOrderService(repo, cache, noopLogger{})
	got, err := svc.GetOrder(context.Background(), "missing")
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", got, err)
	}
}

func TestGetOrder_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)
	cache := mocks.NewMockOrderCache(ctrl)

	boom := errors.New("db down")
	cache.EXPECT().Get(gomock.Any(), orderID).Return(nil, false)
	repo.EXPECT().GetByID(gomock.Any(), orderID).Return(nil, boom)

	svc := usecase.NewOrderService(repo, cache, noopLogger{})
	if _, err := svc.GetOrder(context.Background(), orderID); !errors.Is(err, boom) {
		t.Fatalf("want repo error, got %v", err)
	}
}

func TestOrderPlaced_SavesThenCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)
	cache := mocks.NewMockOrderCache(ctrl)

	o := &domain.Order{ID: orderID, Products: []domain.OrderProduct{{ID: "p", Amount: 1}}}
	gomock.InOrder(
		repo.EXPECT().Save(gomock.Any(), o).Return(nil),
		cache.EXPECT().Set(gomock.Any(), o).Return(nil),
	)

	svc := usecase.NewOrderService(repo, cache, noopLogger{})
	if err := svc.OrderPlaced(context.Background(), o); err != nil {
		t.Fatalf("OrderPlaced: %v", err)
	}
}

func TestOrderPlaced_SaveErrorSkipsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)
	cache := mocks.NewMockOrderCache(ctrl)

	boom := errors.New("tx failed")
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(boom)

	svc := usecase.NewOrderService(repo, cache, noopLogger{})
	if err := svc.OrderPlaced(context.Background(), &domain.Order{ID: orderID}); !errors.Is(err, boom) {
		t.Fatalf("want save error, got %v", err)
	}
	if err := svc.OrderPlaced(context.Background(), nil); err == nil {
		t.Fatalf("nil order must be rejected")
	}
}

func TestRecentOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)
	cache := mocks.NewMockOrderCache(ctrl)

	list := []*domain.Order{{ID: "b"}, {ID: "a"}}
	repo.EXPECT().LastN(gomock.Any(), 2).Return(list, nil)

	svc := usecase.NewOrderService(repo, cache, noopLogger{})
	got, err := svc.RecentOrders(context.Background(), 2)
	if err != nil || len(got) != 2 || got[0].ID != "b" {
		t.Fatalf("unexpected result: %v %v", got, err)
	}

	got, err = svc.RecentOrders(context.Background(), 0)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("n=0 must return empty list without repo call, got %v %v", got, err)
	}
}

func TestWarmUpCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)
	cache := mocks.NewMockOrderCache(ctrl)

	list := []*domain.Order{{ID: "1"}, {ID: "2"}}
	repo.EXPECT().LastN(gomock.Any(), 10).Return(list, nil)
	cache.EXPECT().WarmUp(gomock.Any(), list).Return(nil)

	svc := usecase.NewOrderService(repo, cache, noopLogger{})
	if err := svc.WarmUpCache(context.Background(), 10); err != nil {
		t.Fatalf("WarmUpCache: %v", err)
	}
	// n <= 0 — без обращений к repo
	if err := svc.WarmUpCache(context.Background(), 0); err != nil {
		t.Fatalf("WarmUpCache(0): %v", err)
	}
}
