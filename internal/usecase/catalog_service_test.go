package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/storefront/internal/ports/mocks"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/golang/mock/gomock"
)

func TestHandleProductEvent_InvalidatesQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := mocks.NewMockQueryInvalidator(ctrl)
	queries.EXPECT().Invalidate(gomock.Any()).Times(1)

	svc := usecase.NewCatalogService(queries, noopLogger{})
	if err := svc.HandleProductEvent(context.Background(), []byte(`{"product_id":"p-1","kind":"updated"}`)); err != nil {
		t.Fatalf("HandleProductEvent: %v", err)
	}
}

func TestHandleProductEvent_Invalid(t *testing.T) {
	t.Parallel()

	payloads := map[string]string{
		"not json":      `not-a-json`,
		"unknown field": `{"product_id":"p","kind":"updated","extra":1}`,
		"unknown kind":  `{"product_id":"p","kind":"renamed"}`,
		"missing id":    `{"kind":"deleted"}`,
		"trailing data": `{"product_id":"p","kind":"created"} {}`,
	}
	for name, raw := range payloads {
		raw := raw
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			queries := mocks.NewMockQueryInvalidator(ctrl)
			queries.EXPECT().Invalidate(gomock.Any()).Times(0)

			svc := usecase.NewCatalogService(queries, noopLogger{})
			if err := svc.HandleProductEvent(context.Background(), []byte(raw)); !errors.Is(err, validate.ErrInvalidEvent) {
				t.Fatalf("want ErrInvalidEvent, got %v", err)
			}
		})
	}
}
