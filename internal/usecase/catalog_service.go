package usecase

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

// CatalogService — реакция на внешние изменения каталога.
type CatalogService struct {
	queries ports.QueryInvalidator
	log     ports.Logger
}

func NewCatalogService(queries ports.QueryInvalidator, log ports.Logger) *CatalogService {
	return &CatalogService{queries: queries, log: log}
}

// HandleProductEvent — строгий разбор события; валидное событие сбрасывает кэш
// страниц и перезапрашивает живые подписки листинга.
// Невалидный payload — validate.ErrInvalidEvent.
func (s *CatalogService) HandleProductEvent(ctx context.Context, raw []byte) error {
	ev, err := validate.EventFromJSON(raw)
	if err != nil {
		s.log.Warnf(ctx, "product event rejected: %v", err)
		return err
	}
	s.queries.Invalidate(ctx)
	s.log.Infof(ctx, "product event applied product=%s kind=%s", ev.ProductID, ev.Kind)
	return nil
}
