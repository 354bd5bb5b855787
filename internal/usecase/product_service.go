package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

// ProductService — форма создания/редактирования товара.
// Перезапрос листингов после мутации выполняет клиент API.
type ProductService struct {
	products  ports.ProductMutator
	validator ports.ProductValidator
	log       ports.Logger
}

func NewProductService(products ports.ProductMutator, validator ports.ProductValidator, log ports.Logger) *ProductService {
	return &ProductService{products: products, validator: validator, log: log}
}

// Create — name, price и amount обязательны.
func (s *ProductService) Create(ctx context.Context, in domain.ProductInput) (*domain.ProductRef, error) {
	if err := s.validator.ValidateCreate(ctx, &in); err != nil {
		return nil, err
	}
	ref, err := s.products.CreateProduct(ctx, in)
	if err != nil {
		s.log.Errorf(ctx, "create product failed name=%q: %v", in.Name, err)
		return nil, err
	}
	if ref != nil {
		s.log.Infof(ctx, "product created id=%s", ref.ID)
	}
	return ref, nil
}

// Edit — отправляются только заданные поля; пустая правка ничего не делает (nil, nil).
func (s *ProductService) Edit(ctx context.Context, id string, in domain.ProductEditInput) (*domain.ProductRef, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: product id is required", validate.ErrInvalidProduct)
	}
	if in.IsEmpty() {
		s.log.Debugf(ctx, "edit product skipped id=%s: nothing to change", id)
		return nil, nil
	}
	if err := s.validator.ValidateEdit(ctx, &in); err != nil {
		return nil, err
	}
	ref, err := s.products.EditProduct(ctx, id, in)
	if err != nil {
		s.log.Errorf(ctx, "edit product failed id=%s: %v", id, err)
		return nil, err
	}
	s.log.Infof(ctx, "product edited id=%s", id)
	return ref, nil
}
