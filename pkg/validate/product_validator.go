package validate

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// Проверка, что ProductValidator удовлетворяет интерфейсу ProductValidator.
var _ ports.ProductValidator = (*ProductValidator)(nil)

var (
	// ErrInvalidProduct — базовая (sentinel error) ошибка валидации формы товара.
	ErrInvalidProduct = errors.New("product validation failed")
	// ErrInvalidEvent — некорректное событие каталога.
	ErrInvalidEvent = errors.New("product event validation failed")
)

// ProductValidator — валидация формы создания/редактирования товара.
type ProductValidator struct{}

// NewProductValidator — конструктор ProductValidator.
// Возвращает ErrInvalidProduct (с обёрнутой причиной) при любой проблеме.
func NewProductValidator() *ProductValidator { return &ProductValidator{} }

// ValidateCreate — name, price и amount обязательны; price > 0, amount > 0.
func (v *ProductValidator) ValidateCreate(_ context.Context, in *domain.ProductInput) error {
	if in == nil {
		return fmt.Errorf("%w: товар не может быть nil", ErrInvalidProduct)
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidProduct)
	}
	if !in.Price.IsPositive() {
		return fmt.Errorf("%w: price должен быть больше нуля", ErrInvalidProduct)
	}
	if in.Amount <= 0 {
		return fmt.Errorf("%w: amount должен быть больше нуля", ErrInvalidProduct)
	}
	return validateImageURL(in.ImageURL)
}

// ValidateEdit — проверяются только заданные поля. Остаток можно обнулить.
func (v *ProductValidator) ValidateEdit(_ context.Context, in *domain.ProductEditInput) error {
	if in == nil {
		return fmt.Errorf("%w: правка не может быть nil", ErrInvalidProduct)
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("%w: name не может быть пустым", ErrInvalidProduct)
	}
	if in.Price != nil && !in.Price.IsPositive() {
		return fmt.Errorf("%w: price должен быть больше нуля", ErrInvalidProduct)
	}
	if in.Amount != nil && *in.Amount < 0 {
		return fmt.Errorf("%w: amount должен быть неотрицательным", ErrInvalidProduct)
	}
	if in.ImageURL != nil {
		return validateImageURL(*in.ImageURL)
	}
	return nil
}

func validateImageURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: imageUrl некорректен", ErrInvalidProduct)
	}
	return nil
}

// ValidateEvent — событие каталога: product_id обязателен, kind из известного набора.
func ValidateEvent(ev *domain.ProductEvent) error {
	if ev == nil {
		return fmt.Errorf("%w: событие не может быть nil", ErrInvalidEvent)
	}
	if strings.TrimSpace(ev.ProductID) == "" {
		return fmt.Errorf("%w: product_id обязателен", ErrInvalidEvent)
	}
	switch ev.Kind {
	case domain.ProductCreated, domain.ProductUpdated, domain.ProductDeleted:
		return nil
	default:
		return fmt.Errorf("%w: неизвестный kind %q", ErrInvalidEvent, ev.Kind)
	}
}
