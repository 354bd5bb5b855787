package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// ProductFromJSON — строгое декодирование формы товара и её валидация.
func ProductFromJSON(ctx context.Context, validator ports.ProductValidator, raw []byte) (*domain.ProductInput, error) {
	var in domain.ProductInput
	if err := decodeStrict(raw, &in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}
	if err := validator.ValidateCreate(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// EventFromJSON — строгое декодирование события каталога.
func EventFromJSON(raw []byte) (*domain.ProductEvent, error) {
	var ev domain.ProductEvent
	if err := decodeStrict(raw, &ev); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	if err := ValidateEvent(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("invalid json: trailing data")
	}
	return nil
}
