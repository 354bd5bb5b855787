//go:build integration

package testutil

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/google/uuid"
)

// MakeOrder — уникальный оформленный заказ с одной позицией.
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	o := domain.Order{
		ID:        "ord-" + uuid.NewString(),
		Products:  []domain.OrderProduct{{ID: "prod-" + uuid.NewString()[:8], Amount: 1}},
		Client:    "Ana",
		Location:  domain.Location{Lat: -34.6037, Lng: -58.3816},
		OrderDate: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithProducts — n позиций с количествами 1..n.
func WithProducts(n int) func(*domain.Order) {
	return func(o *domain.Order) {
		o.Products = o.Products[:0]
		for i := 1; i <= n; i++ {
			o.Products = append(o.Products, domain.OrderProduct{ID: fmt.Sprintf("prod-%d", i), Amount: i})
		}
	}
}

// ProductEventJSON — сериализованное событие каталога.
func ProductEventJSON(productID string, kind domain.ProductEventKind) []byte {
	raw, _ := json.Marshal(domain.ProductEvent{ProductID: productID, Kind: kind})
	return raw
}
