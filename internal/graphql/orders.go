package graphql

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
)

const createOrderMutation = `mutation ($products: [ProductOrderInput!]!, $client: String!, $location: LocationInput!, $orderDate: DateTime!) {
  createOrder(products: $products, client: $client, location: $location, orderDate: $orderDate) {
    id
    products { id amount }
    client
    location { lat lng }
    orderDate
  }
}`

// CreateOrder — мутация createOrder. Повторов нет.
// (nil, nil) — сервер не вернул ни заказа, ни ошибок; решение принимает вызывающий.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	products := make([]map[string]any, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, map[string]any{"id": p.ID, "amount": p.Amount})
	}
	vars := map[string]any{
		"products":  products,
		"client":    req.Client,
		"location":  map[string]any{"lat": req.Location.Lat, "lng": req.Location.Lng},
		"orderDate": req.OrderDate.UTC().Format(time.RFC3339),
	}

	var data struct {
		CreateOrder *domain.Order `json:"createOrder"`
	}
	if err := c.mutate(ctx, createOrderMutation, vars, &data); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return data.CreateOrder, nil
}
