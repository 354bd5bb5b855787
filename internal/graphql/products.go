package graphql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

const productsQuery = `query ($pagination: Pagination, $category: String) {
  products(pagination: $pagination, category: $category) {
    data { id name image description price amount }
    cursor { after count }
  }
}`

const createProductMutation = `mutation ($product: ProductInput!) {
  createProduct(product: $product) { id name }
}`

const editProductMutation = `mutation ($id: ID!, $product: ProductEditInput!) {
  editProduct(id: $id, product: $product) { id name }
}`

// fetchProducts — один сетевой запрос страницы каталога (filter на сервер не уходит).
func (c *Client) fetchProducts(ctx context.Context, vars domain.QueryVariables) (*domain.Page, error) {
	var data struct {
		Products *domain.Page `json:"products"`
	}
	if err := c.query(ctx, productsQuery, vars.Normalize().Remote(), &data); err != nil {
		return nil, err
	}
	if data.Products == nil {
		return &domain.Page{}, nil
	}
	return data.Products, nil
}

// FetchMore — дозагрузка страницы, всегда по сети; склейку выполняет вызывающий.
func (c *Client) FetchMore(ctx context.Context, vars domain.QueryVariables) (*domain.Page, error) {
	page, err := c.fetchProducts(ctx, vars)
	if err != nil {
		metrics.ListingFetches.WithLabelValues("more", "error").Inc()
		return nil, fmt.Errorf("fetch more products: %w", err)
	}
	metrics.ListingFetches.WithLabelValues("more", "ok").Inc()
	return page, nil
}

// CreateProduct — мутация createProduct; после успеха живые запросы перезапрашиваются.
func (c *Client) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.ProductRef, error) {
	var data struct {
		CreateProduct *domain.ProductRef `json:"createProduct"`
	}
	vars := map[string]any{"product": productInputVariables(in)}
	if err := c.mutate(ctx, createProductMutation, vars, &data); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	c.Invalidate(ctx)
	return data.CreateProduct, nil
}

// EditProduct — мутация editProduct; отправляются только заданные поля.
func (c *Client) EditProduct(ctx context.Context, id string, in domain.ProductEditInput) (*domain.ProductRef, error) {
	var data struct {
		EditProduct *domain.ProductRef `json:"editProduct"`
	}
	vars := map[string]any{"id": id, "product": productEditVariables(in)}
	if err := c.mutate(ctx, editProductMutation, vars, &data); err != nil {
		return nil, fmt.Errorf("edit product %s: %w", id, err)
	}
	c.Invalidate(ctx)
	return data.EditProduct, nil
}

// productInputVariables — price уходит числом, а не строкой.
func productInputVariables(in domain.ProductInput) map[string]any {
	product := map[string]any{
		"name":   in.Name,
		"price":  json.Number(in.Price.String()),
		"amount": in.Amount,
	}
	if in.Description != "" {
		product["description"] = in.Description
	}
	if in.Category != "" {
		product["category"] = in.Category
	}
	if in.ImageURL != "" {
		product["imageUrl"] = in.ImageURL
	}
	return product
}

func productEditVariables(in domain.ProductEditInput) map[string]any {
	product := make(map[string]any)
	if in.Name != nil {
		product["name"] = *in.Name
	}
	if in.Description != nil {
		product["description"] = *in.Description
	}
	if in.Category != nil {
		product["category"] = *in.Category
	}
	if in.Price != nil {
		product["price"] = json.Number(in.Price.String())
	}
	if in.Amount != nil {
		product["amount"] = *in.Amount
	}
	if in.ImageURL != nil {
		product["imageUrl"] = *in.ImageURL
	}
	return product
}
