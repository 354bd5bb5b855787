package domain

import "time"

// Location — точка на карте.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CheckoutContext — данные покупателя для оформления заказа (поставляются извне).
type CheckoutContext struct {
	CustomerName  string     `json:"customerName"`
	OrderDateTime *time.Time `json:"orderDateTime,omitempty"`
	MapCenter     *Location  `json:"mapCenter,omitempty"`
}

// OrderProduct — позиция заказа.
type OrderProduct struct {
	ID     string `json:"id"`
	Amount int    `json:"amount"`
}

// OrderRequest — аргументы мутации createOrder.
type OrderRequest struct {
	Products  []OrderProduct `json:"products"`
	Client    string         `json:"client"`
	Location  Location       `json:"location"`
	OrderDate time.Time      `json:"orderDate"`
}

// Order — созданный заказ; после создания не меняется.
type Order struct {
	ID        string         `json:"id"`
	Products  []OrderProduct `json:"products"`
	Client    string         `json:"client"`
	Location  Location       `json:"location"`
	OrderDate time.Time      `json:"orderDate"`
}

// Clone — глубокая копия заказа.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clonedOrder := *o
	if o.Products != nil {
		clonedOrder.Products = append([]OrderProduct(nil), o.Products...)
	}
	return &clonedOrder
}
