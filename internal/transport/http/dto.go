package rest

import (
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/listing"
)

type sessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// productsResponse — отфильтрованное представление листинга.
type productsResponse struct {
	Items     []domain.Product      `json:"items"`
	Cursor    *domain.Cursor        `json:"cursor,omitempty"`
	Total     int                   `json:"total"`
	Loading   bool                  `json:"loading"`
	Error     string                `json:"error,omitempty"`
	Variables domain.QueryVariables `json:"variables"`
}

func newProductsResponse(v listing.View) productsResponse {
	resp := productsResponse{
		Items:     v.Items,
		Cursor:    v.Cursor,
		Total:     v.Total,
		Loading:   v.Loading,
		Variables: v.Variables,
	}
	if resp.Items == nil {
		resp.Items = []domain.Product{}
	}
	if v.Err != nil {
		resp.Error = v.Err.Error()
	}
	return resp
}

type cartResponse struct {
	Lines []domain.CartLine `json:"lines"`
	Count int               `json:"count"`
}

func newCartResponse(lines []domain.CartLine) cartResponse {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	total := 0
	for _, l := range lines {
		total += l.Amount
	}
	return cartResponse{Lines: lines, Count: total}
}

type addItemRequest struct {
	ID     string `json:"id"`
	Amount int    `json:"amount"`
}

type setAmountRequest struct {
	Amount *int `json:"amount"`
}

type orderResponse struct {
	Order      *domain.Order `json:"order"`
	OrderURL   string        `json:"orderUrl"`
	HandoffURL string        `json:"handoffUrl"`
}
