package domain

import "github.com/shopspring/decimal"

// Product — товар витрины в том виде, в каком его отдаёт удалённый API.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Amount      int             `json:"amount"` // доступный остаток
	CategoryID  string          `json:"categoryId,omitempty"`
}

// ProductInput — данные формы создания товара.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Amount      int             `json:"amount"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

// ProductEditInput — частичное редактирование: nil-поля не отправляются.
type ProductEditInput struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Amount      *int             `json:"amount,omitempty"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
}

// IsEmpty — в правке нет ни одного поля.
func (in *ProductEditInput) IsEmpty() bool {
	return in == nil || (in.Name == nil && in.Description == nil && in.Category == nil &&
		in.Price == nil && in.Amount == nil && in.ImageURL == nil)
}

// ProductRef — краткий ответ мутаций createProduct/editProduct.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
