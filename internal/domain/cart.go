package domain

// CartLine — строка корзины.
type CartLine struct {
	ProductID string `json:"id"`
	Amount    int    `json:"amount"`
}
