package rest

import (
	"fmt"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/cart"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/session"
	"github.com/gin-gonic/gin"
)

func (h *Handler) getCart(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newCartResponse(s.Cart.Lines()))
}

// addCartItem — если товар есть в загруженном листинге, добавить сверх остатка нельзя.
func (h *Handler) addCartItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, "add cart item", fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	if p, found := listedProduct(s, req.ID); found {
		if rest := s.Cart.MaxAddable(p); req.Amount > rest {
			c.JSON(http.StatusConflict, gin.H{"error": "amount exceeds stock", "maxAddable": rest})
			return
		}
	}
	if err := s.Cart.AddProduct(domain.CartLine{ProductID: req.ID, Amount: req.Amount}); err != nil {
		h.writeError(c, "add cart item", err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(s.Cart.Lines()))
}

// setCartItem — значение поля количества: ниже 0 — 0 (строка удаляется),
// выше остатка известного товара — остаток.
func (h *Handler) setCartItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req setAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount == nil {
		h.writeError(c, "set cart item", fmt.Errorf("%w: amount is required", errBadRequest))
		return
	}

	id := c.Param("pid")
	n := *req.Amount
	if p, found := listedProduct(s, id); found {
		ceiling := p.Amount
		if ceiling <= 0 {
			ceiling = cart.UnknownStockCeiling
		}
		n = min(n, ceiling)
	}
	if err := s.Cart.SetAmount(id, n); err != nil {
		h.writeError(c, "set cart item", err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(s.Cart.Lines()))
}

func (h *Handler) clearCart(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.Cart.RemoveProducts()
	c.Status(http.StatusNoContent)
}

// listedProduct — товар из уже загруженных страниц листинга сессии.
func listedProduct(s *session.Session, id string) (domain.Product, bool) {
	st := s.Listing.State()
	if st.Data == nil {
		return domain.Product{}, false
	}
	for _, p := range st.Data.Items {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
