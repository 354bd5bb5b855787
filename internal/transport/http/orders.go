package rest

import (
	"fmt"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// setCheckout — контекст покупателя заменяется целиком.
func (h *Handler) setCheckout(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var cc domain.CheckoutContext
	if err := c.ShouldBindJSON(&cc); err != nil {
		h.writeError(c, "set checkout", fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	s.SetCheckoutContext(cc)
	c.JSON(http.StatusOK, s.CheckoutContext())
}

// submitOrder — оформление; в ответе заказ, его каноническая ссылка и deep link мессенджера.
func (h *Handler) submitOrder(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := s.Submit(ctx)
	if err != nil {
		h.writeError(c, "submit order", err)
		return
	}
	c.JSON(http.StatusCreated, orderResponse{
		Order:      order,
		OrderURL:   h.deps.Links.OrderURL(order.ID),
		HandoffURL: h.deps.Links.DeepLink(order),
	})
}

// getOrderByID — каноническая ссылка на заказ.
func (h *Handler) getOrderByID(c *gin.Context) {
	id := c.Param("id")
	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.deps.Orders.GetOrder(ctx, id)
	if err != nil {
		h.writeError(c, "get order", err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) recentOrders(c *gin.Context) {
	limit := httpx.ParseLimit(c, h.limits.DefaultLimit, h.limits.MaxLimit)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.deps.Orders.RecentOrders(ctx, limit)
	if err != nil {
		h.writeError(c, "recent orders", err)
		return
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}
