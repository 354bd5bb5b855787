package rest

import (
	"fmt"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) createProduct(c *gin.Context) {
	var in domain.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.writeError(c, "create product", fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	ref, err := h.deps.Products.Create(ctx, in)
	if err != nil {
		h.writeError(c, "create product", err)
		return
	}
	c.JSON(http.StatusCreated, ref)
}

// editProduct — пустая правка отвечает 204 без обращения к API.
func (h *Handler) editProduct(c *gin.Context) {
	var in domain.ProductEditInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.writeError(c, "edit product", fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	ref, err := h.deps.Products.Edit(ctx, c.Param("id"), in)
	if err != nil {
		h.writeError(c, "edit product", err)
		return
	}
	if ref == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ref)
}
