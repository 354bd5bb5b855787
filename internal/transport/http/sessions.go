package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/session"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// openSession — тело необязательно: начальные переменные листинга.
func (h *Handler) openSession(c *gin.Context) {
	var initial domain.VariablesPatch
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&initial); err != nil && !errors.Is(err, io.EOF) {
			h.writeError(c, "open session", fmt.Errorf("%w: %v", errBadRequest, err))
			return
		}
	}
	if err := h.checkPatch(initial); err != nil {
		h.writeError(c, "open session", err)
		return
	}

	s, err := h.deps.Sessions.Open(initial)
	if err != nil {
		h.writeError(c, "open session", err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{ID: s.ID, CreatedAt: s.CreatedAt})
}

func (h *Handler) closeSession(c *gin.Context) {
	if err := h.deps.Sessions.Close(c.Param(httpx.SessionParam)); err != nil {
		h.writeError(c, "close session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// session — сессия из пути; при ошибке ответ уже записан.
func (h *Handler) session(c *gin.Context) (*session.Session, bool) {
	s, err := h.deps.Sessions.Get(c.Param(httpx.SessionParam))
	if err != nil {
		h.writeError(c, "get session", err)
		return nil, false
	}
	return s, true
}

func (h *Handler) getProducts(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newProductsResponse(s.Listing.View()))
}

// setVariables — частичное обновление; смена limit/category перезапускает запрос.
func (h *Handler) setVariables(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var patch domain.VariablesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.writeError(c, "set variables", fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	if err := h.checkPatch(patch); err != nil {
		h.writeError(c, "set variables", err)
		return
	}
	if err := s.Listing.SetVariables(patch); err != nil {
		h.writeError(c, "set variables", err)
		return
	}
	c.JSON(http.StatusOK, newProductsResponse(s.Listing.View()))
}

// fetchMore — ждёт дозагрузку; ошибка дозагрузки видна в поле error.
func (h *Handler) fetchMore(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := s.Listing.FetchMore(ctx); err != nil {
		h.writeError(c, "fetch more", err)
		return
	}
	c.JSON(http.StatusOK, newProductsResponse(s.Listing.View()))
}

// checkPatch — limit в [1, MaxLimit].
func (h *Handler) checkPatch(p domain.VariablesPatch) error {
	if p.Pagination == nil || p.Pagination.Limit == nil {
		return nil
	}
	if l := *p.Pagination.Limit; l < 1 || l > h.limits.MaxLimit {
		return fmt.Errorf("%w: limit must be in [1, %d]", errBadRequest, h.limits.MaxLimit)
	}
	return nil
}
