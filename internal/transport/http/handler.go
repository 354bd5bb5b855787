package rest

import (
	"context"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/messaging"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/session"
	"github.com/gin-gonic/gin"
)

// sessionStore — реестр сессий витрины.
type sessionStore interface {
	Open(initial domain.VariablesPatch) (*session.Session, error)
	Get(id string) (*session.Session, error)
	Close(id string) error
}

// orderReader — чтение архива заказов.
type orderReader interface {
	ports.OrderReadService
	RecentOrders(ctx context.Context, n int) ([]*domain.Order, error)
}

// productAdmin — форма товара.
type productAdmin interface {
	Create(ctx context.Context, in domain.ProductInput) (*domain.ProductRef, error)
	Edit(ctx context.Context, id string, in domain.ProductEditInput) (*domain.ProductRef, error)
}

// Deps — зависимости HTTP-слоя.
type Deps struct {
	Sessions sessionStore
	Orders   orderReader
	Products productAdmin
	Links    *messaging.LinkBuilder
}

// Limits — границы limit для листинга и списка последних заказов.
type Limits struct {
	DefaultLimit int
	MaxLimit     int
}

type Handler struct {
	deps    Deps
	log     ports.Logger
	timeout time.Duration
	limits  Limits
}

// NewHandler — timeout <= 0 означает «без своего таймаута» (только контекст запроса).
func NewHandler(deps Deps, log ports.Logger, timeout time.Duration, limits Limits) *Handler {
	if limits.DefaultLimit <= 0 {
		limits.DefaultLimit = domain.DefaultLimit
	}
	if limits.MaxLimit < limits.DefaultLimit {
		limits.MaxLimit = limits.DefaultLimit
	}
	return &Handler{deps: deps, log: log, timeout: timeout, limits: limits}
}

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
