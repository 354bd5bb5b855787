package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/cart"
	"github.com/Gunvolt24/storefront/internal/checkout"
	"github.com/Gunvolt24/storefront/internal/graphql"
	"github.com/Gunvolt24/storefront/internal/listing"
	"github.com/Gunvolt24/storefront/internal/session"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/gin-gonic/gin"
)

var errBadRequest = errors.New("bad request")

// statusFor — HTTP-код для ошибки прикладного слоя.
func statusFor(err error) int {
	var respErr *graphql.ResponseError
	var statusErr *graphql.StatusError
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrTooMany), errors.Is(err, session.ErrClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, listing.ErrClosed), errors.Is(err, checkout.ErrPreconditionNotMet):
		return http.StatusConflict
	case errors.Is(err, cart.ErrInvalidAmount), errors.Is(err, cart.ErrEmptyProductID),
		errors.Is(err, validate.ErrInvalidProduct):
		return http.StatusUnprocessableEntity
	case errors.Is(err, checkout.ErrSubmission),
		errors.As(err, &respErr), errors.As(err, &statusErr),
		errors.Is(err, graphql.ErrMalformedResponse):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError — 5xx логируются как ошибки, тело не раскрывает внутренности.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Errorf(c.Request.Context(), "%s failed status=%d: %v", op, status, err)
	}
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.JSON(status, gin.H{"error": msg})
}
