// Пакет messaging — передача оформленного заказа в мессенджер.
package messaging

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
)

var ErrInvalidBaseURL = errors.New("messaging: invalid base url")

const (
	greeting  = "Hola\n"
	orderLine = "Esta es mi orden de compra:\n"
)

// LinkOptions — параметры ссылки; Phone необязателен.
type LinkOptions struct {
	BaseURL    string
	Phone      string
	Origin     string
	OrderRoute string
}

// LinkBuilder — строит deep link на мессенджер с текстом заказа.
type LinkBuilder struct {
	base   *url.URL
	phone  string
	origin string
	route  string
}

func NewLinkBuilder(opts LinkOptions) (*LinkBuilder, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, opts.BaseURL)
	}
	return &LinkBuilder{
		base:   base,
		phone:  opts.Phone,
		origin: strings.TrimRight(opts.Origin, "/"),
		route:  "/" + strings.Trim(opts.OrderRoute, "/"),
	}, nil
}

// OrderURL — каноническая ссылка на заказ: <origin><route>/<id>.
func (b *LinkBuilder) OrderURL(id string) string {
	return b.origin + b.route + "/" + url.PathEscape(id)
}

// Text — человекочитаемое сообщение о заказе.
func (b *LinkBuilder) Text(order *domain.Order) string {
	return greeting + orderLine + b.OrderURL(order.ID)
}

// DeepLink — base url + закодированные phone и text.
// Параметры, уже заданные в base url, сохраняются.
func (b *LinkBuilder) DeepLink(order *domain.Order) string {
	u := *b.base
	q := u.Query()
	if b.phone != "" {
		q.Set("phone", b.phone)
	}
	q.Set("text", b.Text(order))
	u.RawQuery = q.Encode()
	return u.String()
}
