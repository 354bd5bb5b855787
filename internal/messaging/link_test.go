package messaging

import (
	"errors"
	"net/url"
	"testing"

	"github.com/Gunvolt24/storefront/internal/domain"
)

func TestDeepLink_ContainsEncodedOrderText(t *testing.T) {
	t.Parallel()

	b, err := NewLinkBuilder(LinkOptions{
		BaseURL:    "https://api.whatsapp.com/send",
		Phone:      "5491100000000",
		Origin:     "https://shop.example/",
		OrderRoute: "order",
	})
	if err != nil {
		t.Fatalf("NewLinkBuilder: %v", err)
	}

	link := b.DeepLink(&domain.Order{ID: "o-42"})

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if u.Scheme != "https" || u.Host != "api.whatsapp.com" || u.Path != "/send" {
		t.Fatalf("unexpected base: %s", link)
	}
	q := u.Query()
	if q.Get("phone") != "5491100000000" {
		t.Fatalf("phone: %q", q.Get("phone"))
	}
	want := "Hola\nEsta es mi orden de compra:\nhttps://shop.example/order/o-42"
	if q.Get("text") != want {
		t.Fatalf("text:\nwant %q\ngot  %q", want, q.Get("text"))
	}
}

func TestDeepLink_NoPhoneKeepsBaseQuery(t *testing.T) {
	t.Parallel()

	b, err := NewLinkBuilder(LinkOptions{
		BaseURL:    "https://wa.example/send?app=web",
		Origin:     "http://localhost:8080",
		OrderRoute: "/order/",
	})
	if err != nil {
		t.Fatalf("NewLinkBuilder: %v", err)
	}

	u, err := url.Parse(b.DeepLink(&domain.Order{ID: "a b"}))
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	q := u.Query()
	if q.Has("phone") {
		t.Fatalf("phone must be omitted when empty")
	}
	if q.Get("app") != "web" {
		t.Fatalf("base query must be preserved: %s", u.RawQuery)
	}
	if got := b.OrderURL("a b"); got != "http://localhost:8080/order/a%20b" {
		t.Fatalf("order url: %s", got)
	}
}

func TestNewLinkBuilder_InvalidBase(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"", "not a url", "/relative/path", "://bad"} {
		if _, err := NewLinkBuilder(LinkOptions{BaseURL: base}); !errors.Is(err, ErrInvalidBaseURL) {
			t.Fatalf("base %q: want ErrInvalidBaseURL, got %v", base, err)
		}
	}
}
