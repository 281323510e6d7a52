package whatsapp

import (
	"net/url"
	"strings"
	"testing"
)

func TestLinkRoundTripsMessageText(t *testing.T) {
	g := NewGateway("918866244409")
	text := "✅ GROUP ORDER CONFIRMATION\n\n🧥 Product: Lakhnavi Kurta – No. 101 – Maroon"
	link := g.Link(text)

	if !strings.HasPrefix(link, "https://wa.me/918866244409?") {
		t.Fatalf("link = %q", link)
	}
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := u.Query().Get("text"); got != text {
		t.Fatalf("text did not survive escaping:\n%q\n%q", got, text)
	}
}

func TestLinkToOverridesDefaultNumber(t *testing.T) {
	g := NewGateway("918866244409")
	if link := g.LinkTo("hi", "911234567890"); !strings.HasPrefix(link, "https://wa.me/911234567890?") {
		t.Fatalf("link = %q", link)
	}
	if link := g.LinkTo("hi", ""); !strings.HasPrefix(link, "https://wa.me/918866244409?") {
		t.Fatalf("fallback link = %q", link)
	}
}

func TestLinkWithoutAnyNumber(t *testing.T) {
	g := NewGateway("")
	if link := g.Link("hi"); !strings.HasPrefix(link, "https://wa.me/?") {
		t.Fatalf("link = %q", link)
	}
}
