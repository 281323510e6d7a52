// Package whatsapp builds the wa.me links the shopper follows to send a
// composed order. It never sends anything itself, and it is the only place
// that URL-escapes message text.
package whatsapp

import "net/url"

type Gateway struct {
	phone string
}

// NewGateway takes the default destination number in international format
// without the plus sign (e.g. "918866244409"). Empty means the shopper picks
// the recipient in WhatsApp.
func NewGateway(phone string) *Gateway {
	return &Gateway{phone: phone}
}

// Link wraps a plain-text message into a navigable wa.me URL.
func (g *Gateway) Link(text string) string {
	return g.LinkTo(text, g.phone)
}

// LinkTo targets a specific number, falling back to the gateway default.
func (g *Gateway) LinkTo(text, phone string) string {
	if phone == "" {
		phone = g.phone
	}
	q := url.Values{}
	q.Set("text", text)
	return "https://wa.me/" + phone + "?" + q.Encode()
}
