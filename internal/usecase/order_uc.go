package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/catalog"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/selection"
)

// OrderUC aggregates a selection into an order summary and composes the
// outbound order message. Every method is pure over its inputs.
type OrderUC struct{}

// Build validates the selection and aggregates it into an OrderSummary.
// Categories come out in the fixed Mens, Ladies, Kids order with sizes in
// resolver order, so the structured and flattened views always agree.
func (uc *OrderUC) Build(st *selection.State) (*domain.OrderSummary, error) {
	resolved, ok := st.Current()
	if !ok {
		return nil, domain.ErrNoProductSelected
	}
	quantities := st.Quantities()

	summary := &domain.OrderSummary{Product: resolved.Ref()}
	for _, cat := range domain.CategoryOrder {
		var items []domain.OrderLineItem
		for _, row := range catalog.SizesFor(resolved, cat) {
			qty := quantities[selection.LineKey{Category: cat, Size: row.Size}]
			if qty <= 0 {
				continue
			}
			items = append(items, domain.OrderLineItem{
				Category:  cat,
				Size:      row.Size,
				Quantity:  qty,
				ListPrice: row.ListPrice,
				SalePrice: row.SalePrice,
				LineTotal: domain.Money(int64(qty)) * row.SalePrice,
			})
		}
		if len(items) == 0 {
			continue
		}
		summary.Blocks = append(summary.Blocks, domain.CategoryBlock{Category: cat, Items: items})
		for _, it := range items {
			summary.TotalPieces += it.Quantity
			summary.TotalAmount += it.LineTotal
		}
	}
	// Quantities keyed to sizes the current product no longer carries were
	// skipped above; if nothing survived, the shopper effectively entered
	// no quantities.
	if len(summary.Blocks) == 0 {
		return nil, domain.ErrNoItemsSelected
	}
	return summary, nil
}

// Compose merges a built summary with the customer fields into the final
// order message. Deterministic for a fixed now; URL escaping for transport
// belongs to the messaging adapter, not here.
func (uc *OrderUC) Compose(summary *domain.OrderSummary, customer domain.CustomerFields, now time.Time) (string, error) {
	if summary == nil || len(summary.Blocks) == 0 {
		return "", domain.ErrNoItemsSelected
	}
	if err := customer.Validate(); err != nil {
		return "", err
	}

	file := strings.TrimSpace(summary.Product.PDFReference)
	if file == "" {
		file = "N/A"
	}

	var b strings.Builder
	b.WriteString("✅ GROUP ORDER CONFIRMATION\n\n")
	fmt.Fprintf(&b, "🧥 Product: %s Kurta – No. %s – %s\n", summary.Product.Type, summary.Product.Number, summary.Product.Color)
	fmt.Fprintf(&b, "📄 Catalogue: Page %d | File: %s\n\n", summary.Product.Page, file)

	for _, line := range summary.CategoryLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "👥 Group Name: %s\n", customer.GroupName)
	fmt.Fprintf(&b, "🏠 Delivery Address: %s\n", customer.Address)
	fmt.Fprintf(&b, "📞 Contact Number: %s\n\n", customer.ContactNumber)

	fmt.Fprintf(&b, "🗓️ Order Date: %s\n", now.Format("02 January 2006"))
	for _, line := range summary.TotalLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\n---\n\n")
	b.WriteString("📦 Thanks for your group order!\n")
	b.WriteString("We'll confirm availability and reach out shortly. 🙏")
	return b.String(), nil
}

// OrderTemplate renders the canned enquiry message for one product card:
// the same placeholder blocks the shopper fills in by hand, listing the
// sizes the product actually prices.
func (uc *OrderUC) OrderTemplate(r domain.Resolved) string {
	var b strings.Builder
	b.WriteString("Hi! I want to place a group order for:\n\n")
	fmt.Fprintf(&b, "🧥 Product: %s Kurta – %s (%s)\n", r.Product.Type, r.Number, r.Color)
	for _, cat := range catalog.Categories(r) {
		fmt.Fprintf(&b, "\n%s:\n", cat.Heading())
		for _, row := range catalog.SizesFor(r, cat) {
			fmt.Fprintf(&b, "[%s – Qty]\n", row.Size)
		}
	}
	b.WriteString("\n👥 Group Name:\n🏠 Address:\n📞 Contact Number:")
	return b.String()
}
