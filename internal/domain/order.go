package domain

import "fmt"

// OrderLineItem is one (category, size, quantity) selection with its
// computed subtotal. Derived, never stored.
type OrderLineItem struct {
	Category  Category `json:"category"`
	Size      string   `json:"size"`
	Quantity  int      `json:"quantity"`
	ListPrice Money    `json:"listPrice"`
	SalePrice Money    `json:"salePrice"`
	LineTotal Money    `json:"lineTotal"`
}

// CategoryBlock groups the line items of one category, in resolver size order.
type CategoryBlock struct {
	Category Category        `json:"category"`
	Items    []OrderLineItem `json:"items"`
}

// OrderSummary is the aggregated result of one Build call. Blocks follow the
// fixed Mens, Ladies, Kids order. The flattened text views below are
// projections of this same data, never a second computation.
type OrderSummary struct {
	Product     ProductRef      `json:"product"`
	Blocks      []CategoryBlock `json:"blocks"`
	TotalPieces int             `json:"totalPieces"`
	TotalAmount Money           `json:"totalAmount"`
}

var categoryHeadings = map[Category]string{
	CategoryMens:   "👨‍🦱 MEN'S SIZES",
	CategoryLadies: "👩 LADIES SIZES",
	CategoryKids:   "👶 KIDS SIZES",
}

// Heading returns the message heading for a category block.
func (c Category) Heading() string { return categoryHeadings[c] }

// CategoryLines flattens the per-category blocks into message lines.
func (s *OrderSummary) CategoryLines() []string {
	var lines []string
	for i, b := range s.Blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, b.Category.Heading(), "")
		for _, it := range b.Items {
			lines = append(lines, fmt.Sprintf("%s – Qty: %d – %s each", it.Size, it.Quantity, it.SalePrice))
		}
	}
	return lines
}

// TotalLines renders the running totals.
func (s *OrderSummary) TotalLines() []string {
	return []string{
		fmt.Sprintf("🧾 Total Pieces: %d", s.TotalPieces),
		fmt.Sprintf("💰 Total Approx Amount: %s", s.TotalAmount),
	}
}

// TextLines is the complete flattened view: category blocks followed by the
// totals, enumerated in exactly the order the structured blocks hold.
func (s *OrderSummary) TextLines() []string {
	lines := s.CategoryLines()
	lines = append(lines, "")
	lines = append(lines, s.TotalLines()...)
	return lines
}
