package domain

// Category is the fixed top-level pricing grouping of the catalogue.
type Category string

const (
	CategoryMens   Category = "Mens"
	CategoryLadies Category = "Ladies"
	CategoryKids   Category = "Kids"
)

// CategoryOrder is the display order used everywhere an order is rendered.
// It never follows catalogue insertion order.
var CategoryOrder = []Category{CategoryMens, CategoryLadies, CategoryKids}

func (c Category) Valid() bool {
	switch c {
	case CategoryMens, CategoryLadies, CategoryKids:
		return true
	}
	return false
}

// PriceEntry holds the two catalogue-supplied prices for one size.
// SalePrice is authoritative for order totals; nothing is ever derived from it.
type PriceEntry struct {
	ListPrice Money `json:"listPrice"`
	SalePrice Money `json:"salePrice"`
}

// PricingMap maps Category -> size label -> prices.
type PricingMap map[Category]map[string]PriceEntry

// Variant is an alternate colorway of a product type. Variants carry no
// pricing of their own; the owning product's pricing map is shared.
type Variant struct {
	Color        string `json:"color"`
	Page         int    `json:"page"`
	Number       string `json:"number"`
	PDFReference string `json:"pdf"`
}

// Product is the canonical catalogue record after ingestion. Records arrive
// in two shapes (flat color or a variants list); the catalog index normalizes
// both into this one form, so Variants being empty means the product's own
// Color/Page/Number fields are the single colorway.
type Product struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	Color        string     `json:"color"`
	Number       string     `json:"number"`
	Page         int        `json:"page"`
	PDFReference string     `json:"pdf"`
	Pricing      PricingMap `json:"pricing"`
	Variants     []Variant  `json:"variants,omitempty"`
}

func (p *Product) HasVariants() bool { return len(p.Variants) > 0 }

// Resolved is the join of a product with one chosen colorway. Pricing always
// comes from the product; for varianted products page/number/pdf come from
// the matched variant.
type Resolved struct {
	Product      *Product
	Color        string
	Page         int
	Number       string
	PDFReference string
}

func (r Resolved) Pricing() PricingMap { return r.Product.Pricing }

// Ref reduces a resolved product to the identity embedded in order output.
func (r Resolved) Ref() ProductRef {
	return ProductRef{
		ID:           r.Product.ID,
		Type:         r.Product.Type,
		Color:        r.Color,
		Number:       r.Number,
		Page:         r.Page,
		PDFReference: r.PDFReference,
	}
}

// ProductRef identifies the ordered product inside a summary or message.
type ProductRef struct {
	ID           string `json:"id,omitempty"`
	Type         string `json:"type"`
	Color        string `json:"color"`
	Number       string `json:"number"`
	Page         int    `json:"page"`
	PDFReference string `json:"pdf,omitempty"`
}

// SizeRow is one row of the size/price table rendered for a category.
type SizeRow struct {
	Size      string `json:"size"`
	ListPrice Money  `json:"listPrice"`
	SalePrice Money  `json:"salePrice"`
}
