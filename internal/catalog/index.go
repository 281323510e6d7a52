package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
)

// Index holds the normalized catalogue with the lookup structures every
// surface shares. Built once after the startup fetch, read-only afterwards.
type Index struct {
	products []*domain.Product
	types    []string
	byType   map[string][]*domain.Product
	byID     map[string]*domain.Product
}

// Parse decodes a catalogue document and builds the index. Broken JSON is a
// load failure; structurally valid JSON with the wrong shape is a schema
// failure, so the two surface as distinct error states.
func Parse(data []byte) (*Index, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		if !json.Valid(data) {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLoad, err)
		}
		return nil, fmt.Errorf("%w: document is not an array", domain.ErrMalformedCatalog)
	}
	products := make([]*domain.Product, 0, len(rows))
	for i, row := range rows {
		p := &domain.Product{}
		if err := json.Unmarshal(row, p); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", domain.ErrMalformedCatalog, i, err)
		}
		products = append(products, p)
	}
	return Load(products)
}

// Load validates and normalizes the raw records into an Index.
func Load(products []*domain.Product) (*Index, error) {
	ix := &Index{
		byType: map[string][]*domain.Product{},
		byID:   map[string]*domain.Product{},
	}
	for i, p := range products {
		if p == nil {
			return nil, fmt.Errorf("%w: record %d is empty", domain.ErrMalformedCatalog, i)
		}
		if strings.TrimSpace(p.Type) == "" {
			return nil, fmt.Errorf("%w: record %d has no type", domain.ErrMalformedCatalog, i)
		}
		if strings.TrimSpace(p.Color) == "" && !p.HasVariants() {
			return nil, fmt.Errorf("%w: record %d (%s) has neither color nor variants", domain.ErrMalformedCatalog, i, p.Type)
		}
		if p.Page < 0 {
			return nil, fmt.Errorf("%w: record %d (%s) has negative page", domain.ErrMalformedCatalog, i, p.Type)
		}
		normalize(p)

		key := strings.ToLower(p.Type)
		if _, seen := ix.byType[key]; !seen {
			ix.types = append(ix.types, p.Type)
		}
		ix.byType[key] = append(ix.byType[key], p)
		if p.ID != "" {
			ix.byID[p.ID] = p
		}
		ix.products = append(ix.products, p)
	}
	return ix, nil
}

// normalize fills the gaps the two source shapes leave: a missing page means
// page 1, and variants inherit the product-level fields they omit.
func normalize(p *domain.Product) {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Pricing == nil {
		p.Pricing = domain.PricingMap{}
	}
	for i := range p.Variants {
		v := &p.Variants[i]
		if v.Page <= 0 {
			v.Page = p.Page
		}
		if v.Number == "" {
			v.Number = p.Number
		}
		if v.PDFReference == "" {
			v.PDFReference = p.PDFReference
		}
	}
}

// Products returns every normalized record in catalogue order.
func (ix *Index) Products() []*domain.Product {
	out := make([]*domain.Product, len(ix.products))
	copy(out, ix.products)
	return out
}

// Len reports how many records the index holds.
func (ix *Index) Len() int { return len(ix.products) }

// Types returns the deduplicated type names in first-seen order.
func (ix *Index) Types() []string {
	out := make([]string, len(ix.types))
	copy(out, ix.types)
	return out
}

// ColorsForType returns the deduplicated colors of a type in first-seen
// order, drawn from the variants list when one exists.
func (ix *Index) ColorsForType(typ string) []string {
	var colors []string
	seen := map[string]struct{}{}
	add := func(c string) {
		c = strings.TrimSpace(c)
		if c == "" {
			return
		}
		k := strings.ToLower(c)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		colors = append(colors, c)
	}
	for _, p := range ix.byType[strings.ToLower(typ)] {
		if p.HasVariants() {
			for _, v := range p.Variants {
				add(v.Color)
			}
			continue
		}
		add(p.Color)
	}
	return colors
}

// Resolve joins a type and color into one colorway record. Absent
// combinations are a normal outcome of browsing, so the miss is reported by
// the bool, never by an error.
func (ix *Index) Resolve(typ, color string) (domain.Resolved, bool) {
	for _, p := range ix.byType[strings.ToLower(typ)] {
		if p.HasVariants() {
			for _, v := range p.Variants {
				if strings.EqualFold(strings.TrimSpace(v.Color), strings.TrimSpace(color)) {
					return domain.Resolved{
						Product:      p,
						Color:        v.Color,
						Page:         v.Page,
						Number:       v.Number,
						PDFReference: v.PDFReference,
					}, true
				}
			}
			continue
		}
		if strings.EqualFold(strings.TrimSpace(p.Color), strings.TrimSpace(color)) {
			return domain.Resolved{
				Product:      p,
				Color:        p.Color,
				Page:         p.Page,
				Number:       p.Number,
				PDFReference: p.PDFReference,
			}, true
		}
	}
	return domain.Resolved{}, false
}

// ByID looks a product up by its catalogue id.
func (ix *Index) ByID(id string) (*domain.Product, bool) {
	p, ok := ix.byID[id]
	return p, ok
}

// Search filters products by a case-insensitive substring over type, color
// (including variant colors) and catalogue number, optionally pinned to one
// type. Empty query returns everything.
func (ix *Index) Search(query, typ string) []*domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(typ))
	var out []*domain.Product
	for _, p := range ix.products {
		if t != "" && strings.ToLower(p.Type) != t {
			continue
		}
		if q != "" && !matches(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p *domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Type), q) ||
		strings.Contains(strings.ToLower(p.Color), q) ||
		strings.Contains(strings.ToLower(p.Number), q) {
		return true
	}
	for _, v := range p.Variants {
		if strings.Contains(strings.ToLower(v.Color), q) ||
			strings.Contains(strings.ToLower(v.Number), q) {
			return true
		}
	}
	return false
}
