package catalog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
)

func rs(v int64) domain.Money { return domain.Money(v * 100) }

func testProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID: "lak-maroon", Type: "Lakhnavi", Color: "Maroon",
			Number: "101", Page: 4, PDFReference: "lakhnavi.pdf",
			Pricing: domain.PricingMap{
				domain.CategoryMens: {
					"M": {ListPrice: rs(600), SalePrice: rs(450)},
					"L": {ListPrice: rs(650), SalePrice: rs(500)},
				},
				domain.CategoryLadies: {
					"M": {ListPrice: rs(550), SalePrice: rs(420)},
				},
				domain.CategoryKids: {
					"24": {ListPrice: rs(400), SalePrice: rs(300)},
					"26": {ListPrice: rs(420), SalePrice: rs(320)},
				},
			},
		},
		{
			ID: "lak-blue", Type: "Lakhnavi", Color: "Blue",
			Number: "102", Page: 5, PDFReference: "lakhnavi.pdf",
			Pricing: domain.PricingMap{
				domain.CategoryMens: {
					"M": {ListPrice: rs(600), SalePrice: rs(450)},
				},
			},
		},
		{
			ID: "chikan", Type: "Chikankari",
			Number: "201", Page: 7, PDFReference: "chikankari.pdf",
			Variants: []domain.Variant{
				{Color: "White"},
				{Color: "Beige", Page: 8, Number: "202"},
			},
			Pricing: domain.PricingMap{
				domain.CategoryMens: {
					"S": {ListPrice: rs(700), SalePrice: rs(560)},
					"M": {ListPrice: rs(700), SalePrice: rs(560)},
				},
				domain.CategoryLadies: {
					"S": {ListPrice: rs(680), SalePrice: rs(540)},
				},
			},
		},
	}
}

func mustLoad(t *testing.T) *Index {
	t.Helper()
	ix, err := Load(testProducts())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ix
}

func TestLoadRejectsMalformedRecords(t *testing.T) {
	cases := []struct {
		name     string
		products []*domain.Product
	}{
		{"no type", []*domain.Product{{Color: "Red"}}},
		{"no color or variants", []*domain.Product{{Type: "Lakhnavi"}}},
		{"negative page", []*domain.Product{{Type: "Lakhnavi", Color: "Red", Page: -2}}},
		{"nil record", []*domain.Product{nil}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.products); !errors.Is(err, domain.ErrMalformedCatalog) {
				t.Fatalf("want ErrMalformedCatalog, got %v", err)
			}
		})
	}
}

func TestParseDistinguishesLoadAndSchemaFailures(t *testing.T) {
	if _, err := Parse([]byte(`{"not":"an array"`)); !errors.Is(err, domain.ErrCatalogLoad) {
		t.Fatalf("broken JSON: want ErrCatalogLoad, got %v", err)
	}
	if _, err := Parse([]byte(`{"not": "an array"}`)); !errors.Is(err, domain.ErrMalformedCatalog) {
		t.Fatalf("non-array JSON: want ErrMalformedCatalog, got %v", err)
	}
	if _, err := Parse([]byte(`[{"type":"Lakhnavi","color":"Red","pricing":{"Mens":{"M":{"listPrice":"x"}}}}]`)); !errors.Is(err, domain.ErrMalformedCatalog) {
		t.Fatalf("bad price type: want ErrMalformedCatalog, got %v", err)
	}
}

func TestParseReadsRupeeAmounts(t *testing.T) {
	ix, err := Parse([]byte(`[{"id":"p1","type":"Lakhnavi","color":"Maroon","number":"101","page":4,
		"pricing":{"Mens":{"M":{"listPrice":600,"salePrice":450.50}}}}]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, ok := ix.ByID("p1")
	if !ok {
		t.Fatal("product missing")
	}
	entry := p.Pricing[domain.CategoryMens]["M"]
	if entry.ListPrice != rs(600) {
		t.Fatalf("listPrice = %v, want %v", entry.ListPrice, rs(600))
	}
	if entry.SalePrice != domain.Money(45050) {
		t.Fatalf("salePrice = %v, want 45050 paise", entry.SalePrice)
	}
}

func TestTypesFirstSeenDeduplicated(t *testing.T) {
	ix := mustLoad(t)
	got := ix.Types()
	want := []string{"Lakhnavi", "Chikankari"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
}

func TestColorsForType(t *testing.T) {
	ix := mustLoad(t)
	if got, want := ix.ColorsForType("Lakhnavi"), []string{"Maroon", "Blue"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("flat colors = %v, want %v", got, want)
	}
	if got, want := ix.ColorsForType("chikankari"), []string{"White", "Beige"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("variant colors = %v, want %v", got, want)
	}
	if got := ix.ColorsForType("Unknown"); len(got) != 0 {
		t.Fatalf("unknown type colors = %v, want none", got)
	}
}

func TestResolveJoinsVariantAndSharesPricing(t *testing.T) {
	ix := mustLoad(t)
	r, ok := ix.Resolve("Chikankari", "Beige")
	if !ok {
		t.Fatal("Resolve miss")
	}
	if r.Color != "Beige" || r.Page != 8 || r.Number != "202" {
		t.Fatalf("variant fields not joined: %+v", r)
	}
	if r.PDFReference != "chikankari.pdf" {
		t.Fatalf("pdf not inherited: %q", r.PDFReference)
	}
	if !reflect.DeepEqual(r.Pricing(), r.Product.Pricing) {
		t.Fatal("variant must share the product pricing map")
	}

	// variant omitting page/number inherits the product's
	r2, ok := ix.Resolve("Chikankari", "White")
	if !ok {
		t.Fatal("Resolve miss")
	}
	if r2.Page != 7 || r2.Number != "201" {
		t.Fatalf("inherited fields wrong: page=%d number=%s", r2.Page, r2.Number)
	}
}

func TestResolveMissIsNotAnError(t *testing.T) {
	ix := mustLoad(t)
	if _, ok := ix.Resolve("Lakhnavi", "Green"); ok {
		t.Fatal("expected miss for absent color")
	}
	if _, ok := ix.Resolve("Nonexistent", "Maroon"); ok {
		t.Fatal("expected miss for absent type")
	}
}

func TestResolveMatchingIsCaseInsensitive(t *testing.T) {
	ix := mustLoad(t)
	r, ok := ix.Resolve("lakhnavi", "MAROON")
	if !ok {
		t.Fatal("case-insensitive resolve failed")
	}
	if r.Product.Type != "Lakhnavi" || r.Color != "Maroon" {
		t.Fatalf("display casing lost: %+v", r)
	}
}

func TestSearch(t *testing.T) {
	ix := mustLoad(t)
	if got := ix.Search("beige", ""); len(got) != 1 || got[0].ID != "chikan" {
		t.Fatalf("variant color search = %+v", got)
	}
	if got := ix.Search("101", ""); len(got) != 1 || got[0].ID != "lak-maroon" {
		t.Fatalf("number search = %+v", got)
	}
	if got := ix.Search("", "lakhnavi"); len(got) != 2 {
		t.Fatalf("type filter = %d products, want 2", len(got))
	}
	if got := ix.Search("", ""); len(got) != 3 {
		t.Fatalf("empty query = %d products, want all 3", len(got))
	}
}

func TestDefaultPage(t *testing.T) {
	ix, err := Load([]*domain.Product{{Type: "Anarkali", Color: "Black"}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r, ok := ix.Resolve("Anarkali", "Black")
	if !ok {
		t.Fatal("Resolve miss")
	}
	if r.Page != 1 {
		t.Fatalf("missing page should default to 1, got %d", r.Page)
	}
}
