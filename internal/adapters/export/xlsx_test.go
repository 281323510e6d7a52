package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/catalog"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
)

func rs(v int64) domain.Money { return domain.Money(v * 100) }

func TestPriceGrid(t *testing.T) {
	ix, err := catalog.Load([]*domain.Product{
		{
			ID: "lak", Type: "Lakhnavi", Color: "Maroon", Number: "101", Page: 4,
			Pricing: domain.PricingMap{
				domain.CategoryMens: {
					"M": {ListPrice: rs(600), SalePrice: rs(450)},
					"L": {ListPrice: rs(650), SalePrice: rs(500)},
				},
				domain.CategoryKids: {"24": {ListPrice: rs(400), SalePrice: rs(300)}},
			},
		},
		{
			ID: "chikan", Type: "Chikankari", Number: "201", Page: 7,
			Variants: []domain.Variant{{Color: "White"}, {Color: "Beige", Page: 8}},
			Pricing: domain.PricingMap{
				domain.CategoryLadies: {"S": {ListPrice: rs(680), SalePrice: rs(540)}},
			},
		},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var buf bytes.Buffer
	rows, err := PriceGrid(ix, &buf)
	if err != nil {
		t.Fatalf("PriceGrid: %v", err)
	}
	// lakhnavi: 2 mens + 1 kids; chikankari: 1 ladies per colorway
	if rows != 5 {
		t.Fatalf("rows = %d, want 5", rows)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()
	got, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("sheet rows = %d, want header + 5", len(got))
	}
	if got[0][0] != "Type" || got[0][6] != "MRP" {
		t.Fatalf("header = %v", got[0])
	}
	// mens sizes keep resolver order: L before M never happens
	if got[1][5] != "M" || got[2][5] != "L" {
		t.Fatalf("size order rows = %v %v", got[1], got[2])
	}
}
