package catalog

import (
	"reflect"
	"testing"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
)

func TestSortSizes(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"numeric ascending", []string{"26", "20", "24"}, []string{"20", "24", "26"}},
		{"numeric not lexicographic", []string{"100", "24", "8"}, []string{"8", "24", "100"}},
		{"canonical alpha", []string{"XXL", "S", "XL", "M", "L"}, []string{"S", "M", "L", "XL", "XXL"}},
		{"alias ranks equal", []string{"2XL", "XL"}, []string{"XL", "2XL"}},
		{"mixed falls back lexicographic", []string{"M", "24", "S"}, []string{"24", "M", "S"}},
		{"unrecognized falls back lexicographic", []string{"Large", "Small"}, []string{"Large", "Small"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := append([]string(nil), tc.in...)
			SortSizes(got)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SortSizes(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSizesForOrderedAndDeterministic(t *testing.T) {
	ix := mustLoad(t)
	r, _ := ix.Resolve("Lakhnavi", "Maroon")

	kids := SizesFor(r, domain.CategoryKids)
	if len(kids) != 2 || kids[0].Size != "24" || kids[1].Size != "26" {
		t.Fatalf("kids rows = %+v", kids)
	}

	// identical output across renders of the same product
	first := SizesFor(r, domain.CategoryMens)
	for i := 0; i < 20; i++ {
		if again := SizesFor(r, domain.CategoryMens); !reflect.DeepEqual(first, again) {
			t.Fatalf("nondeterministic ordering: %v vs %v", first, again)
		}
	}
}

func TestSizesForMissingCategoryIsEmpty(t *testing.T) {
	ix := mustLoad(t)
	r, _ := ix.Resolve("Chikankari", "White")
	if rows := SizesFor(r, domain.CategoryKids); len(rows) != 0 {
		t.Fatalf("absent category rows = %+v, want empty", rows)
	}
	if rows := SizesFor(domain.Resolved{}, domain.CategoryMens); rows != nil {
		t.Fatalf("nil product rows = %+v, want nil", rows)
	}
}

func TestSizesForOnlyReadsStoredPrices(t *testing.T) {
	// salePrice above listPrice is suspect data but must pass through
	// untouched; the resolver never recomputes a discount.
	ix, err := Load([]*domain.Product{{
		Type: "Anarkali", Color: "Black",
		Pricing: domain.PricingMap{
			domain.CategoryMens: {"M": {ListPrice: rs(400), SalePrice: rs(500)}},
		},
	}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r, _ := ix.Resolve("Anarkali", "Black")
	rows := SizesFor(r, domain.CategoryMens)
	if len(rows) != 1 || rows[0].ListPrice != rs(400) || rows[0].SalePrice != rs(500) {
		t.Fatalf("rows = %+v, want stored values as given", rows)
	}
}

func TestCategoriesFixedOrder(t *testing.T) {
	ix := mustLoad(t)
	r, _ := ix.Resolve("Lakhnavi", "Maroon")
	got := Categories(r)
	want := []domain.Category{domain.CategoryMens, domain.CategoryLadies, domain.CategoryKids}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
	r2, _ := ix.Resolve("Chikankari", "White")
	if got := Categories(r2); !reflect.DeepEqual(got, []domain.Category{domain.CategoryMens, domain.CategoryLadies}) {
		t.Fatalf("Categories = %v", got)
	}
}
