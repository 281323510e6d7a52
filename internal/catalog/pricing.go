package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
)

// canonical garment size order for alphabetic labels
var sizeRank = map[string]int{
	"XXS": 0,
	"XS":  1,
	"S":   2,
	"M":   3,
	"L":   4,
	"XL":  5,
	"XXL": 6, "2XL": 6,
	"XXXL": 7, "3XL": 7,
	"XXXXL": 8, "4XL": 8,
}

// SizesFor returns the ordered size/price rows of one category. A category
// absent from the pricing map yields an empty result, not an error. The rows
// only ever carry the two prices stored in the catalogue entry.
func SizesFor(r domain.Resolved, cat domain.Category) []domain.SizeRow {
	if r.Product == nil {
		return nil
	}
	entries := r.Pricing()[cat]
	if len(entries) == 0 {
		return nil
	}
	sizes := make([]string, 0, len(entries))
	for s := range entries {
		sizes = append(sizes, s)
	}
	SortSizes(sizes)
	rows := make([]domain.SizeRow, 0, len(sizes))
	for _, s := range sizes {
		e := entries[s]
		rows = append(rows, domain.SizeRow{Size: s, ListPrice: e.ListPrice, SalePrice: e.SalePrice})
	}
	return rows
}

// SortSizes orders size labels deterministically: all-numeric sets sort
// ascending by value, recognized alphabetic sets follow the canonical
// garment order, anything mixed or unknown falls back to lexicographic.
func SortSizes(sizes []string) {
	numeric := true
	alpha := true
	for _, s := range sizes {
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			numeric = false
		}
		if _, ok := sizeRank[strings.ToUpper(strings.TrimSpace(s))]; !ok {
			alpha = false
		}
	}
	switch {
	case numeric:
		sort.SliceStable(sizes, func(i, j int) bool {
			a, _ := strconv.Atoi(strings.TrimSpace(sizes[i]))
			b, _ := strconv.Atoi(strings.TrimSpace(sizes[j]))
			if a != b {
				return a < b
			}
			return sizes[i] < sizes[j]
		})
	case alpha:
		sort.SliceStable(sizes, func(i, j int) bool {
			a := sizeRank[strings.ToUpper(strings.TrimSpace(sizes[i]))]
			b := sizeRank[strings.ToUpper(strings.TrimSpace(sizes[j]))]
			if a != b {
				return a < b
			}
			return sizes[i] < sizes[j]
		})
	default:
		sort.Strings(sizes)
	}
}

// Categories lists the categories a resolved product actually prices, in the
// fixed Mens, Ladies, Kids order.
func Categories(r domain.Resolved) []domain.Category {
	if r.Product == nil {
		return nil
	}
	var out []domain.Category
	for _, c := range domain.CategoryOrder {
		if len(r.Pricing()[c]) > 0 {
			out = append(out, c)
		}
	}
	return out
}
