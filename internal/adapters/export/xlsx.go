// Package export writes the full price grid as an XLSX workbook for the
// reseller's offline bookkeeping.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/catalog"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
)

const sheet = "Catalogue"

var header = []string{"Type", "Color", "Number", "Page", "Category", "Size", "MRP", "Discount Price"}

// PriceGrid flattens every colorway, category and size of the catalogue into
// one worksheet row each and writes the workbook to w. Returns the number of
// data rows written.
func PriceGrid(ix *catalog.Index, w io.Writer) (int, error) {
	f := excelize.NewFile()
	defer f.Close()
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return 0, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return 0, err
	}

	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return 0, err
		}
	}

	rowNum := 2
	for _, p := range ix.Products() {
		for _, color := range colorways(p) {
			r, ok := ix.Resolve(p.Type, color)
			if !ok {
				continue
			}
			for _, cat := range domain.CategoryOrder {
				for _, row := range catalog.SizesFor(r, cat) {
					values := []any{
						p.Type, r.Color, r.Number, r.Page,
						string(cat), row.Size,
						row.ListPrice.Rupees(), row.SalePrice.Rupees(),
					}
					for col, v := range values {
						cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
						if err := f.SetCellValue(sheet, cell, v); err != nil {
							return 0, fmt.Errorf("write row %d: %w", rowNum, err)
						}
					}
					rowNum++
				}
			}
		}
	}

	if err := f.Write(w); err != nil {
		return 0, err
	}
	return rowNum - 2, nil
}

func colorways(p *domain.Product) []string {
	if !p.HasVariants() {
		return []string{p.Color}
	}
	out := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		out = append(out, v.Color)
	}
	return out
}
