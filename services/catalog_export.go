package services

import (
	"bytes"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/xuri/excelize/v2"
)

// GenerateCatalogExcel exports the whole catalog to a styled .xlsx file,
// one row per product in category order, with the derived final price as
// the last column.
func GenerateCatalogExcel(app *pocketbase.PocketBase) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Catalog"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headers := []string{
		"Category", "Name", "Brand", "Code",
		"Base Price", "Tax %", "Markup %",
		"Power (W)", "Max Voltage (V)", "String Count", "Max Current (A)",
		"Final Price",
	}
	widths := []float64{18, 34, 18, 14, 12, 8, 10, 10, 14, 12, 14, 12}

	letters := columnLetters(len(headers))
	for i, col := range letters {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	for i, h := range headers {
		cell := fmt.Sprintf("%s1", letters[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", letters[len(letters)-1]), headerStyle)

	rowNum := 2
	for _, category := range CategoryOrder {
		products, err := FindProductsByCategory(app, category)
		if err != nil {
			return nil, fmt.Errorf("export category %s: %w", category, err)
		}
		for _, p := range products {
			values := []any{
				CategoryLabel(p.Category), p.Name, p.Brand, p.Code,
				p.BasePrice, p.TaxPercent, p.MarkupPercent,
				p.PowerW, p.MaxVoltage, p.StringCount, p.MaxCurrent,
				FinalPrice(p),
			}
			for i, v := range values {
				cell := fmt.Sprintf("%s%d", letters[i], rowNum)
				f.SetCellValue(sheetName, cell, v)
			}
			f.SetCellStyle(sheetName,
				fmt.Sprintf("A%d", rowNum),
				fmt.Sprintf("%s%d", letters[len(letters)-1], rowNum),
				bodyStyle)
			rowNum++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write catalog export: %w", err)
	}
	return buf.Bytes(), nil
}
