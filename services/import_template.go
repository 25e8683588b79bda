package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateImportTemplate creates a downloadable .xlsx template with the
// expected header row for one category's bulk import.
func GenerateImportTemplate(category string) ([]byte, error) {
	if !ValidCategory(category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	cols := ImportColumns(category)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Products"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})

	letters := columnLetters(len(cols))
	for i, c := range cols {
		cell := fmt.Sprintf("%s1", letters[i])
		f.SetCellValue(sheetName, cell, c.Label)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)

		width := float64(len(c.Label)) * 1.3
		if width < 14 {
			width = 14
		}
		f.SetColWidth(sheetName, letters[i], letters[i], width)
	}

	// Freeze header row
	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel template: %w", err)
	}
	return buf.Bytes(), nil
}

// thinBorders returns a full thin border set for excelize styles.
func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#D1D5DB", Style: 1},
		{Type: "right", Color: "#D1D5DB", Style: 1},
		{Type: "top", Color: "#D1D5DB", Style: 1},
		{Type: "bottom", Color: "#D1D5DB", Style: 1},
	}
}

// columnLetters returns the first n spreadsheet column references
// (A, B, ..., Z, AA, AB, ...).
func columnLetters(n int) []string {
	letters := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name, _ := excelize.ColumnNumberToName(i + 1)
		letters = append(letters, name)
	}
	return letters
}
