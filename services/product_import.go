package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// NotApplicable is the placeholder stored when an imported row leaves a
// textual column empty.
const NotApplicable = "N/A"

type columnKind int

const (
	kindText columnKind = iota
	kindNumber
	kindInt
)

// ImportColumn describes one expected column of an import file.
type ImportColumn struct {
	Key    string
	Label  string
	Kind   columnKind
	Detail bool // lands in the detail bag instead of a technical field
}

// baseColumns are shared by every category.
var baseColumns = []ImportColumn{
	{Key: "name", Label: "Name", Kind: kindText},
	{Key: "brand", Label: "Brand", Kind: kindText},
	{Key: "code", Label: "Code", Kind: kindText},
	{Key: "base_price", Label: "Base Price", Kind: kindNumber},
	{Key: "tax_percent", Label: "Tax %", Kind: kindNumber},
	{Key: "markup_percent", Label: "Markup %", Kind: kindNumber},
}

// categoryColumns lists the technical and detail-bag columns per category.
// This table is the single source of truth for the import mapping; adding a
// column here changes the template, the parser and the product construction
// together.
var categoryColumns = map[string][]ImportColumn{
	CategoryInverter: {
		{Key: "power_w", Label: "Power (W)", Kind: kindNumber},
		{Key: "max_voltage", Label: "Max Voltage (V)", Kind: kindNumber},
		{Key: "string_count", Label: "String Count", Kind: kindInt},
		{Key: "max_current", Label: "Max Current (A)", Kind: kindNumber},
		{Key: "phases", Label: "Phases", Kind: kindText, Detail: true},
		{Key: "warranty_years", Label: "Warranty (Years)", Kind: kindText, Detail: true},
	},
	CategoryPanel: {
		{Key: "power_w", Label: "Power (W)", Kind: kindNumber},
		{Key: "max_voltage", Label: "Max Voltage (V)", Kind: kindNumber},
		{Key: "max_current", Label: "Max Current (A)", Kind: kindNumber},
		{Key: "cell_type", Label: "Cell Type", Kind: kindText, Detail: true},
		{Key: "dimensions", Label: "Dimensions", Kind: kindText, Detail: true},
	},
	CategoryDCProtection: {
		{Key: "max_voltage", Label: "Max Voltage (V)", Kind: kindNumber},
		{Key: "max_current", Label: "Max Current (A)", Kind: kindNumber},
		{Key: "poles", Label: "Poles", Kind: kindText, Detail: true},
	},
	CategoryACProtection: {
		{Key: "max_voltage", Label: "Max Voltage (V)", Kind: kindNumber},
		{Key: "max_current", Label: "Max Current (A)", Kind: kindNumber},
		{Key: "poles", Label: "Poles", Kind: kindText, Detail: true},
		{Key: "breaking_capacity", Label: "Breaking Capacity", Kind: kindText, Detail: true},
	},
	CategoryStructure: {
		{Key: "material", Label: "Material", Kind: kindText, Detail: true},
		{Key: "roof_type", Label: "Roof Type", Kind: kindText, Detail: true},
	},
	CategoryCable: {
		{Key: "max_voltage", Label: "Max Voltage (V)", Kind: kindNumber},
		{Key: "max_current", Label: "Max Current (A)", Kind: kindNumber},
		{Key: "section_mm2", Label: "Section (mm2)", Kind: kindText, Detail: true},
		{Key: "color", Label: "Color", Kind: kindText, Detail: true},
	},
	CategoryConnector: {
		{Key: "max_voltage", Label: "Max Voltage (V)", Kind: kindNumber},
		{Key: "max_current", Label: "Max Current (A)", Kind: kindNumber},
		{Key: "connector_type", Label: "Connector Type", Kind: kindText, Detail: true},
	},
}

// ImportColumns returns the full ordered column list for a category's
// import file: the shared base columns followed by the category's own.
func ImportColumns(category string) []ImportColumn {
	cols := make([]ImportColumn, 0, len(baseColumns)+len(categoryColumns[category]))
	cols = append(cols, baseColumns...)
	cols = append(cols, categoryColumns[category]...)
	return cols
}

// ParseProductFile reads an uploaded .csv or .xlsx file and returns its
// header row and data rows. The format is picked from the file name.
func ParseProductFile(file io.Reader, fileName string) ([]string, [][]string, error) {
	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		return parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		return parseExcel(file)
	default:
		return nil, nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the
// first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// MapRows converts raw import rows into product drafts for the declared
// category. Column headers are matched by label (case-insensitive);
// unrecognized columns are ignored. Numeric cells that fail to parse become
// 0 and empty textual cells become the "N/A" placeholder, so a sloppy file
// still imports.
func MapRows(category string, headers []string, rows [][]string) ([]ProductDraft, error) {
	if !ValidCategory(category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	cols := ImportColumns(category)
	labelToCol := make(map[string]ImportColumn, len(cols))
	for _, c := range cols {
		labelToCol[strings.ToLower(c.Label)] = c
	}

	// Map header position -> column spec.
	mapped := make([]*ImportColumn, len(headers))
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		if c, ok := labelToCol[norm]; ok {
			mapped[i] = &c
		}
	}

	drafts := make([]ProductDraft, 0, len(rows))
	for _, rawRow := range rows {
		draft := ProductDraft{Category: category, Details: map[string]string{}}

		for colIdx, spec := range mapped {
			if spec == nil {
				continue
			}
			value := ""
			if colIdx < len(rawRow) {
				value = strings.TrimSpace(rawRow[colIdx])
			}
			applyImportValue(&draft, *spec, value)
		}

		// Columns absent from the file still get their defaults.
		for _, spec := range cols {
			if spec.Kind == kindText && spec.Detail && draft.Details[spec.Key] == "" {
				draft.Details[spec.Key] = NotApplicable
			}
		}
		fillTextDefaults(&draft)

		drafts = append(drafts, draft)
	}
	return drafts, nil
}

func applyImportValue(draft *ProductDraft, spec ImportColumn, value string) {
	if spec.Detail {
		if value == "" {
			value = NotApplicable
		}
		draft.Details[spec.Key] = value
		return
	}

	switch spec.Key {
	case "name":
		draft.Name = value
	case "brand":
		draft.Brand = value
	case "code":
		draft.Code = value
	case "base_price":
		draft.BasePrice = coerceFloat(value)
	case "tax_percent":
		draft.TaxPercent = coerceFloat(value)
	case "markup_percent":
		draft.MarkupPercent = coerceFloat(value)
	case "power_w":
		draft.PowerW = coerceFloat(value)
	case "max_voltage":
		draft.MaxVoltage = coerceFloat(value)
	case "string_count":
		draft.StringCount = coerceInt(value)
	case "max_current":
		draft.MaxCurrent = coerceFloat(value)
	}
}

func fillTextDefaults(draft *ProductDraft) {
	if draft.Name == "" {
		draft.Name = NotApplicable
	}
	if draft.Brand == "" {
		draft.Brand = NotApplicable
	}
	if draft.Code == "" {
		draft.Code = NotApplicable
	}
}

// coerceFloat parses a numeric cell, defaulting to 0 on malformed input.
func coerceFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// coerceInt parses an integer cell, defaulting to 0 on malformed input.
func coerceInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
