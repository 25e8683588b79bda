package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// CompanyInfo is the letterhead printed at the top of the quote document.
type CompanyInfo struct {
	Name    string
	Address string
	Email   string
}

// GenerateQuotePDF creates the printable quote document using maroto/v2.
// The layout engine keeps a vertical cursor and starts a new page whenever
// the next row would cross the bottom margin, so long item lists paginate
// automatically. It returns the raw PDF bytes or an error.
func GenerateQuotePDF(company CompanyInfo, quote Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, company)
	addConsumptionSummary(m, quote)
	addQuoteItemsTable(m, quote)
	addQuoteGrandTotal(m, quote)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the company letterhead and the document title.
func addQuoteHeader(m core.Maroto, company CompanyInfo) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(company.Name, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("SOLAR INSTALLATION QUOTE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	contact := company.Address
	if company.Email != "" {
		if contact != "" {
			contact += " | "
		}
		contact += company.Email
	}
	if contact != "" {
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New(contact, props.Text{
						Size:  8,
						Align: align.Left,
						Color: &props.Color{Red: 100, Green: 100, Blue: 100},
					}),
				),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addConsumptionSummary adds the two consumption lines above the item table.
func addConsumptionSummary(m core.Maroto, quote Quote) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  9,
		Align: align.Left,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("CONSUMPTION", labelStyle)),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(3).Add(text.New("Annual consumption:", labelStyle)),
			col.New(9).Add(text.New(FormatEnergy(quote.AnnualTotal), valueStyle)),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(3).Add(text.New("Monthly average:", labelStyle)),
			col.New(9).Add(text.New(FormatEnergy(quote.MonthlyAverage), valueStyle)),
		),
	)

	m.AddRows(row.New(3))
}

// addQuoteItemsTable adds the selected-products table, one row per line
// item, in the quote's category order.
func addQuoteItemsTable(m core.Maroto, quote Quote) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Product", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Category", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Code", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Subtotal", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, item := range quote.Items {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		colQty := col.New(1).Add(text.New(fmt.Sprintf("%d", item.Qty), bodyText))
		colName := col.New(4).Add(text.New(item.Product.Name, bodyTextLeft))
		colCategory := col.New(2).Add(text.New(CategoryLabel(item.Product.Category), bodyText))
		colCode := col.New(2).Add(text.New(item.Product.Code, bodyText))
		colUnit := col.New(1).Add(text.New(FormatCurrency(item.UnitPrice), bodyTextRight))
		colSubtotal := col.New(2).Add(text.New(FormatCurrency(item.Subtotal), bodyTextRight))

		if cellStyle != nil {
			colQty = colQty.WithStyle(cellStyle)
			colName = colName.WithStyle(cellStyle)
			colCategory = colCategory.WithStyle(cellStyle)
			colCode = colCode.WithStyle(cellStyle)
			colUnit = colUnit.WithStyle(cellStyle)
			colSubtotal = colSubtotal.WithStyle(cellStyle)
		}

		m.AddRows(
			row.New(7).Add(colQty, colName, colCategory, colCode, colUnit, colSubtotal),
		)
	}

	m.AddRows(row.New(2))
}

// addQuoteGrandTotal adds the bolded total row after the item table.
func addQuoteGrandTotal(m core.Maroto, quote Quote) {
	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("TOTAL COST", props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: white,
			})).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatCurrency(quote.GrandTotal), props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: white,
			})).WithStyle(grandCell),
		),
	)
}
