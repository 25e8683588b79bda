package services

import (
	"log"

	"github.com/pocketbase/pocketbase"
)

// Selection is one manual product choice for a category.
type Selection struct {
	ProductID string
	Qty       int
}

// BudgetSelection maps a category to its chosen product and quantity.
// Categories without a choice are simply absent.
type BudgetSelection map[string]Selection

// LineItem is one resolved selection inside a quote.
type LineItem struct {
	Product   Product `json:"product"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Quote is the immutable result of one budget assembly: the consumption
// summary, the resolved line items in category order, and the grand total.
type Quote struct {
	AnnualTotal    float64    `json:"annual_total"`
	MonthlyAverage float64    `json:"monthly_average"`
	Items          []LineItem `json:"items"`
	GrandTotal     float64    `json:"grand_total"`
}

// AssembleQuote resolves the selections against the catalog, one category
// at a time in the fixed category order, and totals the result. A category
// whose selection does not resolve contributes nothing; assembly never
// fails on a bad selection.
func AssembleQuote(app *pocketbase.PocketBase, summary ConsumptionSummary, selections BudgetSelection) Quote {
	quote := Quote{
		AnnualTotal:    summary.AnnualTotal,
		MonthlyAverage: summary.MonthlyAverage,
		Items:          []LineItem{},
	}

	for _, category := range CategoryOrder {
		sel, ok := selections[category]
		if !ok {
			continue
		}
		product, ok := resolveSelection(app, category, sel)
		if !ok {
			continue
		}

		unitPrice := FinalPrice(*product)
		quote.Items = append(quote.Items, LineItem{
			Product:   *product,
			Qty:       sel.Qty,
			UnitPrice: unitPrice,
			Subtotal:  CalcLineSubtotal(unitPrice, sel.Qty),
		})
	}

	quote.GrandTotal = CalcGrandTotal(quote.Items)
	return quote
}

// resolveSelection is the single decision point for the lenient selection
// policy: an empty id, an id that does not resolve, a product stored under
// a different category, or a non-positive quantity all mean "category
// omitted". Tightening to a hard validation error would happen here.
func resolveSelection(app *pocketbase.PocketBase, category string, sel Selection) (*Product, bool) {
	if sel.ProductID == "" || sel.Qty <= 0 {
		return nil, false
	}

	product, err := FindProductByID(app, sel.ProductID)
	if err != nil {
		log.Printf("budget: selection for %s skipped: %v", category, err)
		return nil, false
	}
	if product.Category != category {
		log.Printf("budget: selection %s skipped: product is a %s, not a %s",
			sel.ProductID, product.Category, category)
		return nil, false
	}
	return product, true
}
