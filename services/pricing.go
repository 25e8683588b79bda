package services

// FinalPrice computes the sell price of a product: the base price with the
// tax percentage applied, then the markup percentage on top. Zero
// percentages leave the base price unchanged. The result is unrounded;
// rounding happens at the presentation layer only.
func FinalPrice(p Product) float64 {
	return p.BasePrice * (1 + p.TaxPercent/100) * (1 + p.MarkupPercent/100)
}

// CalcLineSubtotal computes the cost of qty units at the given unit price.
func CalcLineSubtotal(unitPrice float64, qty int) float64 {
	return unitPrice * float64(qty)
}

// CalcGrandTotal sums the subtotals of all line items.
func CalcGrandTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}
