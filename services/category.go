// Package services provides the pricing, consumption and quote assembly
// logic for the solar installation catalog.
package services

// Product categories. Every product belongs to exactly one of these, and
// quotes list their line items in this order.
const (
	CategoryInverter     = "inverter"
	CategoryPanel        = "panel"
	CategoryDCProtection = "dc_protection"
	CategoryACProtection = "ac_protection"
	CategoryStructure    = "structure"
	CategoryCable        = "cable"
	CategoryConnector    = "connector"
)

// CategoryOrder is the fixed order used by the budget form and the quote
// document.
var CategoryOrder = []string{
	CategoryInverter,
	CategoryPanel,
	CategoryDCProtection,
	CategoryACProtection,
	CategoryStructure,
	CategoryCable,
	CategoryConnector,
}

// CategoryLabels maps category keys to display names.
var CategoryLabels = map[string]string{
	CategoryInverter:     "Inverter",
	CategoryPanel:        "Panel",
	CategoryDCProtection: "DC Protection",
	CategoryACProtection: "AC Protection",
	CategoryStructure:    "Mounting Structure",
	CategoryCable:        "Cable",
	CategoryConnector:    "Connector",
}

// ValidCategory reports whether s is one of the seven fixed categories.
func ValidCategory(s string) bool {
	_, ok := CategoryLabels[s]
	return ok
}

// CategoryLabel returns the display name for a category key, or the key
// itself when it is not a known category.
func CategoryLabel(s string) string {
	if label, ok := CategoryLabels[s]; ok {
		return label
	}
	return s
}
