package services

import "testing"

func TestCategoryOrder(t *testing.T) {
	if len(CategoryOrder) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(CategoryOrder))
	}
	if CategoryOrder[0] != CategoryInverter || CategoryOrder[6] != CategoryConnector {
		t.Errorf("unexpected order: %v", CategoryOrder)
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range CategoryOrder {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false", c)
		}
	}
	for _, c := range []string{"", "battery", "Inverter", "panels"} {
		if ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = true", c)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLabel(CategoryDCProtection); got != "DC Protection" {
		t.Errorf("CategoryLabel(dc_protection) = %q", got)
	}
	// Unknown categories fall back to the raw value.
	if got := CategoryLabel("battery"); got != "battery" {
		t.Errorf("CategoryLabel(battery) = %q", got)
	}
}
