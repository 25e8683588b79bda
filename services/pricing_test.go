package services

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    float64
	}{
		{
			name:    "tax and markup applied",
			product: Product{BasePrice: 1000, TaxPercent: 15, MarkupPercent: 20},
			want:    1380,
		},
		{
			name:    "zero percentages leave base price",
			product: Product{BasePrice: 250},
			want:    250,
		},
		{
			name:    "tax only",
			product: Product{BasePrice: 100, TaxPercent: 21},
			want:    121,
		},
		{
			name:    "markup only",
			product: Product{BasePrice: 100, MarkupPercent: 50},
			want:    150,
		},
		{
			name:    "zero base price",
			product: Product{BasePrice: 0, TaxPercent: 15, MarkupPercent: 20},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalPrice(tt.product)
			if !almostEqual(got, tt.want) {
				t.Errorf("FinalPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFinalPrice_IndependentOfFieldOrder(t *testing.T) {
	p := Product{BasePrice: 1000, TaxPercent: 15, MarkupPercent: 20}
	first := FinalPrice(p)

	// Mutate and restore; the price must be recomputed, not cached.
	p.MarkupPercent = 0
	if almostEqual(FinalPrice(p), first) {
		t.Error("expected price to change after mutating markup")
	}
	p.MarkupPercent = 20
	if got := FinalPrice(p); !almostEqual(got, first) {
		t.Errorf("FinalPrice() after restore = %v, want %v", got, first)
	}
}

func TestCalcLineSubtotal(t *testing.T) {
	if got := CalcLineSubtotal(1380, 2); !almostEqual(got, 2760) {
		t.Errorf("CalcLineSubtotal(1380, 2) = %v, want 2760", got)
	}
	if got := CalcLineSubtotal(99.99, 1); !almostEqual(got, 99.99) {
		t.Errorf("CalcLineSubtotal(99.99, 1) = %v, want 99.99", got)
	}
}

func TestCalcGrandTotal(t *testing.T) {
	items := []LineItem{
		{Subtotal: 2760},
		{Subtotal: 240},
		{Subtotal: 0.5},
	}
	if got := CalcGrandTotal(items); !almostEqual(got, 3000.5) {
		t.Errorf("CalcGrandTotal() = %v, want 3000.5", got)
	}

	if got := CalcGrandTotal(nil); got != 0 {
		t.Errorf("CalcGrandTotal(nil) = %v, want 0", got)
	}
}
