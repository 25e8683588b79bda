package services

import (
	"reflect"
	"testing"

	"solarquote/testhelpers"
)

func sampleDraft() ProductDraft {
	return ProductDraft{
		Name:          "Growatt MIN 5000TL-X",
		Brand:         "Growatt",
		Code:          "INV-5000",
		BasePrice:     1000,
		TaxPercent:    15,
		MarkupPercent: 20,
		PowerW:        5000,
		MaxVoltage:    550,
		StringCount:   2,
		MaxCurrent:    13.5,
		Category:      CategoryInverter,
		Details:       map[string]string{"phases": "1", "warranty_years": "10"},
	}
}

func TestCreateAndFindProduct_RoundTrip(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	created, err := CreateProduct(app, sampleDraft())
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("created product has no id")
	}

	fetched, err := FindProductByID(app, created.ID)
	if err != nil {
		t.Fatalf("FindProductByID() error = %v", err)
	}
	if !reflect.DeepEqual(*created, *fetched) {
		t.Errorf("round trip mismatch:\ncreated: %+v\nfetched: %+v", *created, *fetched)
	}
	if !almostEqual(FinalPrice(*fetched), 1380) {
		t.Errorf("FinalPrice() = %v, want 1380", FinalPrice(*fetched))
	}
}

func TestFindProductsByCategory_InsertionOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProduct(t, app, "Panel A", CategoryPanel, 100, 0, 0)
	testhelpers.CreateTestProduct(t, app, "Panel B", CategoryPanel, 110, 0, 0)
	testhelpers.CreateTestProduct(t, app, "Inverter", CategoryInverter, 1000, 0, 0)

	panels, err := FindProductsByCategory(app, CategoryPanel)
	if err != nil {
		t.Fatalf("FindProductsByCategory() error = %v", err)
	}
	if len(panels) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(panels))
	}
	if panels[0].Name != "Panel A" || panels[1].Name != "Panel B" {
		t.Errorf("unexpected order: %q, %q", panels[0].Name, panels[1].Name)
	}
}

func TestUpdateProduct(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	created, err := CreateProduct(app, sampleDraft())
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}

	draft := sampleDraft()
	draft.BasePrice = 1200
	draft.Name = "Growatt MIN 6000TL-X"

	updated, err := UpdateProduct(app, created.ID, draft)
	if err != nil {
		t.Fatalf("UpdateProduct() error = %v", err)
	}
	if updated.BasePrice != 1200 || updated.Name != "Growatt MIN 6000TL-X" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.ID != created.ID {
		t.Errorf("update changed the id: %s -> %s", created.ID, updated.ID)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if _, err := UpdateProduct(app, "missing12345678", sampleDraft()); err == nil {
		t.Error("expected an error for a missing product id")
	}
}

func TestDeleteProduct(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	created, err := CreateProduct(app, sampleDraft())
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}

	if err := DeleteProduct(app, created.ID); err != nil {
		t.Fatalf("DeleteProduct() error = %v", err)
	}
	if _, err := FindProductByID(app, created.ID); err == nil {
		t.Error("expected the deleted product to be gone")
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := DeleteProduct(app, "missing12345678"); err == nil {
		t.Error("expected an error for a missing product id")
	}
}

func TestFindProductByID_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if _, err := FindProductByID(app, ""); err == nil {
		t.Error("expected an error for an empty id")
	}
}
