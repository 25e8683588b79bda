package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"solarquote/services"
	"solarquote/testhelpers"
)

func validProductForm() url.Values {
	return url.Values{
		"name":           {"Growatt MIN 5000TL-X"},
		"brand":          {"Growatt"},
		"code":           {"INV-5000"},
		"base_price":     {"1000"},
		"tax_percent":    {"15"},
		"markup_percent": {"20"},
		"power_w":        {"5000"},
		"max_voltage":    {"550"},
		"string_count":   {"2"},
		"max_current":    {"13.5"},
		"category":       {"inverter"},
	}
}

func TestHandleProductCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := httptest.NewRecorder()
	req := newFormRequest(t, "/catalog/products", validProductForm())
	event := newAuthedRequestEvent(t, app, req, rec, "admin")

	if err := HandleProductCreate(app)(event); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Category   string  `json:"category"`
		BasePrice  float64 `json:"base_price"`
		FinalPrice float64 `json:"final_price"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if got.ID == "" {
		t.Error("response has no product id")
	}
	if got.Name != "Growatt MIN 5000TL-X" || got.Category != "inverter" {
		t.Errorf("unexpected product fields: %+v", got)
	}
	if got.FinalPrice != 1380 {
		t.Errorf("final_price = %v, want 1380", got.FinalPrice)
	}

	// The product is actually persisted.
	saved, err := services.FindProductByID(app, got.ID)
	if err != nil {
		t.Fatalf("created product not found in store: %v", err)
	}
	if saved.BasePrice != 1000 {
		t.Errorf("stored base price = %v, want 1000", saved.BasePrice)
	}
}

func TestHandleProductCreate_RequiresAuth(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := httptest.NewRecorder()
	req := newFormRequest(t, "/catalog/products", validProductForm())
	event := newTestRequestEvent(app, req, rec)

	err := HandleProductCreate(app)(event)
	assertAPIError(t, err, http.StatusUnauthorized)
}

func TestHandleProductCreate_PermissionDenied(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := httptest.NewRecorder()
	req := newFormRequest(t, "/catalog/products", validProductForm())
	event := newAuthedRequestEvent(t, app, req, rec, "user")

	err := HandleProductCreate(app)(event)
	assertAPIError(t, err, http.StatusForbidden)
}

func TestHandleProductCreate_MissingName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	form := validProductForm()
	form.Set("name", "   ")
	rec := httptest.NewRecorder()
	event := newAuthedRequestEvent(t, app, newFormRequest(t, "/catalog/products", form), rec, "admin")

	err := HandleProductCreate(app)(event)
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestHandleProductCreate_UnknownCategory(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	form := validProductForm()
	form.Set("category", "battery")
	rec := httptest.NewRecorder()
	event := newAuthedRequestEvent(t, app, newFormRequest(t, "/catalog/products", form), rec, "admin")

	err := HandleProductCreate(app)(event)
	assertAPIError(t, err, http.StatusBadRequest)
}

func TestHandleProductCreate_MalformedNumbersDefaultToZero(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	form := validProductForm()
	form.Set("base_price", "abc")
	form.Set("tax_percent", "")
	form.Set("string_count", "two")
	rec := httptest.NewRecorder()
	event := newAuthedRequestEvent(t, app, newFormRequest(t, "/catalog/products", form), rec, "admin")

	if err := HandleProductCreate(app)(event); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var got struct {
		BasePrice   float64 `json:"base_price"`
		TaxPercent  float64 `json:"tax_percent"`
		StringCount int     `json:"string_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if got.BasePrice != 0 || got.TaxPercent != 0 || got.StringCount != 0 {
		t.Errorf("malformed numbers not defaulted: %+v", got)
	}
}
