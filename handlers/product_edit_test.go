package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"solarquote/services"
	"solarquote/testhelpers"
)

func TestHandleProductUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	product := testhelpers.CreateTestProduct(t, app, "Inverter 5kW", services.CategoryInverter, 1000, 15, 20)

	form := validProductForm()
	form.Set("name", "Inverter 6kW")
	form.Set("base_price", "1200")

	rec := httptest.NewRecorder()
	req := newFormRequest(t, "/catalog/products/"+product.Id, form)
	req.SetPathValue("id", product.Id)
	event := newAuthedRequestEvent(t, app, req, rec, "admin")

	if err := HandleProductUpdate(app)(event); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var got struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		BasePrice  float64 `json:"base_price"`
		FinalPrice float64 `json:"final_price"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if got.ID != product.Id || got.Name != "Inverter 6kW" || got.BasePrice != 1200 {
		t.Errorf("unexpected response: %+v", got)
	}
	// 1200 * 1.15 * 1.20
	if got.FinalPrice != 1656 {
		t.Errorf("final_price = %v, want 1656", got.FinalPrice)
	}
}

func TestHandleProductUpdate_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rec := httptest.NewRecorder()
	req := newFormRequest(t, "/catalog/products/missing12345678", validProductForm())
	req.SetPathValue("id", "missing12345678")
	event := newAuthedRequestEvent(t, app, req, rec, "admin")

	err := HandleProductUpdate(app)(event)
	assertAPIError(t, err, http.StatusNotFound)
}

func TestHandleProductUpdate_PermissionDenied(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	product := testhelpers.CreateTestProduct(t, app, "Inverter 5kW", services.CategoryInverter, 1000, 15, 20)

	rec := httptest.NewRecorder()
	req := newFormRequest(t, "/catalog/products/"+product.Id, validProductForm())
	req.SetPathValue("id", product.Id)
	event := newAuthedRequestEvent(t, app, req, rec, "user")

	err := HandleProductUpdate(app)(event)
	assertAPIError(t, err, http.StatusForbidden)
}
