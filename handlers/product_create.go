package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// HandleProductCreate handles POST /catalog/products (admin only).
func HandleProductCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := requireAdmin(e); err != nil {
			return err
		}
		if err := e.Request.ParseForm(); err != nil {
			return apis.NewBadRequestError("Invalid form data.", err)
		}

		draft, err := parseProductDraft(e)
		if err != nil {
			return err
		}

		product, saveErr := services.CreateProduct(app, draft)
		if saveErr != nil {
			return apis.NewInternalServerError("Could not create the product.", saveErr)
		}
		return e.JSON(http.StatusOK, toProductResponse(*product))
	}
}

// parseProductDraft reads the product form fields. Name and a valid
// category are required; malformed numeric fields silently default to 0,
// matching the import behavior.
func parseProductDraft(e *core.RequestEvent) (services.ProductDraft, error) {
	draft := services.ProductDraft{
		Name:          strings.TrimSpace(e.Request.FormValue("name")),
		Brand:         strings.TrimSpace(e.Request.FormValue("brand")),
		Code:          strings.TrimSpace(e.Request.FormValue("code")),
		BasePrice:     formFloat(e, "base_price"),
		TaxPercent:    formFloat(e, "tax_percent"),
		MarkupPercent: formFloat(e, "markup_percent"),
		PowerW:        formFloat(e, "power_w"),
		MaxVoltage:    formFloat(e, "max_voltage"),
		StringCount:   formInt(e, "string_count"),
		MaxCurrent:    formFloat(e, "max_current"),
		Category:      strings.TrimSpace(e.Request.FormValue("category")),
	}

	if draft.Name == "" {
		return draft, apis.NewBadRequestError("Name is required.", nil)
	}
	if !services.ValidCategory(draft.Category) {
		return draft, apis.NewBadRequestError("Unknown category.", nil)
	}
	if draft.BasePrice < 0 {
		return draft, apis.NewBadRequestError("Base price must be zero or greater.", nil)
	}
	return draft, nil
}

func formFloat(e *core.RequestEvent, field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.Request.FormValue(field)), 64)
	if err != nil {
		return 0
	}
	return v
}

func formInt(e *core.RequestEvent, field string) int {
	v, err := strconv.Atoi(strings.TrimSpace(e.Request.FormValue(field)))
	if err != nil {
		return 0
	}
	return v
}
