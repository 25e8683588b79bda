package services

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Product is a catalog entry. FinalPrice is intentionally not a field: it is
// always derived from BasePrice, TaxPercent and MarkupPercent at read time.
type Product struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Brand         string            `json:"brand"`
	Code          string            `json:"code"`
	BasePrice     float64           `json:"base_price"`
	TaxPercent    float64           `json:"tax_percent"`
	MarkupPercent float64           `json:"markup_percent"`
	PowerW        float64           `json:"power_w"`
	MaxVoltage    float64           `json:"max_voltage"`
	StringCount   int               `json:"string_count"`
	MaxCurrent    float64           `json:"max_current"`
	Category      string            `json:"category"`
	Details       map[string]string `json:"details,omitempty"`
}

// ProductDraft carries the writable fields of a product for create and
// update operations.
type ProductDraft struct {
	Name          string
	Brand         string
	Code          string
	BasePrice     float64
	TaxPercent    float64
	MarkupPercent float64
	PowerW        float64
	MaxVoltage    float64
	StringCount   int
	MaxCurrent    float64
	Category      string
	Details       map[string]string
}

// FindProductsByCategory returns all products of one category in creation
// order.
func FindProductsByCategory(app *pocketbase.PocketBase, category string) ([]Product, error) {
	records, err := app.FindRecordsByFilter(
		"products",
		"category = {:category}",
		"created",
		0, 0,
		map[string]any{"category": category},
	)
	if err != nil {
		return nil, fmt.Errorf("find products by category %q: %w", category, err)
	}

	products := make([]Product, 0, len(records))
	for _, rec := range records {
		products = append(products, recordToProduct(rec))
	}
	return products, nil
}

// FindAllProducts returns the whole catalog in creation order.
func FindAllProducts(app *pocketbase.PocketBase) ([]Product, error) {
	records, err := app.FindRecordsByFilter("products", "1=1", "created", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("find all products: %w", err)
	}

	products := make([]Product, 0, len(records))
	for _, rec := range records {
		products = append(products, recordToProduct(rec))
	}
	return products, nil
}

// FindProductByID fetches a single product. The returned pointer is nil when
// the id does not resolve.
func FindProductByID(app *pocketbase.PocketBase, id string) (*Product, error) {
	if id == "" {
		return nil, fmt.Errorf("product id is empty")
	}
	rec, err := app.FindRecordById("products", id)
	if err != nil {
		return nil, fmt.Errorf("product %q not found: %w", id, err)
	}
	p := recordToProduct(rec)
	return &p, nil
}

// CreateProduct inserts a new catalog entry and returns it with its
// generated id. Permission checks happen at the handler layer.
func CreateProduct(app *pocketbase.PocketBase, draft ProductDraft) (*Product, error) {
	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return nil, fmt.Errorf("products collection missing: %w", err)
	}

	rec := core.NewRecord(col)
	applyDraft(rec, draft)
	if err := app.Save(rec); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	p := recordToProduct(rec)
	return &p, nil
}

// UpdateProduct overwrites an existing product's writable fields.
func UpdateProduct(app *pocketbase.PocketBase, id string, draft ProductDraft) (*Product, error) {
	rec, err := app.FindRecordById("products", id)
	if err != nil {
		return nil, fmt.Errorf("product %q not found: %w", id, err)
	}

	applyDraft(rec, draft)
	if err := app.Save(rec); err != nil {
		return nil, fmt.Errorf("save product %q: %w", id, err)
	}

	p := recordToProduct(rec)
	return &p, nil
}

// DeleteProduct removes a product from the catalog.
func DeleteProduct(app *pocketbase.PocketBase, id string) error {
	rec, err := app.FindRecordById("products", id)
	if err != nil {
		return fmt.Errorf("product %q not found: %w", id, err)
	}
	if err := app.Delete(rec); err != nil {
		return fmt.Errorf("delete product %q: %w", id, err)
	}
	return nil
}

func applyDraft(rec *core.Record, draft ProductDraft) {
	rec.Set("name", draft.Name)
	rec.Set("brand", draft.Brand)
	rec.Set("code", draft.Code)
	rec.Set("base_price", draft.BasePrice)
	rec.Set("tax_percent", draft.TaxPercent)
	rec.Set("markup_percent", draft.MarkupPercent)
	rec.Set("power_w", draft.PowerW)
	rec.Set("max_voltage", draft.MaxVoltage)
	rec.Set("string_count", draft.StringCount)
	rec.Set("max_current", draft.MaxCurrent)
	rec.Set("category", draft.Category)
	if draft.Details != nil {
		rec.Set("details", draft.Details)
	}
}

func recordToProduct(rec *core.Record) Product {
	p := Product{
		ID:            rec.Id,
		Name:          rec.GetString("name"),
		Brand:         rec.GetString("brand"),
		Code:          rec.GetString("code"),
		BasePrice:     rec.GetFloat("base_price"),
		TaxPercent:    rec.GetFloat("tax_percent"),
		MarkupPercent: rec.GetFloat("markup_percent"),
		PowerW:        rec.GetFloat("power_w"),
		MaxVoltage:    rec.GetFloat("max_voltage"),
		StringCount:   rec.GetInt("string_count"),
		MaxCurrent:    rec.GetFloat("max_current"),
		Category:      rec.GetString("category"),
	}

	details := map[string]string{}
	if err := rec.UnmarshalJSONField("details", &details); err == nil && len(details) > 0 {
		p.Details = details
	} else if err != nil {
		log.Printf("catalog: product %s has malformed details: %v", rec.Id, err)
	}
	return p
}
