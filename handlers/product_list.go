package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// productResponse is a Product plus its derived final price. The final
// price is recomputed on every read, never stored.
type productResponse struct {
	services.Product
	FinalPrice float64 `json:"final_price"`
}

func toProductResponse(p services.Product) productResponse {
	return productResponse{Product: p, FinalPrice: services.FinalPrice(p)}
}

// HandleProductList handles GET /catalog/products?category=
// Without a category it returns the whole catalog in category order.
func HandleProductList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := e.Request.URL.Query().Get("category")

		var products []services.Product
		var err error
		if category != "" {
			if !services.ValidCategory(category) {
				return apis.NewBadRequestError("Unknown category.", nil)
			}
			products, err = services.FindProductsByCategory(app, category)
		} else {
			products, err = services.FindAllProducts(app)
		}
		if err != nil {
			return apis.NewInternalServerError("Could not load products.", err)
		}

		items := make([]productResponse, 0, len(products))
		for _, p := range products {
			items = append(items, toProductResponse(p))
		}
		return e.JSON(http.StatusOK, map[string]any{
			"products": items,
			"total":    len(items),
		})
	}
}

// HandleProductView handles GET /catalog/products/{id}
func HandleProductView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		product, err := services.FindProductByID(app, id)
		if err != nil {
			return apis.NewNotFoundError("Product not found.", err)
		}
		return e.JSON(http.StatusOK, toProductResponse(*product))
	}
}
