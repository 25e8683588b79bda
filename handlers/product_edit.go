package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// HandleProductUpdate handles POST /catalog/products/{id} (admin only).
// The product is overwritten in place; there is no versioning, and
// concurrent edits are last write wins.
func HandleProductUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := requireAdmin(e); err != nil {
			return err
		}
		if err := e.Request.ParseForm(); err != nil {
			return apis.NewBadRequestError("Invalid form data.", err)
		}

		id := e.Request.PathValue("id")
		if _, err := services.FindProductByID(app, id); err != nil {
			return apis.NewNotFoundError("Product not found.", err)
		}

		draft, err := parseProductDraft(e)
		if err != nil {
			return err
		}

		product, saveErr := services.UpdateProduct(app, id, draft)
		if saveErr != nil {
			return apis.NewInternalServerError("Could not update the product.", saveErr)
		}
		return e.JSON(http.StatusOK, toProductResponse(*product))
	}
}
