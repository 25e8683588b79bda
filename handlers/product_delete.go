package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// HandleProductDelete handles DELETE /catalog/products/{id} (admin only).
func HandleProductDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := requireAdmin(e); err != nil {
			return err
		}

		id := e.Request.PathValue("id")
		if _, err := services.FindProductByID(app, id); err != nil {
			return apis.NewNotFoundError("Product not found.", err)
		}

		if err := services.DeleteProduct(app, id); err != nil {
			return apis.NewInternalServerError("Could not delete the product.", err)
		}
		return e.JSON(http.StatusOK, map[string]string{"status": "deleted", "id": id})
	}
}
