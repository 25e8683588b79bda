package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// HandleImportTemplateDownload handles GET /catalog/import/template?category=
// (admin only). It returns a styled .xlsx with the category's expected
// header row.
func HandleImportTemplateDownload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := requireAdmin(e); err != nil {
			return err
		}

		category := e.Request.URL.Query().Get("category")
		if !services.ValidCategory(category) {
			return apis.NewBadRequestError("Unknown category.", nil)
		}

		xlsxBytes, err := services.GenerateImportTemplate(category)
		if err != nil {
			log.Printf("import_template: %v", err)
			return apis.NewInternalServerError("Failed to generate the template.", err)
		}

		filename := fmt.Sprintf("product_import_%s.xlsx", category)
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleProductImport handles POST /catalog/import (admin only). The
// request is a multipart form with a declared category and a .csv or .xlsx
// file; every data row becomes a product, with malformed cells defaulted
// rather than rejected.
func HandleProductImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := requireAdmin(e); err != nil {
			return err
		}

		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return apis.NewBadRequestError("File too large or invalid form data.", err)
		}

		category := e.Request.FormValue("category")
		if !services.ValidCategory(category) {
			return apis.NewBadRequestError("Unknown category.", nil)
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return apis.NewBadRequestError("Please select a file to upload.", err)
		}
		defer file.Close()

		headers, rows, err := services.ParseProductFile(file, header.Filename)
		if err != nil {
			log.Printf("product_import: %v", err)
			return apis.NewBadRequestError(err.Error(), err)
		}

		drafts, err := services.MapRows(category, headers, rows)
		if err != nil {
			return apis.NewBadRequestError(err.Error(), err)
		}

		created := 0
		for i, draft := range drafts {
			if _, err := services.CreateProduct(app, draft); err != nil {
				log.Printf("product_import: row %d failed: %v", i+2, err)
				continue
			}
			created++
		}

		return e.JSON(http.StatusOK, map[string]any{
			"category":   category,
			"total_rows": len(rows),
			"created":    created,
		})
	}
}
