package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// HandleCatalogExportExcel handles GET /catalog/export (admin only) and
// downloads the whole catalog as an .xlsx file.
func HandleCatalogExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := requireAdmin(e); err != nil {
			return err
		}

		xlsxBytes, err := services.GenerateCatalogExcel(app)
		if err != nil {
			log.Printf("catalog_export: failed to generate: %v", err)
			return apis.NewInternalServerError("Failed to generate the Excel file.", err)
		}

		filename := fmt.Sprintf("catalog_%d.xlsx", time.Now().Year())
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
