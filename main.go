package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"

	"solarquote/collections"
	"solarquote/handlers"
)

func main() {
	// Optional .env with company details for the quote header.
	if err := godotenv.Load(); err != nil {
		log.Printf("main: no .env file loaded: %v", err)
	}

	app := pocketbase.New()

	// Load the demo catalog without starting the server.
	app.RootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Create the products collection and load the demo catalog",
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.Bootstrap(); err != nil {
				log.Fatal(err)
			}
			collections.Setup(app)
			if err := collections.Seed(app); err != nil {
				log.Fatal(err)
			}
		},
	})

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Catalog CRUD ─────────────────────────────────────────
		se.Router.GET("/catalog/products", handlers.HandleProductList(app)).Bind(apis.RequireAuth())
		se.Router.POST("/catalog/products", handlers.HandleProductCreate(app)).Bind(apis.RequireAuth())
		se.Router.GET("/catalog/products/{id}", handlers.HandleProductView(app)).Bind(apis.RequireAuth())
		se.Router.POST("/catalog/products/{id}", handlers.HandleProductUpdate(app)).Bind(apis.RequireAuth())
		se.Router.DELETE("/catalog/products/{id}", handlers.HandleProductDelete(app)).Bind(apis.RequireAuth())

		// ── Bulk import & export ─────────────────────────────────
		se.Router.GET("/catalog/import/template", handlers.HandleImportTemplateDownload(app)).Bind(apis.RequireAuth())
		se.Router.POST("/catalog/import", handlers.HandleProductImport(app)).Bind(apis.RequireAuth())
		se.Router.GET("/catalog/export", handlers.HandleCatalogExportExcel(app)).Bind(apis.RequireAuth())

		// ── Consumption & budget ─────────────────────────────────
		se.Router.POST("/consumption", handlers.HandleConsumption(app)).Bind(apis.RequireAuth())
		se.Router.GET("/budget/options", handlers.HandleBudgetOptions(app)).Bind(apis.RequireAuth())
		se.Router.POST("/budget/quote", handlers.HandleBudgetQuote(app)).Bind(apis.RequireAuth())

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
