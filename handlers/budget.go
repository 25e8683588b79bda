package handlers

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// budgetCategory groups the selectable products of one category for the
// manual budget form.
type budgetCategory struct {
	Key      string            `json:"key"`
	Label    string            `json:"label"`
	Products []productResponse `json:"products"`
}

// HandleBudgetOptions handles GET /budget/options. It returns the products
// of every category in the fixed order so the caller can build the manual
// selection form.
func HandleBudgetOptions(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		categories := make([]budgetCategory, 0, len(services.CategoryOrder))
		for _, key := range services.CategoryOrder {
			products, err := services.FindProductsByCategory(app, key)
			if err != nil {
				return apis.NewInternalServerError("Could not load products.", err)
			}
			items := make([]productResponse, 0, len(products))
			for _, p := range products {
				items = append(items, toProductResponse(p))
			}
			categories = append(categories, budgetCategory{
				Key:      key,
				Label:    services.CategoryLabel(key),
				Products: items,
			})
		}
		return e.JSON(http.StatusOK, map[string]any{"categories": categories})
	}
}

// HandleBudgetQuote handles POST /budget/quote. The request carries the
// consumption figures from the previous step plus one optional product id
// and quantity per category; the response is the quote PDF download.
func HandleBudgetQuote(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return apis.NewBadRequestError("Invalid form data.", err)
		}

		summary, ok := parseConsumptionContext(e)
		if !ok {
			return apis.NewBadRequestError(
				"Consumption data missing. Submit the monthly readings again.", nil)
		}

		selections := parseSelections(e)
		quote := services.AssembleQuote(app, summary, selections)

		pdfBytes, err := services.GenerateQuotePDF(companyFromEnv(), quote)
		if err != nil {
			log.Printf("budget: quote PDF generation failed: %v", err)
			return apis.NewInternalServerError("Could not generate the quote document.", err)
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="solar_quote.pdf"`)
		e.Response.Write(pdfBytes)
		return nil
	}
}

// parseConsumptionContext reads the consumption figures handed back by the
// client. Both fields must parse as non-negative numbers; otherwise the
// budget step was entered without a prior consumption submission.
func parseConsumptionContext(e *core.RequestEvent) (services.ConsumptionSummary, bool) {
	annual, err1 := strconv.ParseFloat(strings.TrimSpace(e.Request.FormValue("annual_total")), 64)
	monthly, err2 := strconv.ParseFloat(strings.TrimSpace(e.Request.FormValue("monthly_average")), 64)
	if err1 != nil || err2 != nil || annual < 0 || monthly < 0 {
		return services.ConsumptionSummary{}, false
	}
	return services.ConsumptionSummary{AnnualTotal: annual, MonthlyAverage: monthly}, true
}

// parseSelections reads one optional product id and quantity per category.
// An absent or malformed quantity defaults to 1; everything else about a
// selection is validated during assembly.
func parseSelections(e *core.RequestEvent) services.BudgetSelection {
	selections := services.BudgetSelection{}
	for _, category := range services.CategoryOrder {
		productID := strings.TrimSpace(e.Request.FormValue(category))
		if productID == "" {
			continue
		}
		selections[category] = services.Selection{
			ProductID: productID,
			Qty:       parseQty(e.Request.FormValue("qty_" + category)),
		}
	}
	return selections
}

func parseQty(s string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return qty
}

// companyFromEnv builds the quote letterhead from the environment, with
// defaults for a bare install.
func companyFromEnv() services.CompanyInfo {
	info := services.CompanyInfo{
		Name:    "Solar Installations",
		Address: "",
		Email:   "",
	}
	if v := os.Getenv("COMPANY_NAME"); v != "" {
		info.Name = v
	}
	if v := os.Getenv("COMPANY_ADDRESS"); v != "" {
		info.Address = v
	}
	if v := os.Getenv("COMPANY_EMAIL"); v != "" {
		info.Email = v
	}
	return info
}
