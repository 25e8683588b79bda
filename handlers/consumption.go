package handlers

import (
	"fmt"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// HandleConsumption handles POST /consumption with fields month1..month12.
// Malformed or missing months count as zero; the endpoint never rejects a
// reading. The summary is transient: nothing is stored, and the client
// carries the figures forward into the budget step.
func HandleConsumption(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return apis.NewBadRequestError("Invalid form data.", err)
		}

		raw := make([]string, services.MonthsPerYear)
		for i := range raw {
			raw[i] = e.Request.FormValue(fmt.Sprintf("month%d", i+1))
		}

		summary := services.AggregateConsumption(raw)
		return e.JSON(http.StatusOK, summary)
	}
}
