package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type productDef struct {
	name          string
	brand         string
	code          string
	basePrice     float64
	taxPercent    float64
	markupPercent float64
	powerW        float64
	maxVoltage    float64
	stringCount   int
	maxCurrent    float64
	category      string
	details       map[string]string
}

// demoCatalog covers every category so a fresh install can assemble a full
// quote immediately.
var demoCatalog = []productDef{
	{
		name: "Growatt MIN 5000TL-X", brand: "Growatt", code: "INV-5000",
		basePrice: 1000, taxPercent: 15, markupPercent: 20,
		powerW: 5000, maxVoltage: 550, stringCount: 2, maxCurrent: 13.5,
		category: "inverter",
		details:  map[string]string{"phases": "1", "warranty_years": "10"},
	},
	{
		name: "Growatt MOD 10KTL3-X", brand: "Growatt", code: "INV-10000",
		basePrice: 1750, taxPercent: 15, markupPercent: 20,
		powerW: 10000, maxVoltage: 1100, stringCount: 2, maxCurrent: 26,
		category: "inverter",
		details:  map[string]string{"phases": "3", "warranty_years": "10"},
	},
	{
		name: "Trina Vertex S 425W", brand: "Trina Solar", code: "PAN-425",
		basePrice: 120, taxPercent: 10.5, markupPercent: 25,
		powerW: 425, maxVoltage: 41.7, maxCurrent: 12.9,
		category: "panel",
		details:  map[string]string{"cell_type": "Monocrystalline PERC", "dimensions": "1754x1096x30mm"},
	},
	{
		name: "JA Solar 550W Bifacial", brand: "JA Solar", code: "PAN-550",
		basePrice: 155, taxPercent: 10.5, markupPercent: 25,
		powerW: 550, maxVoltage: 49.9, maxCurrent: 13.9,
		category: "panel",
		details:  map[string]string{"cell_type": "Bifacial Mono", "dimensions": "2278x1134x30mm"},
	},
	{
		name: "Suntree DC Breaker 2P 600V", brand: "Suntree", code: "DCP-600",
		basePrice: 28, taxPercent: 21, markupPercent: 30,
		maxVoltage: 600, maxCurrent: 32,
		category: "dc_protection",
		details:  map[string]string{"poles": "2"},
	},
	{
		name: "Schneider AC Breaker 2P 40A", brand: "Schneider", code: "ACP-40",
		basePrice: 35, taxPercent: 21, markupPercent: 30,
		maxVoltage: 240, maxCurrent: 40,
		category: "ac_protection",
		details:  map[string]string{"poles": "2", "breaking_capacity": "6kA"},
	},
	{
		name: "Aluminium Rail Kit 4 Panels", brand: "SolarRack", code: "STR-4P",
		basePrice: 95, taxPercent: 21, markupPercent: 35,
		category: "structure",
		details:  map[string]string{"material": "Anodized aluminium", "roof_type": "Tile"},
	},
	{
		name: "Solar Cable 6mm2 Black (100m)", brand: "Prysmian", code: "CAB-6B",
		basePrice: 110, taxPercent: 21, markupPercent: 25,
		maxVoltage: 1500, maxCurrent: 55,
		category: "cable",
		details:  map[string]string{"section_mm2": "6", "color": "Black"},
	},
	{
		name: "MC4 Connector Pair", brand: "Staubli", code: "CON-MC4",
		basePrice: 4.5, taxPercent: 21, markupPercent: 40,
		maxVoltage: 1500, maxCurrent: 30,
		category: "connector",
		details:  map[string]string{"connector_type": "MC4"},
	},
}

// Seed loads the demo catalog. It is idempotent: when any product already
// exists, seeding is skipped entirely.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("products collection missing: %w", err)
	}

	existing, err := app.FindRecordsByFilter(col, "1=1", "", 1, 0, nil)
	if err != nil {
		return fmt.Errorf("check existing products: %w", err)
	}
	if len(existing) > 0 {
		log.Println("Seed: products already present, skipping.")
		return nil
	}

	for _, def := range demoCatalog {
		rec := core.NewRecord(col)
		rec.Set("name", def.name)
		rec.Set("brand", def.brand)
		rec.Set("code", def.code)
		rec.Set("base_price", def.basePrice)
		rec.Set("tax_percent", def.taxPercent)
		rec.Set("markup_percent", def.markupPercent)
		rec.Set("power_w", def.powerW)
		rec.Set("max_voltage", def.maxVoltage)
		rec.Set("string_count", def.stringCount)
		rec.Set("max_current", def.maxCurrent)
		rec.Set("category", def.category)
		if def.details != nil {
			rec.Set("details", def.details)
		}
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed product %q: %w", def.name, err)
		}
	}

	fmt.Printf("Seeded %d demo products\n", len(demoCatalog))
	return nil
}
