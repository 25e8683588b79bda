// Package collections creates and seeds the application's PocketBase
// collections.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

// Setup programmatically ensures the products collection exists and that
// the built-in users auth collection carries a role field.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "products", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "brand", Required: false})
		c.Fields.Add(&core.TextField{Name: "code", Required: false})
		c.Fields.Add(&core.NumberField{Name: "base_price", Required: false, Min: types.Pointer(0.0)})
		c.Fields.Add(&core.NumberField{Name: "tax_percent", Required: false})
		c.Fields.Add(&core.NumberField{Name: "markup_percent", Required: false})
		c.Fields.Add(&core.NumberField{Name: "power_w", Required: false})
		c.Fields.Add(&core.NumberField{Name: "max_voltage", Required: false})
		c.Fields.Add(&core.NumberField{Name: "string_count", Required: false, OnlyInt: true})
		c.Fields.Add(&core.NumberField{Name: "max_current", Required: false})
		// Keep in sync with services.CategoryOrder.
		c.Fields.Add(&core.SelectField{
			Name:     "category",
			Required: true,
			Values: []string{
				"inverter", "panel", "dc_protection", "ac_protection",
				"structure", "cable", "connector",
			},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.JSONField{Name: "details"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureUserRoleField(app)
}

// ensureUserRoleField adds the role select field to the users auth
// collection when it is missing. Privileged operations require role=admin.
func ensureUserRoleField(app *pocketbase.PocketBase) {
	users, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		log.Printf("setup: users collection not found: %v", err)
		return
	}
	if users.Fields.GetByName("role") != nil {
		return
	}

	users.Fields.Add(&core.SelectField{
		Name:      "role",
		Required:  false,
		Values:    []string{"admin", "user"},
		MaxSelect: 1,
	})
	if err := app.Save(users); err != nil {
		log.Fatalf("Failed to add role field to users: %v", err)
	}
	fmt.Println(`Added "role" field to users collection`)
}

// ensureCollection checks if a collection already exists by name. If it
// does, the existing collection is returned. Otherwise a new base
// collection is created, the addFields callback is invoked to populate its
// fields, and the collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
