// Package testhelpers provides utilities for testing PocketBase-based
// applications.
package testhelpers

import (
	"fmt"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test
// finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestProduct creates a product record with the given pricing fields
// and returns it.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, name, category string, basePrice, taxPercent, markupPercent float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("category", category)
	record.Set("base_price", basePrice)
	record.Set("tax_percent", taxPercent)
	record.Set("markup_percent", markupPercent)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestUser creates an auth record on the users collection with the
// given role ("admin" or "user") and returns it.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, role string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("failed to find users collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("email", fmt.Sprintf("%s-%d@example.com", role, time.Now().UnixNano()))
	record.Set("password", "test-password-123")
	record.Set("role", role)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}

	return record
}
