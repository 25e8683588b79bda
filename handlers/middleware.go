// Package handlers wires the HTTP surface of the solar quote service.
package handlers

import (
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// requireAdmin enforces the privileged-caller precondition for catalog
// mutation, bulk import and downloads. The catalog store itself performs no
// permission checks; every mutating handler calls this first.
func requireAdmin(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Sign in to manage the catalog.", nil)
	}
	if e.Auth.IsSuperuser() || e.Auth.GetString("role") == "admin" {
		return nil
	}
	return apis.NewForbiddenError("You do not have permission to perform this action.", nil)
}
