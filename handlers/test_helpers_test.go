package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/router"

	"solarquote/testhelpers"
)

// newTestRequestEvent builds a RequestEvent the way the router would,
// without going through the full serve stack.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, w http.ResponseWriter) *core.RequestEvent {
	event := &core.RequestEvent{}
	event.App = app
	event.Request = req
	event.Response = w
	return event
}

// newAuthedRequestEvent is newTestRequestEvent with an authenticated user
// of the given role attached.
func newAuthedRequestEvent(t *testing.T, app *pocketbase.PocketBase, req *http.Request, w http.ResponseWriter, role string) *core.RequestEvent {
	t.Helper()
	event := newTestRequestEvent(app, req, w)
	event.Auth = testhelpers.CreateTestUser(t, app, role)
	return event
}

// newFormRequest builds a POST request carrying url-encoded form values.
func newFormRequest(t *testing.T, path string, form url.Values) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// assertAPIError fails unless err is an API error with the given status.
func assertAPIError(t *testing.T, err error, wantStatus int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an API error with status %d, got nil", wantStatus)
	}
	apiErr, ok := err.(*router.ApiError)
	if !ok {
		t.Fatalf("expected *router.ApiError, got %T: %v", err, err)
	}
	if apiErr.Status != wantStatus {
		t.Fatalf("error status = %d, want %d (message: %s)", apiErr.Status, wantStatus, apiErr.Message)
	}
}
