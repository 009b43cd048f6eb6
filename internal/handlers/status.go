package handlers

import (
	"context"
	"net/http"
	"os"
)

// Diagnostics is the slice of the store the status handler needs.
type Diagnostics interface {
	Name() string
	CollectionNames(ctx context.Context) ([]string, error)
}

// StatusHandler serves the root banner and the database diagnostic endpoint.
type StatusHandler struct {
	store Diagnostics
}

// NewStatusHandler creates a new status handler. The store may be nil when
// the database never came up; the diagnostic endpoint reports that instead
// of failing.
func NewStatusHandler(store Diagnostics) *StatusHandler {
	return &StatusHandler{store: store}
}

// Root returns the service banner.
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Car Rental Backend is running"})
}

// DiagnosticResponse is the body of the /test endpoint.
type DiagnosticResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Test reports backend and database health. It never fails: any error from
// the store is stringified into the response body, truncated to 50 characters.
func (h *StatusHandler) Test(w http.ResponseWriter, r *http.Request) {
	resp := DiagnosticResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.store != nil {
		resp.Database = "✅ Available"
		resp.ConnectionStatus = "Connected"

		collections, err := h.store.CollectionNames(r.Context())
		if err != nil {
			resp.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			resp.Collections = collections
			resp.Database = "✅ Connected & Working"
		}
	}

	resp.DatabaseURL = envStatus("DATABASE_URL")
	resp.DatabaseName = envStatus("DATABASE_NAME")

	writeJSON(w, http.StatusOK, resp)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
