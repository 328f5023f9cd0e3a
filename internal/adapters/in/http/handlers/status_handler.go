// internal/adapters/in/http/handlers/status_handler.go
package handlers

import (
	"net/http"

	fsout "elanor/internal/adapters/out/firestore"
)

// maxCollectionsListed caps the collections echoed by the report.
const maxCollectionsListed = 10

// statusReport mirrors the /test contract. Nullable fields stay null until
// the store connection exists.
type statusReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// StatusHandler reports store connectivity. It never fails: every store
// error is caught and folded into the report body.
//
// Routes:
// - GET /test
type StatusHandler struct {
	Store *fsout.Store

	DatabaseURLSet bool
	DatabaseName   string
}

func NewStatusHandler(store *fsout.Store, databaseURLSet bool, databaseName string) http.Handler {
	return &StatusHandler{
		Store:          store,
		DatabaseURLSet: databaseURLSet,
		DatabaseName:   databaseName,
	}
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	report := statusReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h == nil || h.Store == nil || !h.Store.Available() {
		writeJSON(w, http.StatusOK, report)
		return
	}

	report.Database = "✅ Available"
	report.ConnectionStatus = "Connected"

	urlStatus := "❌ Not Set"
	if h.DatabaseURLSet {
		urlStatus = "✅ Set"
	}
	report.DatabaseURL = &urlStatus

	if h.DatabaseName != "" {
		name := h.DatabaseName
		report.DatabaseName = &name
	}

	names, err := h.Store.CollectionNames(r.Context())
	if err != nil {
		report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
	} else {
		if len(names) > maxCollectionsListed {
			names = names[:maxCollectionsListed]
		}
		report.Collections = names
		report.Database = "✅ Connected & Working"
	}

	writeJSON(w, http.StatusOK, report)
}
