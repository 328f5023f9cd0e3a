// internal/adapters/in/http/handlers/root_handler.go
package handlers

import "net/http"

// RootHandler answers the bare liveness message on "/".
//
// Routes:
// - GET /
type RootHandler struct{}

func NewRootHandler() http.Handler {
	return &RootHandler{}
}

func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// "/" on a ServeMux is a catch-all; anything longer is a miss.
	if r.URL.Path != "/" {
		notFound(w)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Elanor API running"})
}
