// internal/adapters/in/http/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	common "elanor/internal/domain/common"
)

// maxErrorDetail caps the diagnostic text surfaced for server-side failures.
// Raw driver internals stay in the logs, not in responses.
const maxErrorDetail = 120

// ============================================================
// Shared helpers
// ============================================================

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": strings.TrimSpace(msg)})
}

func internalError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": strings.TrimSpace(msg)})
}

// validationFailed enumerates every violated field (422).
func validationFailed(w http.ResponseWriter, ve *common.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": ve.Violations,
	})
}

// writeDomainError maps a usecase error onto the wire: validation failures
// become 422 with per-field detail, everything else a truncated 500.
func writeDomainError(w http.ResponseWriter, err error) {
	if ve, ok := common.AsValidationError(err); ok {
		validationFailed(w, ve)
		return
	}
	internalError(w, truncate(err.Error(), maxErrorDetail))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// decodeJSON decodes a request body with a size cap.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)) // 1MB
	return dec.Decode(dst)
}
