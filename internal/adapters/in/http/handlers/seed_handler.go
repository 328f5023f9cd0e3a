// internal/adapters/in/http/handlers/seed_handler.go
package handlers

import (
	"net/http"

	usecase "elanor/internal/application/usecase"
)

// SeedHandler triggers the idempotent catalog seed.
//
// Routes:
// - POST /seed
type SeedHandler struct {
	UC *usecase.CatalogUsecase
}

func NewSeedHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &SeedHandler{UC: uc}
}

func (h *SeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.UC == nil {
		internalError(w, "seed handler is not ready")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	res, err := h.UC.Seed(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if res.AlreadySeeded {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"message": "Fragrances already seeded",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"created": res.Created,
	})
}
