// internal/adapters/in/http/handlers/fragrance_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	usecase "elanor/internal/application/usecase"
	fragdom "elanor/internal/domain/fragrance"
)

// FragranceHandler serves the buyer-facing catalog.
//
// Routes:
// - GET /fragrances
// - GET /fragrances/{slug}
type FragranceHandler struct {
	UC *usecase.CatalogUsecase
}

func NewFragranceHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &FragranceHandler{UC: uc}
}

func (h *FragranceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.UC == nil {
		internalError(w, "fragrance handler is not ready")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")

	// index: /fragrances
	if path == "/fragrances" {
		list, err := h.UC.List(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
		return
	}

	// detail: /fragrances/{slug}
	if strings.HasPrefix(path, "/fragrances/") {
		slug := strings.TrimSpace(strings.TrimPrefix(path, "/fragrances/"))
		if slug == "" || strings.Contains(slug, "/") {
			notFound(w)
			return
		}

		f, err := h.UC.GetBySlug(r.Context(), slug)
		if err != nil {
			// buyer-facing: unknown slug should be 404 (not 500)
			if errors.Is(err, fragdom.ErrNotFound) {
				notFound(w)
				return
			}
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, f)
		return
	}

	notFound(w)
}
