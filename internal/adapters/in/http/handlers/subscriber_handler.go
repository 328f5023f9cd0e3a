// internal/adapters/in/http/handlers/subscriber_handler.go
package handlers

import (
	"net/http"

	usecase "elanor/internal/application/usecase"
	subdom "elanor/internal/domain/subscriber"
)

// SubscribeHandler takes mailing-list signups.
//
// Routes:
// - POST /subscribe
type SubscribeHandler struct {
	UC *usecase.SubscriberUsecase
}

func NewSubscribeHandler(uc *usecase.SubscriberUsecase) http.Handler {
	return &SubscribeHandler{UC: uc}
}

type subscribeRequest struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

func (h *SubscribeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.UC == nil {
		internalError(w, "subscribe handler is not ready")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var body subscribeRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	s := subdom.Subscriber{Email: body.Email}
	if body.Name != nil {
		s.Name = *body.Name
	}

	id, err := h.UC.Subscribe(r.Context(), s)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"id":     id,
	})
}
