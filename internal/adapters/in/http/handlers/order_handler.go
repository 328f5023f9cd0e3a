// internal/adapters/in/http/handlers/order_handler.go
package handlers

import (
	"net/http"

	usecase "elanor/internal/application/usecase"
	orderdom "elanor/internal/domain/order"
)

// OrderHandler takes preorder / reservation requests.
//
// Routes:
// - POST /order
type OrderHandler struct {
	UC *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) http.Handler {
	return &OrderHandler{UC: uc}
}

type orderItemRequest struct {
	Slug string `json:"slug"`
	// Quantity is a pointer so "absent" can default to 1 while an explicit
	// 0 still fails validation.
	Quantity *int `json:"quantity"`
}

type orderRequest struct {
	Email string             `json:"email"`
	Name  *string            `json:"name"`
	Items []orderItemRequest `json:"items"`
	Notes *string            `json:"notes"`
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.UC == nil {
		internalError(w, "order handler is not ready")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var body orderRequest
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	o := orderdom.Order{Email: body.Email}
	if body.Name != nil {
		o.Name = *body.Name
	}
	if body.Notes != nil {
		o.Notes = *body.Notes
	}
	o.Items = make([]orderdom.Item, 0, len(body.Items))
	for _, it := range body.Items {
		qty := orderdom.DefaultQuantity
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		o.Items = append(o.Items, orderdom.Item{Slug: it.Slug, Quantity: qty})
	}

	id, err := h.UC.Place(r.Context(), o)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"id":     id,
	})
}
