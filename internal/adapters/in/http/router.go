// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"elanor/internal/adapters/in/http/handlers"
	fsout "elanor/internal/adapters/out/firestore"
	usecase "elanor/internal/application/usecase"
)

// RouterDeps collects all usecases (and other dependencies) injected from main.go.
type RouterDeps struct {
	CatalogUC    *usecase.CatalogUsecase
	SubscriberUC *usecase.SubscriberUsecase
	OrderUC      *usecase.OrderUsecase

	// Status report inputs (/test must answer even when the store is down,
	// so the handler gets the store adapter itself, not a usecase).
	Store          *fsout.Store
	DatabaseURLSet bool
	DatabaseName   string
}

// NewRouter sets up HTTP routing for all storefront endpoints.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/test", handlers.NewStatusHandler(deps.Store, deps.DatabaseURLSet, deps.DatabaseName))

	if deps.CatalogUC != nil {
		mux.Handle("/seed", handlers.NewSeedHandler(deps.CatalogUC))
		mux.Handle("/fragrances", handlers.NewFragranceHandler(deps.CatalogUC))
		mux.Handle("/fragrances/", handlers.NewFragranceHandler(deps.CatalogUC))
	}

	if deps.SubscriberUC != nil {
		mux.Handle("/subscribe", handlers.NewSubscribeHandler(deps.SubscriberUC))
	}

	if deps.OrderUC != nil {
		mux.Handle("/order", handlers.NewOrderHandler(deps.OrderUC))
	}

	// Catch-all last: exact "/" answers, everything unknown is 404.
	mux.Handle("/", handlers.NewRootHandler())

	return mux
}
