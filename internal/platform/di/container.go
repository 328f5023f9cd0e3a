// internal/platform/di/container.go
package di

import (
	"context"
	"log"

	httpin "elanor/internal/adapters/in/http"
	fsout "elanor/internal/adapters/out/firestore"
	"elanor/internal/adapters/out/mail"
	usecase "elanor/internal/application/usecase"
	appcfg "elanor/internal/infra/config"
	firestoreinfra "elanor/internal/infra/firestore"
)

// Container owns the long-lived resources: config, the store connection
// handle and the usecases built on it. It is constructed once at process
// start and handed to the router; nothing reaches these through globals.
type Container struct {
	Config *appcfg.Config

	// Firestore is nil when the connection could not be established; the
	// Store then runs in its documented degraded state and every endpoint
	// still answers (/test reports "Not Connected").
	Firestore *firestoreinfra.ClientWrapper
	Store     *fsout.Store

	CatalogUC    *usecase.CatalogUsecase
	SubscriberUC *usecase.SubscriberUsecase
	OrderUC      *usecase.OrderUsecase
}

// NewContainer wires the whole application. Store connectivity is
// best-effort: a failure is logged and the container still comes up.
func NewContainer(ctx context.Context) *Container {
	cfg := appcfg.Load()

	c := &Container{Config: cfg}

	if !cfg.HasDatabaseURL() {
		log.Printf("[boot] ⚠️ DATABASE_URL is not set; store disabled")
	} else {
		cw, err := firestoreinfra.NewClient(ctx, cfg.DatabaseURL, cfg.FirestoreCredentialsFile)
		if err != nil {
			log.Printf("[boot] ⚠️ store init failed: %v (continuing without store)", err)
		} else {
			c.Firestore = cw
		}
	}

	if c.Firestore != nil {
		c.Store = fsout.NewStore(c.Firestore.Client)
	} else {
		c.Store = fsout.NewStore(nil)
	}

	mailer := mail.NewWelcomeMailerWithSendGrid(cfg.SendGridAPIKey, cfg.SendGridFrom, cfg.ShopBaseURL)

	c.CatalogUC = usecase.NewCatalogUsecase(fsout.NewFragranceRepositoryFS(c.Store))
	c.SubscriberUC = usecase.NewSubscriberUsecase(fsout.NewSubscriberRepositoryFS(c.Store), welcomePort(mailer))
	c.OrderUC = usecase.NewOrderUsecase(fsout.NewOrderRepositoryFS(c.Store))

	return c
}

// welcomePort avoids handing the usecase a typed-nil interface when the
// mailer is disabled.
func welcomePort(m *mail.WelcomeMailer) mail.WelcomeMailerPort {
	if m == nil {
		return nil
	}
	return m
}

// RouterDeps exposes the container contents the HTTP router needs.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		CatalogUC:    c.CatalogUC,
		SubscriberUC: c.SubscriberUC,
		OrderUC:      c.OrderUC,

		Store:          c.Store,
		DatabaseURLSet: c.Config.HasDatabaseURL(),
		DatabaseName:   c.Firestore.Name(),
	}
}

// Close releases the store connection.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	return c.Firestore.Close()
}
