// cmd/api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpin "elanor/internal/adapters/in/http"
	"elanor/internal/adapters/in/http/middleware"
	"elanor/internal/platform/di"
)

func main() {
	ctx := context.Background()

	// ─────────────────────────────────────────────────────────────
	// Container wiring: store init is best-effort, so the server
	// always comes up and /test reports the real connectivity.
	// ─────────────────────────────────────────────────────────────
	cont := di.NewContainer(ctx)
	defer func() {
		if err := cont.Close(); err != nil {
			log.Printf("[boot] container close error: %v", err)
		}
	}()

	router := httpin.NewRouter(cont.RouterDeps())

	// チェーン順重要: CORS は Recover より外側
	handler := middleware.CORS(middleware.Recover(router))

	// ─────────────────────────────────────────────────────────────
	// Port resolution: config (env:PORT) → 8000
	// ─────────────────────────────────────────────────────────────
	port := cont.Config.Port
	if port == "" {
		port = "8000"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─────────────────────────────────────────────────────────────
	// Graceful shutdown
	// ─────────────────────────────────────────────────────────────
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		sig := <-c
		log.Printf("[boot] received signal: %v; shutting down...", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[boot] server shutdown error: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("[boot] listening on :%s (api)", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[boot] server error: %v", err)
	}

	<-idleConnsClosed
}
