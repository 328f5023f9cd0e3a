// cmd/seed/main.go
package main

import (
	"context"
	"log"

	fsout "elanor/internal/adapters/out/firestore"
	usecase "elanor/internal/application/usecase"
	appcfg "elanor/internal/infra/config"
	firestoreinfra "elanor/internal/infra/firestore"
)

// Seeds the seven-sins catalog from the command line, for environments
// where POSTing /seed is inconvenient (deploy hooks, local setup).
func main() {
	ctx := context.Background()

	cfg := appcfg.Load()
	if !cfg.HasDatabaseURL() {
		log.Fatal("DATABASE_URL is not set")
	}

	cw, err := firestoreinfra.NewClient(ctx, cfg.DatabaseURL, cfg.FirestoreCredentialsFile)
	if err != nil {
		log.Fatalf("firestore client: %v", err)
	}
	defer cw.Close()

	uc := usecase.NewCatalogUsecase(fsout.NewFragranceRepositoryFS(fsout.NewStore(cw.Client)))

	res, err := uc.Seed(ctx)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	if res.AlreadySeeded {
		log.Println("fragrances already seeded")
		return
	}
	log.Printf("seeded %d fragrances from catalog.go", res.Created)
}
