// Seeds the remote product collection with the fallback catalog. Useful
// for fresh environments and the Firestore emulator; documents that
// already exist are left untouched.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/joho/godotenv"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/fallback"
	"github.com/light-bringer/agrocart-service/internal/app/catalog/repo"
	"github.com/light-bringer/agrocart-service/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on system environment")
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to create Firestore client: %w", err)
	}
	defer client.Close()

	source := repo.NewFirestoreSource(client, cfg.Firestore.ProductsCollection)

	var created, skipped int
	for _, p := range fallback.All() {
		if err := source.Create(ctx, p); err != nil {
			if status.Code(err) == codes.AlreadyExists {
				skipped++
				continue
			}
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
		created++
	}

	slog.Info("seed complete",
		"collection", cfg.Firestore.ProductsCollection,
		"created", created,
		"skipped", skipped,
	)
	return nil
}
