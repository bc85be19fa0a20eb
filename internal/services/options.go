package services

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"

	"github.com/light-bringer/agrocart-service/internal/app/cart"
	"github.com/light-bringer/agrocart-service/internal/app/catalog/fetcher"
	"github.com/light-bringer/agrocart-service/internal/app/catalog/repo"
	catalogstore "github.com/light-bringer/agrocart-service/internal/app/catalog/store"
	"github.com/light-bringer/agrocart-service/internal/app/retailer"
	"github.com/light-bringer/agrocart-service/internal/config"
	"github.com/light-bringer/agrocart-service/internal/pkg/clock"
	httptransport "github.com/light-bringer/agrocart-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	FirestoreClient *firestore.Client
	Catalog         *catalogstore.Store
	Cart            *cart.Store
	Fetcher         *fetcher.Fetcher
	Retailers       *retailer.Registry
	Handler         *httptransport.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log *slog.Logger) (*ServiceOptions, error) {
	// 1. Initialize the Firestore client
	fsClient, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	source := repo.NewFirestoreSource(fsClient, cfg.Firestore.ProductsCollection)

	// 3. Create the state engines
	f := fetcher.New(source, log)
	catalog := catalogstore.New(f)
	cartStore := cart.NewStore()
	retailers := retailer.NewRegistry(source, clk)

	// 4. Create the HTTP handler
	handler := httptransport.NewHandler(catalog, cartStore, f, retailers, log)

	return &ServiceOptions{
		FirestoreClient: fsClient,
		Catalog:         catalog,
		Cart:            cartStore,
		Fetcher:         f,
		Retailers:       retailers,
		Handler:         handler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.FirestoreClient != nil {
		s.FirestoreClient.Close()
	}
}
