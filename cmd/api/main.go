package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/amakha/storefront-backend/api/controllers"
	"github.com/amakha/storefront-backend/api/routes"
	"github.com/amakha/storefront-backend/internal/auth"
	"github.com/amakha/storefront-backend/internal/cart"
	"github.com/amakha/storefront-backend/internal/catalog"
	"github.com/amakha/storefront-backend/internal/checkout"
	"github.com/amakha/storefront-backend/internal/orders"
	"github.com/amakha/storefront-backend/internal/seed"
	"github.com/amakha/storefront-backend/pkg/auth/session"
	"github.com/amakha/storefront-backend/pkg/config"
	"github.com/amakha/storefront-backend/pkg/logger"
	"github.com/amakha/storefront-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	fixture, err := seed.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load seed fixture", err)
		os.Exit(1)
	}

	catalogRepo := catalog.NewRepository(fixture.Products)
	catalogService, err := catalog.NewService(catalogRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartStore := cart.NewStore()
	cartService, err := cart.NewService(cartStore, catalogRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	ordersRepo := orders.NewRepository(fixture.Orders)
	ordersService, err := orders.NewService(ordersRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(cartStore, ordersRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	sessions := session.NewManager()

	adminVerifier, err := auth.NewAdminVerifier(cfg.Admin)
	if err != nil {
		logg.Error(context.Background(), "failed to create admin verifier", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		Sessions:      sessions,
		AdminVerifier: adminVerifier,
		JWTConfig:     cfg.JWT,
		AdminConfig:   cfg.Admin,
		Logger:        logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	probes := []controllers.ReadinessProbe{
		{
			Name: "catalog",
			Check: func(context.Context) error {
				if len(catalogRepo.List()) == 0 {
					return fmt.Errorf("catalog is empty")
				}
				return nil
			},
		},
		{
			Name: "orders",
			Check: func(context.Context) error {
				if len(ordersRepo.List()) == 0 {
					return fmt.Errorf("order book is empty")
				}
				return nil
			},
		},
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"products": len(fixture.Products),
		"orders":   len(fixture.Orders),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			Sessions:    sessions,
			HTTPMetrics: metrics.NewHTTPMetrics(registry),
			Registry:    registry,
			Probes:      probes,
			Catalog:     catalogService,
			Cart:        cartService,
			Checkout:    checkoutService,
			Orders:      ordersService,
			Auth:        authService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
