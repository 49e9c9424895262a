package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	cartDelivery "github.com/emre/storefront/internal/cart/delivery/http"
	cartRepository "github.com/emre/storefront/internal/cart/repository"
	cartStore "github.com/emre/storefront/internal/cart/store"
	catalogDelivery "github.com/emre/storefront/internal/catalog/delivery/http"
	"github.com/emre/storefront/internal/catalog/provider"
	"github.com/emre/storefront/internal/config"
	themeDelivery "github.com/emre/storefront/internal/theme/delivery/http"
	themeRepository "github.com/emre/storefront/internal/theme/repository"
	themeStore "github.com/emre/storefront/internal/theme/store"
	"github.com/emre/storefront/pkg/kvstore"
	"github.com/emre/storefront/pkg/logger"
	"github.com/emre/storefront/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Flags override the environment
	port := pflag.StringP("port", "p", cfg.HTTPPort, "HTTP listen port")
	dataDir := pflag.StringP("data-dir", "d", cfg.DataDir, "Directory for file-backed persistence")
	pflag.Parse()
	cfg.HTTPPort = *port
	cfg.DataDir = *dataDir

	logger.Init("storefront", cfg.LogLevel, cfg.IsDevelopment())

	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer("storefront")
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	kv, err := newKVStore(cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize persistence")
	}

	// Stores start empty/light; persisted state is restored without
	// blocking startup, matching the transient-empty render allowance.
	carts := cartStore.New(cartRepository.NewKVCartRepository(kv))
	themes := themeStore.New(themeRepository.NewKVThemeRepository(kv))
	go carts.Load(context.Background())
	go themes.Load(context.Background())

	catalog := provider.NewStaticProvider(cfg.CatalogListDelay, cfg.CatalogItemDelay)

	router := mux.NewRouter()
	catalogDelivery.NewCatalogHandler(catalog).RegisterRoutes(router)
	cartDelivery.NewCartHandler(carts, catalog).RegisterRoutes(router)
	themeDelivery.NewThemeHandler(themes).RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"storefront"}`))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	var handler http.Handler = c.Handler(router)
	if cfg.TracingEnabled {
		handler = otelhttp.NewHandler(handler, "storefront")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("backend", cfg.StorageBackend).
			Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

// newKVStore selects the persistence backend from configuration
func newKVStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.StorageBackend {
	case "redis":
		client, err := kvstore.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return kvstore.NewRedisStore(client), nil
	default:
		return kvstore.NewFileStore(cfg.DataDir)
	}
}
