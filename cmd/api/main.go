package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/strifelabs/storefront/internal/modules/catalog"
	"github.com/strifelabs/storefront/internal/modules/customer"
	"github.com/strifelabs/storefront/internal/modules/order"
	"github.com/strifelabs/storefront/internal/platform/cache"
	"github.com/strifelabs/storefront/internal/platform/config"
	"github.com/strifelabs/storefront/internal/platform/identity"
	"github.com/strifelabs/storefront/internal/platform/logging"
	"github.com/strifelabs/storefront/internal/platform/metrics"
	"github.com/strifelabs/storefront/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logging.New(cfg.LogLevel)

	// The store connection is the one fail-fast dependency: without
	// all four options the facade is unusable.
	if err := cfg.ValidateStore(); err != nil {
		log.WithError(err).Fatal("store configuration is incomplete")
	}
	docStore, err := store.Open(store.Options{
		Certificate:         cfg.Certificate,
		CertificatePassword: cfg.CertificatePassword,
		DatabaseURLs:        cfg.DatabaseURLs,
		Database:            cfg.Database,
	})
	if err != nil {
		log.WithError(err).Fatal("could not open the document store")
	}
	defer docStore.Close()
	log.Info("connected to the document store")

	var productCache cache.Cache
	if cfg.RedisAddr != "" {
		productCache = cache.NewRedisCache(cfg.RedisAddr, "storefront")
		log.WithField("addr", cfg.RedisAddr).Info("using redis product cache")
	} else {
		productCache = cache.NewMemoryCache("storefront")
	}

	apiMetrics := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(apiMetrics.Middleware)

	catalogService := catalog.NewService(docStore, productCache, log)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	customerService := customer.NewService(identity.PrefixedGenerator{Prefix: "customer"})
	customer.NewHandler(customerService).RegisterRoutes(router)

	orderRegistry := order.NewMemoryRegistry()
	orderService := order.NewService(orderRegistry, identity.PrefixedGenerator{Prefix: "order"}, identity.NewSequence(1001))
	order.NewHandler(orderService).RegisterRoutes(router)

	router.Method(http.MethodGet, "/metrics", apiMetrics.Handler())

	log.WithField("port", cfg.Port).Info("storefront API listening")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
