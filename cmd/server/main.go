package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tripmate/internal/api"
	"github.com/mmynk/tripmate/internal/auth"
	"github.com/mmynk/tripmate/internal/config"
	"github.com/mmynk/tripmate/internal/destinations"
	"github.com/mmynk/tripmate/internal/directory"
	"github.com/mmynk/tripmate/internal/lifecycle"
	"github.com/mmynk/tripmate/internal/metrics"
	"github.com/mmynk/tripmate/internal/middleware"
	"github.com/mmynk/tripmate/internal/notify"
	"github.com/mmynk/tripmate/internal/places"
	"github.com/mmynk/tripmate/internal/service"
	"github.com/mmynk/tripmate/internal/storage/sqlite"
	"github.com/mmynk/tripmate/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	cache := directory.NewCache(store)
	manager := lifecycle.NewManager(store, notify.NewDispatcher(store), cache,
		lifecycle.IdentityFunc(middleware.GetUserID))

	var searcher destinations.Searcher
	if cfg.PlacesAPIKey != "" {
		searcher = places.NewClient(cfg.PlacesBaseURL, cfg.PlacesAPIKey, nil)
	} else {
		slog.Warn("PLACES_API_KEY not set, place search disabled")
	}
	catalog := destinations.NewCatalog(store, searcher)

	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		metrics.RPCInterceptor(),
		middleware.RequireAuth(jwtManager, api.AuthServiceRegisterProcedure, api.AuthServiceLoginProcedure),
	)

	mux := http.NewServeMux()
	mux.Handle(api.NewAuthServiceHandler(
		service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store, cache), interceptors))
	mux.Handle(api.NewGroupServiceHandler(service.NewGroupService(manager, store, cfg.NavDelay), interceptors))
	mux.Handle(api.NewUserServiceHandler(service.NewUserService(cache, store, catalog), interceptors))
	mux.Handle(api.NewDestinationServiceHandler(service.NewDestinationService(catalog), interceptors))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Connect server starting", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
