package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jayparimi/beyond-january/internal/catalog"
	"github.com/jayparimi/beyond-january/internal/http/handlers"
	httpapi "github.com/jayparimi/beyond-january/internal/http/httpapi"
	"github.com/jayparimi/beyond-january/internal/infra"
	"github.com/jayparimi/beyond-january/internal/infra/geoip"
	"github.com/jayparimi/beyond-january/internal/infra/google"
	"github.com/jayparimi/beyond-january/internal/middleware"
	"github.com/jayparimi/beyond-january/internal/pulse"
	"github.com/jayparimi/beyond-january/internal/storage"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()
	runner := infra.NewSQLRunner(dbpool, logger)

	app := handlers.NewApp(cfg, logger, runner)
	app.GoogleVerifier = google.NewVerifier(cfg.GoogleIssuer, cfg.GoogleClientID)

	counter, err := pulse.New(cfg.PulseMinGapSeconds, cfg.PulseMaxGapSeconds)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid pulse configuration")
	}
	app.Pulse = counter

	store, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare storage directory")
	}
	app.Store = store

	if cfg.FeaturedCatalogPath != "" {
		loader, err := catalog.NewLoader(cfg.FeaturedCatalogPath, logger)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.FeaturedCatalogPath).Msg("failed to load featured catalog")
		}
		stopWatch, err := loader.Watch()
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to watch featured catalog")
		}
		defer stopWatch()
		app.Catalog = loader
	}

	// The resolver is nil when no GeoIP database is configured; lookups then
	// report unavailable and timezone resolution falls through to UTC.
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.GeoIPDBPath).Msg("failed to open geoip database")
	}
	defer resolver.Close()
	app.Timezones = resolver
	var countries middleware.CountryLookup = resolver.CountryCode

	router := httpapi.NewRouter(app, countries)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
