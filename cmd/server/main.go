// Command server runs the marketplace HTTP API.
//
// @title        Marketplace API
// @version      1.0
// @description  Digital book and course marketplace: catalog, purchases, downloads and course access.
// @BasePath     /api/v1
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-marketplace/internal/config"
	httpapi "github.com/tbourn/go-marketplace/internal/http"
	"github.com/tbourn/go-marketplace/internal/kv"
	"github.com/tbourn/go-marketplace/internal/observability"
	"github.com/tbourn/go-marketplace/internal/repo"
	"github.com/tbourn/go-marketplace/internal/sysutil"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	version := sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), "dev")

	sysutil.InitLogging(sysutil.NewLogger(os.Stderr, cfg.LogPretty, cfg.OTEL.ServiceName), cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version,
		observability.AttrStoreDriver.String(cfg.Store.Driver))
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	backend := openStore(cfg)
	defer func() {
		if err := kv.Close(backend); err != nil {
			log.Warn().Err(err).Msg("store close failed")
		}
	}()

	// Absent collections are created on every start; SEED_DEMO only decides
	// whether an empty catalog gets the demo records.
	var seed repo.Seed
	switch {
	case cfg.Seed.File != "":
		if seed, err = repo.LoadSeedFile(cfg.Seed.File); err != nil {
			log.Fatal().Err(err).Str("file", cfg.Seed.File).Msg("seed file")
		}
	case cfg.Seed.Demo:
		seed = repo.DefaultSeed()
	}
	st := repo.NewStore(backend)
	st.Initialize(ctx, seed)

	r := gin.New()
	httpapi.RegisterRoutes(r, st, cfg)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("store", cfg.Store.Driver).
			Str("version", version).
			Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
}

// openStore opens the configured backend. A backend that cannot be reached
// is replaced by kv.Unavailable so the API keeps serving degraded responses.
func openStore(cfg config.Config) kv.Store {
	s, err := kv.Open(kv.Options{
		Driver:        cfg.Store.Driver,
		SQLitePath:    cfg.Store.DBPath,
		PostgresDSN:   cfg.Store.DatabaseURL,
		RedisAddr:     cfg.Store.RedisAddr,
		RedisPassword: cfg.Store.RedisPassword,
		RedisDB:       cfg.Store.RedisDB,
		RedisPrefix:   cfg.Store.RedisPrefix,
		Tracing:       cfg.OTEL.Enabled,
	})
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Store.Driver).Msg("store unavailable; running without persistence")
		return kv.Unavailable{}
	}
	return s
}
