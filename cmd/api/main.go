// @title			Fan Globe API
// @version		1.0
// @description	Fan signup capture, ZIP geocoding and an interactive demand globe.
// @BasePath		/
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fan-globe/internal/config"
	"fan-globe/internal/geo"
	"fan-globe/internal/globe"
	"fan-globe/internal/handler"
	"fan-globe/internal/observability"
	"fan-globe/internal/repository"
	"fan-globe/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	setupLogger(config.LogLevel, config.LogFormat)
	gin.SetMode(config.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Storage
	kv, closeStore, err := repository.Open(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Str("driver", config.StorageDriver).Msg("cannot open storage")
	}
	defer closeStore()

	// Initialize layers
	metrics := observability.NewMetrics()

	client := geo.NewClient(config.GeocoderBaseURL, config.GeocoderTimeout, metrics)
	resolver := geo.NewResolver(client, config.GeocoderCacheSize, metrics, log.Logger)

	store := service.NewSubmissionStore(ctx, kv, metrics, log.Logger)
	form := service.NewFormController(resolver, store, nil, metrics, log.Logger)
	controller := globe.NewController(globe.WithRetro(config.RetroMode))

	var limiter *handler.RateLimiter
	if config.SubmitRateLimit > 0 {
		limiter = handler.NewRateLimiter(config.SubmitRateLimit, config.SubmitRateWindow)
	}

	router := handler.NewRouter(handler.Router{
		Signups: handler.NewSignupHandler(form, store, log.Logger),
		Globe:   handler.NewGlobeHandler(controller, log.Logger),
		Banner:  &handler.FatalBanner{},
		Metrics: promhttp.Handler(),
		Logger:  log.Logger,

		SubmitLimiter: limiter,
	})

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Int("pins", store.Len()).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	form.Close()
	controller.Close()

	log.Info().Msg("server stopped")
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if strings.EqualFold(format, "console") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
