package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-explorer/internal/app/config"
	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
	"github.com/ijalalfrz/flight-explorer/internal/app/endpoints"
	"github.com/ijalalfrz/flight-explorer/internal/app/service"
	"github.com/ijalalfrz/flight-explorer/internal/app/transport"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/flight"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/logger"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/preference"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/skyscrapper"
	"github.com/redis/go-redis/v9"
)

// @title           Flight Explorer API
// @version         0.0.1
// @description     flight-explorer
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := shutdownServer(server, cfg.HTTP.Timeout); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

// shutdownServer drains in-flight requests for at most timeout.
func shutdownServer(server *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return server.Shutdown(ctx)
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.WarnContext(ctx, "redis is not reachable yet", slog.String("error", err.Error()))
	}

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// preferences
	preferenceService := service.NewPreferenceService(preference.NewStore(redisClient),
		cfg.Preference.DefaultTheme, cfg.Preference.Expiration)

	// provider
	client := initProviderClient(cfg, redisClient)

	// init service endpoint
	return endpoints.Endpoints{
		SearchEndpoint:     makeSearchEndpoint(client, preferenceService, cfg),
		PreferenceEndpoint: endpoints.MakePreferenceEndpoint(preferenceService),
	}
}

// initProviderClient builds the sky scrapper client with the configured limiter backend.
func initProviderClient(cfg *config.Config, redisClient *redis.Client) *skyscrapper.Client {
	var limiter skyscrapper.Limiter

	switch cfg.Provider.RateLimitBackend {
	case config.RateLimitBackendLocal:
		limiter = skyscrapper.NewLocalLimiter(float64(cfg.Provider.RateLimitRPS), cfg.Provider.RateLimitBurst)
	default:
		limiter = skyscrapper.NewRedisLimiter(redis_rate.NewLimiter(redisClient), cfg.Provider.RateLimitRPS)
	}

	return skyscrapper.NewClient(skyscrapper.ClientConfig{
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.Provider.APIKey,
		APIHost: cfg.Provider.APIHost,
		Locale:  cfg.Provider.Locale,
		Timeout: cfg.Provider.Timeout,
		Limiter: limiter,
	})
}

func makeSearchEndpoint(client *skyscrapper.Client,
	themes service.ThemeReader, cfg *config.Config) endpoints.SearchEndpoint {

	resolver := flight.NewResolver(client)
	orchestrator := flight.NewOrchestrator(resolver, flight.NewFetcher(client))

	// service
	searchService := service.NewSearchService(orchestrator, resolver, themes, dto.SearchParameters{
		CabinClass:  cfg.Search.CabinClass,
		Adults:      cfg.Search.Adults,
		SortBy:      cfg.Search.SortBy,
		Currency:    cfg.Search.Currency,
		Market:      cfg.Search.Market,
		CountryCode: cfg.Search.CountryCode,
	})

	// endpoint
	return endpoints.MakeSearchEndpoint(searchService)
}
