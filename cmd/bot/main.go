package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/traveldesk/travelbot/internal/config"
	"github.com/traveldesk/travelbot/internal/database"
	"github.com/traveldesk/travelbot/internal/flightapi"
	"github.com/traveldesk/travelbot/internal/gemini"
	"github.com/traveldesk/travelbot/internal/handler"
	"github.com/traveldesk/travelbot/internal/jobs"
	"github.com/traveldesk/travelbot/internal/middleware"
	"github.com/traveldesk/travelbot/internal/redis"
	"github.com/traveldesk/travelbot/internal/repository"
	"github.com/traveldesk/travelbot/internal/service"
	"github.com/traveldesk/travelbot/internal/session"
	"github.com/traveldesk/travelbot/internal/telegram"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setLogLevel(cfg.LogLevel)

	isProduction := os.Getenv("FLY_APP_NAME") != ""
	if err := cfg.Validate(isProduction); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
	if err := db.Ping(pingCtx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	cancel()
	log.Info().Msg("database connected")

	mongoClient, err := database.ConnectMongo(context.Background(), cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() {
		if err := mongoClient.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to close mongo client")
		}
	}()
	log.Info().Msg("mongo connected")

	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected")

	geminiClient, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create gemini client")
	}

	chatClient := telegram.NewClient(cfg.TelegramAPIBaseURL, cfg.TelegramToken)
	flightClient := flightapi.NewClient(cfg.SerpAPIBaseURL, cfg.SerpAPIKey, cfg.SearchCountry, cfg.SearchCurrency)

	messageRepo := repository.NewMessageRepository(db.DB)
	checklistRepo := repository.NewChecklistRepository(mongoClient.Database())

	registry := session.NewRegistry()

	resolver := service.NewCachedResolver(geminiClient, redisClient, log.Logger)
	queries := service.NewQueryBuilder(resolver)
	checklists := service.NewChecklistService(checklistRepo)
	recommender := service.NewRecommender(geminiClient, chatClient, cfg.RecommendTimeout(), log.Logger)
	audit := service.NewAuditService(messageRepo, log.Logger)
	limiter := service.NewRateLimiter(redisClient, cfg.RateLimitPerMin, log.Logger)

	webhookHandler := handler.NewHandler(
		registry, chatClient, queries, flightClient, checklists, recommender, audit, limiter, log.Logger,
	)

	secretMiddleware := middleware.NewSecretTokenMiddleware(cfg.TelegramWebhookSecret)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UnixMilli(),
		})
	})

	r.Route("/telegram", func(r chi.Router) {
		r.Use(secretMiddleware.Handler)
		r.Post("/webhook", webhookHandler.HandleWebhook)
	})

	if cfg.TelegramWebhookURL != "" {
		hookCtx, hookCancel := context.WithTimeout(context.Background(), config.TelegramCallTimeout)
		if err := chatClient.SetWebhook(hookCtx, cfg.TelegramWebhookURL, cfg.TelegramWebhookSecret); err != nil {
			log.Fatal().Err(err).Msg("failed to register webhook")
		}
		hookCancel()
		log.Info().Str("url", cfg.TelegramWebhookURL).Msg("webhook registered")
	}

	cleanupJob := jobs.NewCleanupJob(
		registry, messageRepo, cfg.SessionTTL(), cfg.AuditRetention(), config.CleanupJobInterval,
	)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: 0,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
