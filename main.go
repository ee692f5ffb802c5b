package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"faraid-agent/bot"
	"faraid-agent/config"
	httpLayer "faraid-agent/http"
	"faraid-agent/repository"
	"faraid-agent/service"
)

func main() {
	cfg := config.Load()

	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		logger.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
	} else {
		cache = repository.NewMemoryCache()
	}

	docs := repository.NewDocumentRepositoryMemory()

	inheritanceService := service.NewInheritanceService(docs, cache, logger)
	wasiyaService := service.NewWasiyaService()
	aiService := service.NewAIService(
		cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel, cfg.AISystemPrompt, logger)

	inheritanceHandler := httpLayer.NewInheritanceHandler(inheritanceService)
	wasiyaHandler := httpLayer.NewWasiyaHandler(wasiyaService)
	askHandler := httpLayer.NewAskHandler(aiService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/inheritance/calculate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(inheritanceHandler.Calculate),
		),
	)
	mux.Handle(
		"/inheritance/wasiya",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(wasiyaHandler.Check),
		),
	)
	mux.Handle(
		"/scholar/ask",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(askHandler.Ask),
		),
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var tgBot *bot.Bot
	if cfg.BotToken != "" {
		var err error
		tgBot, err = bot.New(cfg.BotToken, inheritanceService, wasiyaService, aiService, logger)
		if err != nil {
			logger.Fatal("failed to create telegram bot", zap.Error(err))
		}
		go tgBot.Start()
		logger.Info("telegram bot started")
	} else {
		logger.Warn("bot token is not configured, telegram surface disabled")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("error starting server", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down")
	}

	if tgBot != nil {
		tgBot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
