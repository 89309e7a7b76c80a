package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/joho/godotenv"
	"github.com/kdduha/vision-relay/internal/cache"
	"github.com/kdduha/vision-relay/internal/config"
	"github.com/kdduha/vision-relay/internal/document"
	"github.com/kdduha/vision-relay/internal/handler"
	"github.com/kdduha/vision-relay/internal/logging"
	"github.com/kdduha/vision-relay/internal/server"
	"github.com/kdduha/vision-relay/internal/service"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// @title Vision Relay API
// @version 1.0
// @description Relays camera frames to a vision model and text to a speech engine.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	if envErr != nil {
		logger.Debug("no .env file loaded")
	}

	if cfg.OpenAI.APIKey == config.PlaceholderAPIKey {
		logger.Warn("OPENAI_API_KEY is not set, vision and transcription calls will be rejected upstream")
	}
	if cfg.ElevenLabs.APIKey == "" {
		logger.Warn("ELEVEN_LABS_API_KEY is not set, speech calls will be rejected upstream")
	}

	prompt, err := service.ResolvePrompt(cfg.Prompt)
	if err != nil {
		logger.WithError(err).Fatal("prompt error")
	}
	logger.WithField("profile", prompt.Profile).Info("vision system prompt selected")

	openaiClient := openai.NewClient(
		option.WithAPIKey(cfg.OpenAI.APIKey),
		option.WithBaseURL(cfg.OpenAI.BaseURL),
		option.WithMaxRetries(0),
	)

	visionService := service.NewVisionService(logger, openaiClient, cfg.OpenAI, prompt)

	if cfg.CacheEnable {
		redisCache := cache.NewRedisCache(cfg.RedisConfig)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logger.WithError(err).Warn("redis is unreachable, cache lookups will fail open")
		}
		visionService.SetCacheClient(redisCache)
		logger.WithField("addr", cfg.RedisConfig.Addr).Info("set redis as cache")
	}

	if cfg.Document.RenderPDF {
		visionService.SetRenderer(document.NewRenderer(cfg.Document.DPI))
		logger.Info("pdf rendering enabled")
	}

	speechService := service.NewSpeechService(logger, nil, cfg.ElevenLabs)
	transcribeService := service.NewTranscribeService(logger, openaiClient, cfg.OpenAI)

	router := server.NewRouter(cfg.Server.Timeout, server.Handlers{
		Analyze:    handler.NewAnalyzeHandler(visionService),
		Speech:     handler.NewSpeechHandler(speechService),
		Transcribe: handler.NewTranscribeHandler(transcribeService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("listen error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Fatal("server forced to shutdown")
	}
	logger.Info("server stopped")
}
