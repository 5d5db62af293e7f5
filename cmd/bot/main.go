package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mymmrac/telego"
	"github.com/redis/go-redis/v9"

	"github.com/kmalyshev/votebattle/internal/engine"
	gatewayTelegram "github.com/kmalyshev/votebattle/internal/gateway/telegram"
	handlerTelegram "github.com/kmalyshev/votebattle/internal/handlers/telegram"
	chatRepo "github.com/kmalyshev/votebattle/internal/repositories/chat"
	gameRepo "github.com/kmalyshev/votebattle/internal/repositories/game"
	playerRepo "github.com/kmalyshev/votebattle/internal/repositories/player"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Warn("main: no .env file loaded", "error", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		slog.Error("main: failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	chats, err := chatRepo.NewRedis(&chatRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		slog.Error("main: failed to create chat repository", "error", err)
		os.Exit(1)
	}

	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		slog.Error("main: failed to create game repository", "error", err)
		os.Exit(1)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		slog.Error("main: failed to create player repository", "error", err)
		os.Exit(1)
	}

	// Get Telegram token from environment
	token := getEnv("TELEGRAM_BOT_TOKEN", "")
	if token == "" {
		slog.Error("main: TELEGRAM_BOT_TOKEN environment variable is required")
		os.Exit(1)
	}

	tgBot, err := telego.NewBot(token)
	if err != nil {
		slog.Error("main: failed to create Telegram bot", "error", err)
		os.Exit(1)
	}

	gw, err := gatewayTelegram.New(&gatewayTelegram.Config{
		Bot: tgBot,
	})
	if err != nil {
		slog.Error("main: failed to create gateway", "error", err)
		os.Exit(1)
	}

	// Initialize the game engine
	eng, err := engine.New(&engine.Config{
		ChatRepo:   chats,
		GameRepo:   games,
		PlayerRepo: players,
		Gateway:    gw,
	})
	if err != nil {
		slog.Error("main: failed to create engine", "error", err)
		os.Exit(1)
	}

	dispatcher, err := handlerTelegram.New(&handlerTelegram.Config{
		Bot:    tgBot,
		Engine: eng,
	})
	if err != nil {
		slog.Error("main: failed to create dispatcher", "error", err)
		os.Exit(1)
	}

	// Stop the long-poll loop on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := dispatcher.Run(ctx); err != nil {
		slog.Error("main: dispatcher stopped", "error", err)
		os.Exit(1)
	}

	slog.Info("main: bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
