package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"nutrisync/internal/config"
	"nutrisync/internal/database"
	"nutrisync/internal/llm"
	"nutrisync/internal/logging"
	"nutrisync/internal/planner"
	"nutrisync/internal/server"
	"nutrisync/internal/user"
)

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger, err := logging.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	var textGen llm.TextGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logger.Fatal("failed to create Gemini client", zap.Error(err))
		}
		defer client.Close()
		textGen = client
		logger.Info("external plan generation enabled")
	} else {
		logger.Info("no Gemini API key configured, running in fallback-only mode")
	}

	users := user.NewService(user.NewRepository(db.SQL), cfg.JWTSecret)
	orch := planner.NewOrchestrator(textGen, logger)
	plans := planner.NewRepository(db.SQL)

	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    server.NewAuthHandler(users, logger),
		PlanHandler:    server.NewPlanHandler(orch, plans, textGen != nil, logger),
		AuthMiddleware: server.NewAuthMiddleware(users),
	})

	logger.Info("starting server", zap.String("addr", cfg.HTTPAddr))
	if err := router.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
