package main

import (
	"go.uber.org/zap"

	"go-sales-report/internal/api"
	"go-sales-report/internal/api/handler"
	"go-sales-report/internal/config"
	"go-sales-report/internal/store"
	"go-sales-report/pkg/router"
	"go-sales-report/pkg/utils"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Init DB
	if err := store.InitDB(cfg.DBPath); err != nil {
		logger.Fatal("failed to init database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer store.Close()

	handler.Init(logger, utils.NewOutputManager(cfg.OutputDir))

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r)

	// Start server
	if err := r.Start(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
