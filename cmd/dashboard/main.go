package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"comanda/internal/commons"
	"comanda/internal/config"
	"comanda/internal/delivery"
	"comanda/internal/infrastructure/backend"
	"comanda/internal/infrastructure/logger"
	"comanda/internal/infrastructure/push"
	"comanda/internal/server"
	"comanda/internal/tables"

	"go.uber.org/zap"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		// No config file; fall back to environment variables.
		cfg, err = config.Load()
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	client := backend.NewClient(cfg.Backend)
	zapLogger.Info("backend client ready", zap.String("baseUrl", cfg.Backend.BaseURL))

	listener := push.NewListener(cfg.Push.URL, zapLogger)

	tablesModule := tables.NewModule(client, cfg, zapLogger)
	deliveryModule := delivery.NewModule(client, cfg, zapLogger)

	router := server.NewRouter(tablesModule.Controller, deliveryModule.Controller, zapLogger)
	srv := server.New(cfg.Server.Port, router, zapLogger)

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go listener.Run(runCtx)
	go tablesModule.Synchronizer.Run(runCtx, listener.Events())
	go deliveryModule.Panel.Run(runCtx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("dashboard stopped gracefully")
}
