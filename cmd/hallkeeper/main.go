package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/servicehall/hallkeeper/internal/config"
	"github.com/servicehall/hallkeeper/internal/db"
	"github.com/servicehall/hallkeeper/internal/hall/service"
	sqlitestore "github.com/servicehall/hallkeeper/internal/hall/store/sqlite"
	"github.com/servicehall/hallkeeper/internal/httpapi"
	"github.com/servicehall/hallkeeper/internal/logging"
)

func main() {
	configPath := pflag.String("config", "config.toml", "path to the TOML config file")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hallkeeper:", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Setup(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hallkeeper:", err)
		os.Exit(1)
	}
	defer func() { _ = closeLog() }()

	logger.Info("starting hallkeeper", "project", cfg.ProjectName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, db.Config{Path: cfg.DB.Path})
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	writer := db.NewWorker(conn)
	defer writer.Close()

	// Stores
	kv := sqlitestore.NewKVStore(conn, writer)
	audit := sqlitestore.NewAuditStore(conn, writer)

	// Services
	records := service.NewRecordService(kv, audit, logger)
	keys := make([]service.AdminKey, 0, len(cfg.AdminKeys))
	for _, k := range cfg.AdminKeys {
		keys = append(keys, service.AdminKey{Username: k.Username, Secret: k.Key})
	}
	gate := service.NewAdminGate(keys)

	// HTTP
	srv := httpapi.NewServer(httpapi.Dependencies{
		Logger:      logger,
		Addr:        cfg.Server.ListenAddr,
		Records:     records,
		Gate:        gate,
		ProjectName: cfg.ProjectName,
		StaticDir:   cfg.StaticDir,
	})

	go func() {
		logger.Info("listening", "addr", cfg.Server.ListenAddr)
		if err := srv.Start(); err != nil {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
